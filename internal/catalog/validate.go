package catalog

import (
	"fmt"
	"sort"
)

const rangeEpsilon = 1e-9

var knownSignals = map[string]struct{}{
	SignalTechnicalDensity:  {},
	SignalStandardsMention:  {},
	SignalConstraintCount:   {},
	SignalDomainSpecificity: {},
	SignalComparative:       {},
	SignalSpecificity:       {},
	SignalAnalysisDepth:     {},
}

// Validate checks structural invariants before a catalog is published.
// It is called on startup and on every hot reload; a catalog that fails
// here must never be installed.
func (c *Catalog) Validate() error {
	if c.MatchThreshold <= 0 || c.MatchThreshold >= 1 {
		return fmt.Errorf("%w: %.3f", ErrBadThreshold, c.MatchThreshold)
	}

	if err := c.validateTiers(); err != nil {
		return err
	}
	if err := c.validateCategories(); err != nil {
		return err
	}
	return c.validateWeights()
}

func (c *Catalog) validateTiers() error {
	if len(c.Tiers) == 0 {
		return ErrNoTiers
	}

	tiers := make([]ModelTier, len(c.Tiers))
	copy(tiers, c.Tiers)
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].MinComplexity < tiers[j].MinComplexity })

	seen := map[string]struct{}{}
	for _, t := range tiers {
		if t.MaxComplexity <= t.MinComplexity {
			return fmt.Errorf("%w: %s [%.2f,%.2f)", ErrTierOrder, t.ModelID, t.MinComplexity, t.MaxComplexity)
		}
		if _, ok := seen[t.ModelID]; ok {
			return fmt.Errorf("%w: tier %s", ErrDuplicateName, t.ModelID)
		}
		seen[t.ModelID] = struct{}{}
	}

	if tiers[0].MinComplexity > rangeEpsilon {
		return fmt.Errorf("%w: coverage starts at %.3f", ErrTierGap, tiers[0].MinComplexity)
	}
	for i := 1; i < len(tiers); i++ {
		gap := tiers[i].MinComplexity - tiers[i-1].MaxComplexity
		if gap > rangeEpsilon || gap < -rangeEpsilon {
			return fmt.Errorf("%w: between %s and %s", ErrTierGap, tiers[i-1].ModelID, tiers[i].ModelID)
		}
	}
	if top := tiers[len(tiers)-1].MaxComplexity; top < 1-rangeEpsilon {
		return fmt.Errorf("%w: coverage ends at %.3f", ErrTierGap, top)
	}

	intents := map[string]struct{}{}
	for _, in := range c.Intents {
		intents[in.Name] = struct{}{}
	}
	for _, t := range c.Tiers {
		for _, s := range t.Strengths {
			if _, ok := intents[s]; !ok {
				return fmt.Errorf("%w: tier %s strength %q", ErrUnknownStrength, t.ModelID, s)
			}
		}
	}
	return nil
}

func (c *Catalog) validateCategories() error {
	names := map[string]struct{}{}
	defaultFound := false
	for _, in := range c.Intents {
		if _, ok := names[in.Name]; ok {
			return fmt.Errorf("%w: intent %s", ErrDuplicateName, in.Name)
		}
		names[in.Name] = struct{}{}
		if in.BaseComplexity < 0 || in.BaseComplexity > 1 {
			return fmt.Errorf("%w: intent %s has %.2f", ErrBadComplexity, in.Name, in.BaseComplexity)
		}
		if in.Name == c.DefaultIntent {
			defaultFound = true
		}
	}
	if !defaultFound {
		return fmt.Errorf("%w: %s", ErrMissingDefault, c.DefaultIntent)
	}

	domains := map[string]struct{}{}
	for _, d := range c.Domains {
		if _, ok := domains[d.Name]; ok {
			return fmt.Errorf("%w: domain %s", ErrDuplicateName, d.Name)
		}
		domains[d.Name] = struct{}{}
		if d.Name == c.DefaultDomain {
			return fmt.Errorf("%w: %s", ErrReservedDomain, d.Name)
		}
		if d.ComplexityWeight <= 0 {
			return fmt.Errorf("%w: domain %s weight %.2f", ErrBadWeight, d.Name, d.ComplexityWeight)
		}
	}
	return nil
}

func (c *Catalog) validateWeights() error {
	total := 0.0
	for _, w := range c.SignalWeights {
		if _, ok := knownSignals[w.Name]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownSignal, w.Name)
		}
		if w.Weight <= 0 {
			return fmt.Errorf("%w: signal %s weight %.3f", ErrBadWeight, w.Name, w.Weight)
		}
		total += w.Weight
	}
	if total <= 0 {
		return ErrBadWeight
	}
	return nil
}
