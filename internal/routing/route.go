// Package routing maps a scored query onto the model tier table.
package routing

import (
	"math"
	"sort"

	"hardware-ai-orchestrator/internal/catalog"
	"hardware-ai-orchestrator/internal/classify"
)

// Decision is the routing outcome for one query. Routing is total: a
// score that somehow lands outside every tier still selects the tier
// with the nearest boundary and flags the defect instead of failing.
type Decision struct {
	Tier       catalog.ModelTier
	Confidence float64
	Fallbacks  []string // other tiers by range proximity, at most two
	OutOfRange bool     // score matched no tier; nearest boundary was used
}

const (
	confidenceBase   = 0.75
	confidenceSlope  = 0.75
	defaultedPenalty = 0.10
	maxFallbackChain = 2
)

// Route selects the model tier for a complexity score. Candidate tiers
// are those whose range contains the score; among candidates a tier
// listing the intent as a strength wins, then the cheaper one. The
// fallback chain lists the remaining tiers ordered by how close their
// range sits to the score.
func Route(score float64, intent, domain classify.Result, c *catalog.Catalog) Decision {
	tableMax := c.TableMax()

	var candidates []catalog.ModelTier
	for _, t := range c.Tiers {
		if t.ContainsScore(score, tableMax) {
			candidates = append(candidates, t)
		}
	}

	outOfRange := len(candidates) == 0
	var selected catalog.ModelTier
	if outOfRange {
		selected = nearestTier(score, c.Tiers)
	} else {
		selected = pickCandidate(candidates, intent.Name)
	}

	return Decision{
		Tier:       selected,
		Confidence: confidence(score, selected, intent.Defaulted, domain.Defaulted),
		Fallbacks:  fallbackChain(score, selected, c.Tiers),
		OutOfRange: outOfRange,
	}
}

func pickCandidate(candidates []catalog.ModelTier, intent string) catalog.ModelTier {
	best := candidates[0]
	for _, t := range candidates[1:] {
		switch {
		case hasStrength(t, intent) && !hasStrength(best, intent):
			best = t
		case hasStrength(t, intent) == hasStrength(best, intent) && t.CostWeight < best.CostWeight:
			best = t
		}
	}
	return best
}

func hasStrength(t catalog.ModelTier, intent string) bool {
	for _, s := range t.Strengths {
		if s == intent {
			return true
		}
	}
	return false
}

// confidence grows with the score's distance from the nearer tier
// boundary: a score in the middle of a band is a safe call, one at the
// edge is not. Each classifier that fell back to its default costs a
// fixed penalty.
func confidence(score float64, t catalog.ModelTier, intentDefaulted, domainDefaulted bool) float64 {
	halfWidth := (t.MaxComplexity - t.MinComplexity) / 2
	conf := 1.0
	if halfWidth > 0 {
		dist := math.Min(score-t.MinComplexity, t.MaxComplexity-score)
		if dist < 0 {
			dist = 0
		}
		conf = math.Min(1, confidenceBase+confidenceSlope*dist/halfWidth)
	}

	if intentDefaulted {
		conf -= defaultedPenalty
	}
	if domainDefaulted {
		conf -= defaultedPenalty
	}

	if conf < 0 {
		return 0
	}
	return conf
}

// rangeDistance is how far score sits outside the tier's range, zero if
// inside.
func rangeDistance(score float64, t catalog.ModelTier) float64 {
	switch {
	case score < t.MinComplexity:
		return t.MinComplexity - score
	case score > t.MaxComplexity:
		return score - t.MaxComplexity
	}
	return 0
}

func nearestTier(score float64, tiers []catalog.ModelTier) catalog.ModelTier {
	best := tiers[0]
	for _, t := range tiers[1:] {
		if rangeDistance(score, t) < rangeDistance(score, best) {
			best = t
		}
	}
	return best
}

func fallbackChain(score float64, selected catalog.ModelTier, tiers []catalog.ModelTier) []string {
	rest := make([]catalog.ModelTier, 0, len(tiers))
	for _, t := range tiers {
		if t.ModelID != selected.ModelID {
			rest = append(rest, t)
		}
	}

	sort.SliceStable(rest, func(i, j int) bool {
		di, dj := rangeDistance(score, rest[i]), rangeDistance(score, rest[j])
		if di != dj {
			return di < dj
		}
		return rest[i].CostWeight < rest[j].CostWeight
	})

	if len(rest) > maxFallbackChain {
		rest = rest[:maxFallbackChain]
	}
	chain := make([]string, len(rest))
	for i, t := range rest {
		chain[i] = t.ModelID
	}
	return chain
}
