package signal

import (
	"strings"
	"sync"

	"hardware-ai-orchestrator/internal/catalog"
	"hardware-ai-orchestrator/internal/model"
)

// Signal is one normalized complexity observation. Value is always in
// [0,1]; Weight is the catalog weight it carries into the scorer.
type Signal struct {
	Name   string
	Value  float64
	Weight float64
}

type extractorFunc func(d *document, c *catalog.Catalog) float64

// extractors lists every signal in declaration order. The order is part
// of the contract: Extract output and rationale lines follow it.
var extractors = []struct {
	name string
	fn   extractorFunc
}{
	{catalog.SignalTechnicalDensity, technicalDensity},
	{catalog.SignalStandardsMention, standardsMention},
	{catalog.SignalConstraintCount, constraintCount},
	{catalog.SignalDomainSpecificity, domainSpecificity},
	{catalog.SignalComparative, comparativeLanguage},
	{catalog.SignalSpecificity, parameterSpecificity},
	{catalog.SignalAnalysisDepth, analysisDepth},
}

// Extract runs every extractor against the query text and returns the
// signals in declaration order. Extractors are stateless and run
// concurrently; each writes only its own slot, so the result is
// deterministic for a given text and catalog.
func Extract(q model.Query, c *catalog.Catalog) []Signal {
	d := parse(q.Text)
	out := make([]Signal, len(extractors))

	var wg sync.WaitGroup
	for i, ex := range extractors {
		wg.Add(1)
		go func(i int, name string, fn extractorFunc) {
			defer wg.Done()
			out[i] = Signal{Name: name, Value: clamp01(fn(d, c)), Weight: c.Weight(name)}
		}(i, ex.name, ex.fn)
	}
	wg.Wait()

	return out
}

// technicalDensity is the share of tokens recognized as hardware
// vocabulary, part numbers or numeric parameters.
func technicalDensity(d *document, c *catalog.Catalog) float64 {
	if len(d.tokens) == 0 {
		return 0
	}
	terms := make(map[string]struct{}, len(c.Lexicon.TechnicalTerms))
	for _, t := range c.Lexicon.TechnicalTerms {
		terms[t] = struct{}{}
	}

	recognized := 0
	for _, tok := range d.tokens {
		if _, ok := terms[tok]; ok {
			recognized++
			continue
		}
		if _, ok := terms[strings.TrimSuffix(tok, "s")]; ok {
			recognized++
			continue
		}
		if isNumeric(tok) || isPartLike(tok) {
			recognized++
		}
	}
	return float64(recognized) / float64(len(d.tokens))
}

// standardsMention fires on any compliance or qualification standard.
// Presence alone saturates the signal: one safety standard in the text is
// as routing-relevant as three.
func standardsMention(d *document, c *catalog.Catalog) float64 {
	for _, s := range c.Lexicon.StandardsTokens {
		if d.containsPhrase(s) {
			return 1
		}
	}
	return 0
}

// constraintCount counts distinct engineering constraint families named
// in the text. Four or more saturates.
func constraintCount(d *document, c *catalog.Catalog) float64 {
	matched := 0
	for _, g := range c.Lexicon.ConstraintGroups {
		for _, term := range g.Terms {
			if d.containsPhrase(term) {
				matched++
				break
			}
		}
	}
	return float64(matched) / 4
}

// domainSpecificity is the normalized complexity weight of the heaviest
// domain whose patterns appear in the text. Maximum over all matched
// domains, never the winner alone, so adding tokens cannot lower it.
// Texts matching no domain get a floor value.
func domainSpecificity(d *document, c *catalog.Catalog) float64 {
	maxWeight := c.MaxDomainWeight()
	if maxWeight <= 0 {
		return 0.25
	}
	best := 0.0
	for _, dom := range c.Domains {
		for _, p := range dom.Patterns {
			if d.containsPhrase(p) {
				if v := dom.ComplexityWeight / maxWeight; v > best {
					best = v
				}
				break
			}
		}
	}
	if best == 0 {
		return 0.25
	}
	return best
}

func comparativeLanguage(d *document, c *catalog.Catalog) float64 {
	for _, cue := range c.Lexicon.ComparativeCues {
		if d.containsPhrase(cue) {
			return 1
		}
	}
	return 0
}

// parameterSpecificity is the inverse-ambiguity signal: a query that
// names a concrete part number or numeric parameter is specific, one that
// names none is vague.
func parameterSpecificity(d *document, _ *catalog.Catalog) float64 {
	for _, tok := range d.tokens {
		if isNumeric(tok) || isPartLike(tok) {
			return 1
		}
	}
	return 0
}

// analysisDepth counts calculation and design-work cues. Two distinct
// cues saturate.
func analysisDepth(d *document, c *catalog.Catalog) float64 {
	cues := 0
	for _, cue := range c.Lexicon.CalculationCues {
		if d.containsPhrase(cue) {
			cues++
		}
	}
	return float64(cues) / 2
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
