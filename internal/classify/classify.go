// Package classify matches query text against the catalog's intent and
// domain tables. Both classifiers are total: when nothing clears the
// match threshold they return the catalog's designated default instead
// of failing.
package classify

import (
	"sort"
	"strings"
	"unicode"

	"hardware-ai-orchestrator/internal/catalog"
)

// Result is one classification outcome.
type Result struct {
	Name        string
	Specificity float64  // pattern specificity in [0,1], 0 when defaulted
	Hits        []string // patterns that matched, in table order
	Defaulted   bool     // true when no category cleared the threshold
}

// Intent picks the intent category whose patterns best match the text.
// Categories are scanned in priority order and a later category only
// replaces the current best on strictly higher specificity, so equal
// specificity resolves to the lower priority rank.
func Intent(text string, c *catalog.Catalog) Result {
	norm := normalize(text)
	best := Result{Name: c.DefaultIntent, Defaulted: true}

	intents := make([]catalog.IntentCategory, len(c.Intents))
	copy(intents, c.Intents)
	sort.SliceStable(intents, func(i, j int) bool { return intents[i].Priority < intents[j].Priority })

	for _, in := range intents {
		hits := matchPatterns(norm, in.Patterns)
		spec := specificity(len(hits))
		if spec < c.MatchThreshold {
			continue
		}
		if spec > best.Specificity {
			best = Result{Name: in.Name, Specificity: spec, Hits: hits}
		}
	}
	return best
}

// Domain picks the hardware domain the text belongs to, under the same
// rule as Intent: strictly higher specificity replaces, equal
// specificity resolves to the lower priority rank. A domain's
// ComplexityWeight influences the complexity score, not the
// classification.
func Domain(text string, c *catalog.Catalog) Result {
	norm := normalize(text)
	best := Result{Name: c.DefaultDomain, Defaulted: true}

	domains := make([]catalog.DomainCategory, len(c.Domains))
	copy(domains, c.Domains)
	sort.SliceStable(domains, func(i, j int) bool { return domains[i].Priority < domains[j].Priority })

	for _, d := range domains {
		hits := matchPatterns(norm, d.Patterns)
		spec := specificity(len(hits))
		if spec < c.MatchThreshold {
			continue
		}
		if spec > best.Specificity {
			best = Result{Name: d.Name, Specificity: spec, Hits: hits}
		}
	}
	return best
}

// specificity maps a distinct-pattern hit count into [0,1]. Four hits
// saturate.
func specificity(hits int) float64 {
	s := 0.25 * float64(hits)
	if s > 1 {
		return 1
	}
	return s
}

func matchPatterns(norm string, patterns []string) []string {
	var hits []string
	for _, p := range patterns {
		if strings.Contains(norm, p) {
			hits = append(hits, p)
		}
	}
	return hits
}

// normalize lowercases the text and collapses punctuation to single
// spaces, keeping '-' and '.' so part numbers survive intact. The same
// form the signal extractors match against.
func normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.' {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
