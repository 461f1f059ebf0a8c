// Package complexity folds the extracted signals into one bounded score.
package complexity

import (
	"fmt"

	"hardware-ai-orchestrator/internal/catalog"
	"hardware-ai-orchestrator/internal/signal"
)

// Assessment is the scored complexity of one query.
type Assessment struct {
	Score        float64         // final clamped score in [0,1]
	Signals      []signal.Signal // extractor output in declaration order
	ContextDelta float64         // additive user-context adjustment
	Rationale    []string        // human-readable lines for notable signals
}

// Score computes the weighted average of the signals, applies the
// user-context delta and clamps the result to [0,1]. Rationale lines are
// emitted for every signal above the catalog's notable threshold, in
// declaration order, so equal inputs always explain themselves the same
// way.
func Score(signals []signal.Signal, contextDelta float64, c *catalog.Catalog) Assessment {
	var weighted, total float64
	rationale := make([]string, 0, len(signals))

	for _, s := range signals {
		weighted += s.Value * s.Weight
		total += s.Weight
		if s.Value > c.NotableSignal {
			rationale = append(rationale, fmt.Sprintf("%s scored %.2f (weight %.2f)", s.Name, s.Value, s.Weight))
		}
	}

	score := 0.0
	if total > 0 {
		score = weighted / total
	}
	score += contextDelta

	if contextDelta != 0 {
		rationale = append(rationale, fmt.Sprintf("user context adjusted the score by %+.2f", contextDelta))
	}

	return Assessment{
		Score:        clamp01(score),
		Signals:      signals,
		ContextDelta: contextDelta,
		Rationale:    rationale,
	}
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
