package signal

import (
	"hardware-ai-orchestrator/internal/catalog"
	"hardware-ai-orchestrator/internal/model"
)

// ContextDelta converts user context into a bounded additive score
// adjustment. It is applied after the weighted signal average, not as a
// signal of its own, and is clamped to the configured cap in both
// directions.
func ContextDelta(q model.Query, adj catalog.ContextAdjustment) float64 {
	delta := 0.0

	switch q.Expertise {
	case model.ExpertiseExpert:
		delta += adj.Expert
	case model.ExpertiseSenior:
		delta += adj.Senior
	case model.ExpertiseNovice:
		delta += adj.Novice
	}

	switch q.Phase {
	case model.PhaseValidation, model.PhaseProduction:
		delta += adj.LatePhase
	case model.PhaseConcept:
		delta += adj.ConceptPhase
	}

	if delta > adj.Cap {
		return adj.Cap
	}
	if delta < -adj.Cap {
		return -adj.Cap
	}
	return delta
}
