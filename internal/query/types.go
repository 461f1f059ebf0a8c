package query

import (
	"time"

	"hardware-ai-orchestrator/internal/complexity"
	"hardware-ai-orchestrator/internal/knowledge"
	"hardware-ai-orchestrator/internal/model"
)

// AnalyzeInput is one routing request.
type AnalyzeInput struct {
	Text           string
	Expertise      model.UserExpertise // optional, defaults to intermediate
	Phase          model.ProjectPhase  // optional
	DeclaredDomain string              // optional caller hint, informational only
}

// Classification summarizes one classifier outcome.
type Classification struct {
	Category        string   `json:"category"`
	Specificity     float64  `json:"specificity"`
	MatchedPatterns []string `json:"matched_patterns,omitempty"`
	Defaulted       bool     `json:"defaulted"`
}

// RoutingDecision is the immutable analysis result for one query.
type RoutingDecision struct {
	Intent         Classification
	Domain         Classification
	Complexity     complexity.Assessment
	Model          string
	Confidence     float64
	Fallbacks      []string
	OutOfRange     bool
	Knowledge      knowledge.Context
	CatalogVersion string
	AnalyzedAt     time.Time
	Elapsed        time.Duration
}

// FeedbackInput is one user verdict on an earlier decision.
type FeedbackInput struct {
	RequestID      string
	Model          string
	Correct        bool
	SuggestedModel string
	Comment        string
}

// FeedbackReceipt acknowledges a stored feedback record.
type FeedbackReceipt struct {
	ID         string    `json:"id"`
	ReceivedAt time.Time `json:"received_at"`
}

// Status reports engine health and the active catalog shape.
type Status struct {
	Status         string        `json:"status"`
	CatalogVersion string        `json:"catalog_version"`
	Intents        int           `json:"intents"`
	Domains        int           `json:"domains"`
	Tiers          int           `json:"tiers"`
	Uptime         time.Duration `json:"uptime"`
}
