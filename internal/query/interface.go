package query

import (
	"context"

	"hardware-ai-orchestrator/internal/metrics"
)

// UseCase defines the business logic interface for the query domain.
type UseCase interface {
	// Analyze classifies the query, scores its complexity and selects a
	// model tier. It never fails on content; only invalid input errors.
	Analyze(ctx context.Context, input AnalyzeInput) (RoutingDecision, error)

	// SubmitFeedback records a user verdict on an earlier decision.
	SubmitFeedback(ctx context.Context, input FeedbackInput) (FeedbackReceipt, error)

	// Accuracy reports routing accuracy over the recent feedback window.
	Accuracy(ctx context.Context) metrics.AccuracyReport

	// Status reports engine health and the active catalog shape.
	Status(ctx context.Context) Status
}
