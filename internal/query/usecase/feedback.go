package usecase

import (
	"context"
	"strings"

	"hardware-ai-orchestrator/internal/metrics"
	"hardware-ai-orchestrator/internal/query"
)

// SubmitFeedback records a user verdict on an earlier routing decision.
func (uc *implUseCase) SubmitFeedback(ctx context.Context, input query.FeedbackInput) (query.FeedbackReceipt, error) {
	if strings.TrimSpace(input.Model) == "" {
		return query.FeedbackReceipt{}, query.ErrInvalidFeedback
	}

	fb := uc.tracker.Record(metrics.Feedback{
		RequestID:      input.RequestID,
		Model:          input.Model,
		Correct:        input.Correct,
		SuggestedModel: input.SuggestedModel,
		Comment:        input.Comment,
	})

	uc.l.Infof(ctx, "SubmitFeedback: model=%s correct=%v request=%s", fb.Model, fb.Correct, fb.RequestID)
	return query.FeedbackReceipt{ID: fb.ID, ReceivedAt: fb.ReceivedAt}, nil
}

// Accuracy reports routing accuracy over the recent feedback window.
func (uc *implUseCase) Accuracy(_ context.Context) metrics.AccuracyReport {
	return uc.tracker.Report()
}
