package http

import (
	"hardware-ai-orchestrator/internal/query"
	"hardware-ai-orchestrator/pkg/log"
)

// Handler is the public interface for the query HTTP delivery layer.
type Handler interface {
	Analyze(c interface{})
	Feedback(c interface{})
	Accuracy(c interface{})
	Status(c interface{})
}

type handler struct {
	l  log.Logger
	uc query.UseCase
}

// New creates a new HTTP handler for the query domain.
func New(l log.Logger, uc query.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
