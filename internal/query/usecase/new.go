package usecase

import (
	"time"

	"hardware-ai-orchestrator/internal/catalog"
	"hardware-ai-orchestrator/internal/knowledge"
	"hardware-ai-orchestrator/internal/metrics"
	"hardware-ai-orchestrator/internal/query"
	pkgLog "hardware-ai-orchestrator/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	store     *catalog.Store
	retriever knowledge.Retriever
	exporter  *metrics.Exporter
	tracker   *metrics.AccuracyTracker
	startedAt time.Time
}

var _ query.UseCase = (*implUseCase)(nil)

// New creates a new query UseCase instance. retriever and exporter may
// be nil; analysis then runs without enrichment or telemetry.
func New(
	l pkgLog.Logger,
	store *catalog.Store,
	retriever knowledge.Retriever,
	exporter *metrics.Exporter,
	tracker *metrics.AccuracyTracker,
) *implUseCase {
	return &implUseCase{
		l:         l,
		store:     store,
		retriever: retriever,
		exporter:  exporter,
		tracker:   tracker,
		startedAt: time.Now(),
	}
}
