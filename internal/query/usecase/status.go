package usecase

import (
	"context"
	"time"

	"hardware-ai-orchestrator/internal/query"
)

// Status reports engine health and the active catalog shape.
func (uc *implUseCase) Status(_ context.Context) query.Status {
	cat := uc.store.Current()
	return query.Status{
		Status:         "operational",
		CatalogVersion: cat.Version,
		Intents:        len(cat.Intents),
		Domains:        len(cat.Domains),
		Tiers:          len(cat.Tiers),
		Uptime:         time.Since(uc.startedAt),
	}
}
