package knowledge

import "context"

// Retriever supplies reference context for an analyzed query. Retrieval
// failures never fail an analysis; callers log and continue.
type Retriever interface {
	Retrieve(ctx context.Context, intent, domain, text string) (Context, error)
}
