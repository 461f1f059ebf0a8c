package knowledge

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedRetriever memoizes retrieval results in an expiring LRU. Entries
// age out on TTL so a reseeded repository is eventually picked up.
type CachedRetriever struct {
	next  Retriever
	cache *expirable.LRU[string, Context]
}

var _ Retriever = (*CachedRetriever)(nil)

// NewCachedRetriever wraps next with an LRU of the given size and TTL.
func NewCachedRetriever(next Retriever, size int, ttl time.Duration) *CachedRetriever {
	return &CachedRetriever{
		next:  next,
		cache: expirable.NewLRU[string, Context](size, nil, ttl),
	}
}

func (c *CachedRetriever) Retrieve(ctx context.Context, intent, domain, text string) (Context, error) {
	key := cacheKey(intent, domain, text)
	if hit, ok := c.cache.Get(key); ok {
		return hit, nil
	}

	out, err := c.next.Retrieve(ctx, intent, domain, text)
	if err != nil {
		return Context{}, err
	}
	c.cache.Add(key, out)
	return out, nil
}

func cacheKey(intent, domain, text string) string {
	return intent + "|" + domain + "|" + strings.ToLower(strings.TrimSpace(text))
}
