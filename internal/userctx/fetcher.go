package userctx

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"merval-chat-service/internal/model"
	"merval-chat-service/pkg/log"
)

const (
	cacheSize = 512

	// cacheTTL spans a burst of messages in one conversation, short enough
	// that portfolio changes show up on the next exchange.
	cacheTTL = 30 * time.Second
)

// CachedFetcher wraps a Fetcher with a per-user TTL cache so repeated
// messages in one conversation don't hammer the backend. Negative results
// are not cached; a backend that comes back is picked up immediately.
type CachedFetcher struct {
	l     log.Logger
	inner Fetcher
	cache *expirable.LRU[string, *model.UserContext]
}

// NewCachedFetcher wraps inner with a TTL cache.
func NewCachedFetcher(l log.Logger, inner Fetcher) *CachedFetcher {
	return &CachedFetcher{
		l:     l,
		inner: inner,
		cache: expirable.NewLRU[string, *model.UserContext](cacheSize, nil, cacheTTL),
	}
}

// Fetch returns the cached context for userID or delegates to the inner
// fetcher.
func (f *CachedFetcher) Fetch(ctx context.Context, userID, bearerToken string) *model.UserContext {
	if uc, ok := f.cache.Get(userID); ok {
		return uc
	}

	uc := f.inner.Fetch(ctx, userID, bearerToken)
	if uc != nil {
		f.cache.Add(userID, uc)
	}
	return uc
}
