package queries

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"seat-redeem/internal/pkg/config"
	"seat-redeem/internal/usecase/shared"
)

type ResourceReadStore interface {
	ListAvailable(ctx context.Context) ([]*AvailableResourceView, error)
	ListAll(ctx context.Context) ([]*ResourceView, error)
}

type ResourceQueries interface {
	ListAvailable(ctx context.Context) ([]*AvailableResourceView, error)
	ListAll(ctx context.Context) ([]*ResourceView, error)
}

type resourceQueriesImpl struct {
	readStore ResourceReadStore
	cache     shared.Cache
	ttl       time.Duration
}

func NewResourceQueries(readStore ResourceReadStore, cache shared.Cache, cfg config.Config) ResourceQueries {
	return &resourceQueriesImpl{
		readStore: readStore,
		cache:     cache,
		ttl:       cfg.Redis.TTL,
	}
}

// ListAvailable serves the requester-facing listing through the cache.
// The entry is keyed by the generation read before the store, so a listing
// loaded across a redemption's write is never served after it. Changes made
// outside the redemption flow show up within the TTL.
func (q *resourceQueriesImpl) ListAvailable(ctx context.Context) ([]*AvailableResourceView, error) {
	key := shared.AvailableResourcesKey(q.generation(ctx))
	if raw, ok := q.cache.Get(ctx, key); ok {
		var cached []*AvailableResourceView
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		slog.WarnContext(ctx, "discarding undecodable listing cache entry", "key", key)
	}

	views, err := q.readStore.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(views); err == nil {
		if err := q.cache.Set(ctx, key, raw, q.ttl); err != nil {
			slog.DebugContext(ctx, "listing cache write failed", "error", err)
		}
	}
	return views, nil
}

// generation is zero until the first redemption bumps it.
func (q *resourceQueriesImpl) generation(ctx context.Context) int64 {
	raw, ok := q.cache.Get(ctx, shared.AvailableResourcesGenKey)
	if !ok {
		return 0
	}
	gen, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		slog.WarnContext(ctx, "ignoring malformed listing generation", "value", string(raw))
		return 0
	}
	return gen
}

func (q *resourceQueriesImpl) ListAll(ctx context.Context) ([]*ResourceView, error) {
	return q.readStore.ListAll(ctx)
}
