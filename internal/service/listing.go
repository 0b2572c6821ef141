package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/skillbridge-bd/institute-backend/internal/cache"
)

// Collection names used as public list cache keys.
const (
	collectionResults      = "results"
	collectionCertificates = "certificates"
	collectionSeminars     = "seminars"
)

// cachedList serves a public listing from the cache, loading and storing it
// on a miss. The fill is tagged with the generation seen before the load, so
// a write landing during the load keeps the stale result out of the cache.
// Cache errors are logged and fall through to the store.
func cachedList[T any](ctx context.Context, c cache.ListCache, log zerolog.Logger, collection string, load func(context.Context) ([]T, error)) ([]T, error) {
	var items []T
	ok, err := c.Get(ctx, collection, &items)
	if err != nil {
		log.Warn().Err(err).Str("collection", collection).Msg("list cache read failed")
	}
	if ok {
		return items, nil
	}

	gen, genErr := c.Generation(ctx, collection)
	if genErr != nil {
		log.Warn().Err(genErr).Str("collection", collection).Msg("list cache generation read failed")
	}

	items, err = load(ctx)
	if err != nil {
		return nil, err
	}

	if genErr != nil {
		return items, nil
	}
	if err := c.Set(ctx, collection, gen, items); err != nil {
		log.Warn().Err(err).Str("collection", collection).Msg("list cache write failed")
	}
	return items, nil
}

// invalidate drops a cached listing after a write.
func invalidate(ctx context.Context, c cache.ListCache, log zerolog.Logger, collection string) {
	if err := c.Invalidate(ctx, collection); err != nil {
		log.Warn().Err(err).Str("collection", collection).Msg("list cache invalidation failed")
	}
}
