// Package cache wraps the catalog reader with an in-memory LRU layer.
// Menu lookups happen on every placed line while the menu itself changes
// rarely, which makes the catalog the one read path worth caching. Entries
// expire so that price changes show up within the TTL; orders are unaffected
// either way because they snapshot the price at placement.
package cache

import (
	"context"
	"log/slog"
	"time"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/ports"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachingCatalogReader is a read-through decorator over a CatalogReader.
// Only successful lookups are cached; unknown names go to the source every
// time so newly added dishes resolve immediately.
type CachingCatalogReader struct {
	source ports.CatalogReader
	cache  *expirable.LRU[string, *catalog.FoodItem]
	log    *slog.Logger
}

// NewCachingCatalogReader wraps source with an LRU of the given size whose
// entries expire after ttl.
func NewCachingCatalogReader(
	source ports.CatalogReader,
	log *slog.Logger,
	size int,
	ttl time.Duration,
) *CachingCatalogReader {
	return &CachingCatalogReader{
		source: source,
		cache:  expirable.NewLRU[string, *catalog.FoodItem](size, nil, ttl),
		log:    log,
	}
}

// FindFoodItemByName resolves a dish from the cache, falling back to the
// underlying reader on a miss.
func (c *CachingCatalogReader) FindFoodItemByName(ctx context.Context, name string) (*catalog.FoodItem, error) {
	if item, ok := c.cache.Get(name); ok {
		return item, nil
	}

	item, err := c.source.FindFoodItemByName(ctx, name)
	if err != nil {
		return nil, err
	}

	c.cache.Add(name, item)
	c.log.Debug("catalog entry cached", slog.String("name", name))
	return item, nil
}
