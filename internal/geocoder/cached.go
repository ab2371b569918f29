// File: internal/geocoder/cached.go
package geocoder

import (
	"context"
	"encoding/json"
	"time"

	"bootcampdir/internal/cache"
)

const cacheTTL = 24 * time.Hour

// Cached decorates a Geocoder with a redis lookup cache. Postal-code
// coordinates are effectively static, so cache failures fall through to the
// provider instead of failing the request.
type Cached struct {
	next Geocoder
	rdb  cache.Cache
}

func NewCached(next Geocoder, rdb cache.Cache) *Cached {
	return &Cached{next: next, rdb: rdb}
}

func cacheKey(postalCode string) string {
	return "geocode:" + postalCode
}

func (c *Cached) Geocode(ctx context.Context, postalCode string) (Location, error) {
	if raw, err := c.rdb.Get(ctx, cacheKey(postalCode)).Result(); err == nil {
		var loc Location
		if err := json.Unmarshal([]byte(raw), &loc); err == nil {
			return loc, nil
		}
	}

	loc, err := c.next.Geocode(ctx, postalCode)
	if err != nil {
		return Location{}, err
	}

	if raw, err := json.Marshal(loc); err == nil {
		c.rdb.Set(ctx, cacheKey(postalCode), raw, cacheTTL)
	}
	return loc, nil
}
