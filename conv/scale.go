package conv

import (
	"errors"
	"strconv"
	"time"

	"github.com/viant/schemaconv/internal/ttlcache"
	"github.com/viant/schemaconv/schema"
)

// ScaleCache caches decimal scale derived from schema parameters.
// Cache hits and misses return the same outcome, only the cost differs.
type ScaleCache struct {
	cache *ttlcache.Cache[int]
}

// NewScaleCache creates a cache with supplied time to live
func NewScaleCache(ttl time.Duration) *ScaleCache {
	return newScaleCache(ttl, time.Now)
}

func newScaleCache(ttl time.Duration, now func() time.Time) *ScaleCache {
	return &ScaleCache{cache: ttlcache.New[int](ttl, ttlcache.WithClock(now))}
}

// ScaleOf returns decimal scale of the schema
func (c *ScaleCache) ScaleOf(s *schema.Schema) (int, error) {
	scale, cached, err := c.cache.GetOrCompute(s.Fingerprint(), func() (int, error) {
		return deriveScale(s)
	})
	if err == nil && !cached {
		log.Debugf("conv: derived scale %d for %v", scale, s)
	}
	return scale, err
}

// Len returns number of live entries
func (c *ScaleCache) Len() int {
	return c.cache.Len()
}

func deriveScale(s *schema.Schema) (int, error) {
	value, ok := s.Parameter(schema.ScaleParameter)
	if !ok {
		return 0, &InvalidDecimalSchemaError{Schema: s}
	}
	scale, err := strconv.Atoi(value)
	if err != nil {
		return 0, &InvalidDecimalSchemaError{Schema: s, Value: value, Err: err}
	}
	if scale < 0 {
		return 0, &InvalidDecimalSchemaError{Schema: s, Value: value, Err: errors.New("scale must not be negative")}
	}
	return scale, nil
}
