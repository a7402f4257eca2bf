package ttlcache

import (
	"sync"
	"time"

	"github.com/cespare/xxhash"
)

const defaultStripes = 16

type entry[V any] struct {
	value   V
	expires time.Time
}

type stripe[V any] struct {
	mu    sync.Mutex
	items map[string]entry[V]
}

// Cache is a lock striped string keyed cache with time to live per entry.
// Expired entries are evicted when accessed; no background goroutine is used.
type Cache[V any] struct {
	ttl     time.Duration
	now     func() time.Time
	stripes []*stripe[V]
}

// Option configures the cache
type Option func(*config)

type config struct {
	stripes int
	now     func() time.Time
}

// WithStripes sets number of lock stripes
func WithStripes(n int) Option {
	return func(c *config) { c.stripes = n }
}

// WithClock sets time source
func WithClock(now func() time.Time) Option {
	return func(c *config) { c.now = now }
}

func New[V any](ttl time.Duration, opts ...Option) *Cache[V] {
	cfg := &config{stripes: defaultStripes, now: time.Now}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.stripes <= 0 {
		cfg.stripes = defaultStripes
	}
	ret := &Cache[V]{ttl: ttl, now: cfg.now, stripes: make([]*stripe[V], cfg.stripes)}
	for i := range ret.stripes {
		ret.stripes[i] = &stripe[V]{items: map[string]entry[V]{}}
	}
	return ret
}

func (c *Cache[V]) stripe(key string) *stripe[V] {
	return c.stripes[xxhash.Sum64([]byte(key))%uint64(len(c.stripes))]
}

func (c *Cache[V]) Get(key string) (V, bool) {
	s := c.stripe(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	if item, ok := s.items[key]; ok {
		if c.now().Before(item.expires) {
			return item.value, true
		}
		delete(s.items, key)
	}
	var zero V
	return zero, false
}

func (c *Cache[V]) Set(key string, value V) {
	s := c.stripe(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = entry[V]{value: value, expires: c.now().Add(c.ttl)}
}

// GetOrCompute returns cached value or computes and caches it; failed computations are not cached.
// The compute function runs outside of the stripe lock, so concurrent misses for the same key may
// compute more than once.
func (c *Cache[V]) GetOrCompute(key string, compute func() (V, error)) (V, bool, error) {
	if value, ok := c.Get(key); ok {
		return value, true, nil
	}
	value, err := compute()
	if err != nil {
		return value, false, err
	}
	c.Set(key, value)
	return value, false, nil
}

// Len returns number of entries that have not expired
func (c *Cache[V]) Len() int {
	now := c.now()
	count := 0
	for _, s := range c.stripes {
		s.mu.Lock()
		for key, item := range s.items {
			if now.Before(item.expires) {
				count++
				continue
			}
			delete(s.items, key)
		}
		s.mu.Unlock()
	}
	return count
}

// Purge removes all entries
func (c *Cache[V]) Purge() {
	for _, s := range c.stripes {
		s.mu.Lock()
		s.items = map[string]entry[V]{}
		s.mu.Unlock()
	}
}
