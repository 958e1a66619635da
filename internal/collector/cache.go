package collector

import (
	"fmt"
	"sync"
	"time"

	"TickerWatch/internal/model"
)

type cacheEntry struct {
	value   any
	fetched time.Time
}

// CachedFetcher memoizes another Fetcher's responses for a fixed TTL, so
// repeated analysis of the same symbol within the window reuses the first
// response. A non-positive TTL disables caching entirely.
type CachedFetcher struct {
	inner Fetcher
	ttl   time.Duration

	mu      sync.Mutex
	entries map[string]cacheEntry
}

// NewCachedFetcher wraps a fetcher with a TTL cache.
func NewCachedFetcher(inner Fetcher, ttl time.Duration) *CachedFetcher {
	return &CachedFetcher{
		inner:   inner,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *CachedFetcher) Name() string { return c.inner.Name() }

func (c *CachedFetcher) FetchHistorical(symbol string, days int) (*model.HistoricalData, error) {
	key := fmt.Sprintf("historical_%s_%d", symbol, days)
	if v, ok := c.get(key); ok {
		return v.(*model.HistoricalData), nil
	}
	data, err := c.inner.FetchHistorical(symbol, days)
	if err != nil {
		return nil, err
	}
	c.put(key, data)
	return data, nil
}

func (c *CachedFetcher) FetchQuote(symbol string) (model.Quote, error) {
	key := fmt.Sprintf("quote_%s", symbol)
	if v, ok := c.get(key); ok {
		return v.(model.Quote), nil
	}
	quote, err := c.inner.FetchQuote(symbol)
	if err != nil {
		return nil, err
	}
	c.put(key, quote)
	return quote, nil
}

func (c *CachedFetcher) FetchCurrentPrice(symbol string) (float64, error) {
	key := fmt.Sprintf("price_%s", symbol)
	if v, ok := c.get(key); ok {
		return v.(float64), nil
	}
	price, err := c.inner.FetchCurrentPrice(symbol)
	if err != nil {
		return 0, err
	}
	c.put(key, price)
	return price, nil
}

func (c *CachedFetcher) get(key string) (any, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok || time.Since(entry.fetched) >= c.ttl {
		return nil, false
	}
	return entry.value, true
}

func (c *CachedFetcher) put(key string, value any) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, fetched: time.Now()}
}
