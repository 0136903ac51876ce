// Package ratecache keeps the exchange rates of a rate type and date in
// process memory so a balance computation does not hit the database once per
// currency.
package ratecache

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/iho/gotrialbalance/internal/domain"
)

// Cache stores exchange rate tables keyed by (rate type, date). Concurrent
// writers of the same key are last-writer-wins.
type Cache struct {
	store *gocache.Cache
}

// New creates a cache whose entries expire after ttl.
func New(ttl time.Duration) *Cache {
	cleanup := 2 * ttl
	if ttl <= 0 {
		ttl = gocache.NoExpiration
		cleanup = 0
	}
	return &Cache{store: gocache.New(ttl, cleanup)}
}

func key(rateType string, date time.Time) string {
	return strings.ToUpper(rateType) + "|" + domain.TruncateDay(date).Format(domain.DateLayout)
}

// Get returns the rates cached for a rate type and date.
func (c *Cache) Get(rateType string, date time.Time) ([]*domain.ExchangeRate, bool) {
	v, ok := c.store.Get(key(rateType, date))
	if !ok {
		return nil, false
	}
	return v.([]*domain.ExchangeRate), true
}

// Set replaces the rates of a rate type and date.
func (c *Cache) Set(rateType string, date time.Time, rates []*domain.ExchangeRate) {
	c.store.SetDefault(key(rateType, date), rates)
}

// Invalidate drops the rates of a rate type and date.
func (c *Cache) Invalidate(rateType string, date time.Time) {
	c.store.Delete(key(rateType, date))
}

// Flush drops every cached table.
func (c *Cache) Flush() {
	c.store.Flush()
}

// Len returns the number of cached tables.
func (c *Cache) Len() int {
	return c.store.ItemCount()
}
