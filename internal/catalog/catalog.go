package catalog

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Default sizing for a full data set run
const (
	DefaultSize = 4096
	DefaultTTL  = 30 * time.Minute
)

// Lookup is the batch existence query the catalog sits in front of
type Lookup interface {
	ExistingItemIDs(ctx context.Context, ids []string) (map[string]bool, error)
}

// Catalog caches item ids known to exist. Only positive answers are kept:
// the pipeline never deletes items, but a missing id may be inserted by a
// later file.
type Catalog struct {
	lru *expirable.LRU[string, struct{}]
}

// New creates a catalog holding up to size ids for ttl each
func New(size int, ttl time.Duration) *Catalog {
	return &Catalog{
		lru: expirable.NewLRU[string, struct{}](size, nil, ttl),
	}
}

// Existing reports which of ids exist. Cached ids are answered locally; the
// rest go to q in a single call. Ids found by q are not cached here since q
// may be an uncommitted transaction; call Remember after commit.
func (c *Catalog) Existing(ctx context.Context, q Lookup, ids []string) (map[string]bool, error) {
	found := make(map[string]bool, len(ids))
	var ask []string
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		if c.lru.Contains(id) {
			found[id] = true
			continue
		}
		ask = append(ask, id)
	}
	if len(ask) == 0 {
		return found, nil
	}

	got, err := q.ExistingItemIDs(ctx, ask)
	if err != nil {
		return nil, err
	}
	for id, ok := range got {
		if ok {
			found[id] = true
		}
	}
	return found, nil
}

// Remember marks ids as existing. Call it once the write that created them
// is committed.
func (c *Catalog) Remember(ids ...string) {
	for _, id := range ids {
		if id != "" {
			c.lru.Add(id, struct{}{})
		}
	}
}

// Invalidate forgets ids
func (c *Catalog) Invalidate(ids ...string) {
	for _, id := range ids {
		c.lru.Remove(id)
	}
}

// Clear forgets everything
func (c *Catalog) Clear() {
	c.lru.Purge()
}

// Len returns the number of cached ids
func (c *Catalog) Len() int {
	return c.lru.Len()
}
