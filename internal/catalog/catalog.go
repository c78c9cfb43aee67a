// Package catalog supplies the immutable list of rateable gallery items and
// the hotness/style lookup table. The rest of the application treats the
// catalog as read-only input.
package catalog

import (
	"sync"

	"github.com/ratemyshots/ratemyshots-server/internal/domain"
)

// Catalog is an immutable, ordered set of gallery items.
type Catalog struct {
	items []domain.CatalogItem
	byID  map[string]int // index into items
}

// New builds a catalog from items. Items are assumed validated; use Load for
// untrusted input.
func New(items []domain.CatalogItem) *Catalog {
	c := &Catalog{
		items: make([]domain.CatalogItem, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	copy(c.items, items)
	for i, item := range c.items {
		c.byID[item.ID] = i
	}
	return c
}

// Default returns the built-in catalog of 16 gallery items.
func Default() *Catalog {
	return New(defaultItems)
}

// Items returns all items in catalog order.
func (c *Catalog) Items() []domain.CatalogItem {
	out := make([]domain.CatalogItem, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the item with the given id.
func (c *Catalog) Get(id string) (domain.CatalogItem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.CatalogItem{}, false
	}
	return c.items[i], true
}

// Has reports whether an item with the given id exists.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// HotnessDistribution counts catalog items per hotness level 1-5.
func (c *Catalog) HotnessDistribution() map[int]int {
	dist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, item := range c.items {
		dist[item.Hotness]++
	}
	return dist
}

// Provider hands out the current catalog and supports atomic replacement when
// a catalog file is edited on disk. Readers always see a complete catalog.
type Provider struct {
	mu      sync.RWMutex
	current *Catalog
}

// NewProvider creates a provider serving the given catalog.
func NewProvider(c *Catalog) *Provider {
	return &Provider{current: c}
}

// Current returns the catalog currently in effect.
func (p *Provider) Current() *Catalog {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Replace swaps in a new catalog.
func (p *Provider) Replace(c *Catalog) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = c
}
