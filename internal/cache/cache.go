// Package cache provides the layout cache and coordinator: it memoizes
// optimization results per garden content fingerprint, de-duplicates
// concurrent requests for the same fingerprint (single-flight), expires
// entries after a validity window and bounds memory with LRU eviction.
//
// The cache is an accelerator, never a correctness dependency: a miss is
// always recomputable from scratch.
package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/piwi3910/GardenPlot/internal/model"
)

// Runner produces a layout for a garden. *engine.Optimizer satisfies it.
type Runner interface {
	Optimize(garden model.Garden) (model.Layout, error)
}

// Default cache bounds.
const (
	DefaultTTL        = 24 * time.Hour
	DefaultMaxEntries = 100
)

// Options configures a Cache. Zero values select the defaults.
type Options struct {
	TTL        time.Duration
	MaxEntries int
	Clock      Clock
}

// Cache coordinates optimization runs. Its single mutex guards only the
// bookkeeping maps; it is never held while an optimization runs, so callers
// for different gardens proceed fully in parallel.
type Cache struct {
	runner Runner
	ttl    time.Duration
	max    int
	clock  Clock

	mu       sync.Mutex
	entries  map[string]*entry              // fingerprint -> entry
	byGarden map[string]map[string]struct{} // garden id -> fingerprints
	order    *list.List                     // LRU order, front = most recently used
}

// entry is one cached (or in-flight) computation. Until done is closed only
// the coordinator goroutine writes it; after done is closed layout and err
// are immutable, so waiters read them without the lock.
type entry struct {
	gardenID    string
	fingerprint string
	done        chan struct{}
	layout      model.Layout
	err         error
	completedAt time.Time
	elem        *list.Element
}

// New creates a Cache around the given runner.
func New(runner Runner, opts Options) *Cache {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = DefaultMaxEntries
	}
	if opts.Clock == nil {
		opts.Clock = realClock{}
	}
	return &Cache{
		runner:   runner,
		ttl:      opts.TTL,
		max:      opts.MaxEntries,
		clock:    opts.Clock,
		entries:  make(map[string]*entry),
		byGarden: make(map[string]map[string]struct{}),
		order:    list.New(),
	}
}

// Layout returns the layout for the garden, computing it at most once per
// content fingerprint. Concurrent callers for the same fingerprint share a
// single in-flight run; a failed run is propagated to every waiter and the
// entry cleared so the next caller retries fresh.
func (c *Cache) Layout(garden model.Garden) (model.Layout, error) {
	fp := model.Fingerprint(garden)

	c.mu.Lock()
	if e, ok := c.entries[fp]; ok {
		select {
		case <-e.done:
			if c.clock.Now().Sub(e.completedAt) < c.ttl {
				c.order.MoveToFront(e.elem)
				c.mu.Unlock()
				return e.layout, nil
			}
			// Expired: treated as a miss.
			c.removeLocked(e)
		default:
			// In flight: attach to the pending result.
			c.mu.Unlock()
			<-e.done
			return e.layout, e.err
		}
	}

	e := &entry{
		gardenID:    garden.ID,
		fingerprint: fp,
		done:        make(chan struct{}),
	}
	e.elem = c.order.PushFront(fp)
	c.entries[fp] = e
	if c.byGarden[garden.ID] == nil {
		c.byGarden[garden.ID] = make(map[string]struct{})
	}
	c.byGarden[garden.ID][fp] = struct{}{}
	c.mu.Unlock()

	layout, err := c.runner.Optimize(garden)

	c.mu.Lock()
	e.layout = layout
	e.err = err
	e.completedAt = c.clock.Now()
	close(e.done)
	if err != nil {
		// Never replay a poisoned result.
		c.removeLocked(e)
	} else {
		c.evictLocked()
	}
	c.mu.Unlock()

	return layout, err
}

// Invalidate drops all cached layouts for a garden, typically after its
// zones, plants or area changed. In-flight runs complete for their current
// waiters but are not served to later callers.
func (c *Cache) Invalidate(gardenID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for fp := range c.byGarden[gardenID] {
		if e, ok := c.entries[fp]; ok {
			c.removeLocked(e)
		}
	}
}

// Len returns the number of cached entries, in-flight included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// removeLocked deletes an entry from all bookkeeping structures. Callers
// hold c.mu.
func (c *Cache) removeLocked(e *entry) {
	if cur, ok := c.entries[e.fingerprint]; !ok || cur != e {
		return // already superseded by a newer entry for the same fingerprint
	}
	delete(c.entries, e.fingerprint)
	c.order.Remove(e.elem)
	if fps := c.byGarden[e.gardenID]; fps != nil {
		delete(fps, e.fingerprint)
		if len(fps) == 0 {
			delete(c.byGarden, e.gardenID)
		}
	}
}

// evictLocked drops least-recently-used completed entries until the cache is
// within bounds. Pending entries are never evicted: their waiters hold them.
func (c *Cache) evictLocked() {
	for len(c.entries) > c.max {
		evicted := false
		for el := c.order.Back(); el != nil; el = el.Prev() {
			e := c.entries[el.Value.(string)]
			if e == nil {
				c.order.Remove(el)
				evicted = true
				break
			}
			select {
			case <-e.done:
				c.removeLocked(e)
				evicted = true
			default:
				continue
			}
			break
		}
		if !evicted {
			return // everything pending, nothing to evict
		}
	}
}
