package layout

import (
	"sync"
	"sync/atomic"
)

// DefaultRunCacheCapacity is the number of runs kept when NewRunCache is
// given a non-positive capacity.
const DefaultRunCacheCapacity = 512

// RunKey identifies a laid-out run independently of its start position.
type RunKey struct {
	Font     string
	Variant  string
	Text     string
	FontSize float32
	Options  Options
}

// RunCacheStats holds run cache counters.
type RunCacheStats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// runNode is an entry of the recency list. The head is the most recently
// used run.
type runNode struct {
	key        RunKey
	instances  []GlyphInstance
	prev, next *runNode
}

// RunCache keeps the instances of recently laid-out runs, positioned at the
// origin, so a frame loop that redraws the same labels does not walk the
// glyph tables again. The least recently used run is evicted when the cache
// is full.
//
// RunCache is safe for concurrent use.
type RunCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[RunKey]*runNode
	head     *runNode
	tail     *runNode

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// NewRunCache creates a cache holding up to capacity runs.
func NewRunCache(capacity int) *RunCache {
	if capacity <= 0 {
		capacity = DefaultRunCacheCapacity
	}
	return &RunCache{
		capacity: capacity,
		entries:  make(map[RunKey]*runNode),
	}
}

// GetOrCreate returns the cached run for key, calling create on a miss.
// create runs with the cache locked and must not call back into it.
//
// The returned slice is shared; callers must not modify it.
func (c *RunCache) GetOrCreate(key RunKey, create func() []GlyphInstance) []GlyphInstance {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		c.moveToFront(n)
		c.hits.Add(1)
		return n.instances
	}
	c.misses.Add(1)

	instances := create()
	for len(c.entries) >= c.capacity && c.tail != nil {
		old := c.tail
		c.unlink(old)
		delete(c.entries, old.key)
		c.evictions.Add(1)
	}
	n := &runNode{key: key, instances: instances}
	c.pushFront(n)
	c.entries[key] = n
	return instances
}

// Len returns the number of cached runs.
func (c *RunCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear removes all runs. Counters are kept.
func (c *RunCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	c.head, c.tail = nil, nil
}

// Stats returns current cache statistics.
func (c *RunCache) Stats() RunCacheStats {
	return RunCacheStats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

func (c *RunCache) pushFront(n *runNode) {
	n.prev = nil
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

func (c *RunCache) moveToFront(n *runNode) {
	if n == c.head {
		return
	}
	c.unlink(n)
	c.pushFront(n)
}

func (c *RunCache) unlink(n *runNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev, n.next = nil, nil
}

// translate returns a copy of run moved by offset.
func translate(run []GlyphInstance, offset Vec2) []GlyphInstance {
	if run == nil {
		return nil
	}
	out := make([]GlyphInstance, len(run))
	for i, inst := range run {
		inst.Position = inst.Position.Add(offset)
		out[i] = inst
	}
	return out
}
