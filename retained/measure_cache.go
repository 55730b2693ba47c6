package retained

import (
	"container/list"
	"math"
	"strconv"
)

// MeasureCache is an LRU cache in front of a Measurer. Trees are rebuilt
// on every state change, so most strings are measured many times.
type MeasureCache struct {
	inner   Measurer
	maxSize int
	cache   map[string]*list.Element
	lru     *list.List // Front = most recently used
}

type cacheEntry struct {
	key  string
	size Size
}

// NewMeasureCache wraps m with a cache of at most maxSize entries.
func NewMeasureCache(m Measurer, maxSize int) *MeasureCache {
	if maxSize <= 0 {
		maxSize = 10000
	}
	return &MeasureCache{
		inner:   m,
		maxSize: maxSize,
		cache:   make(map[string]*list.Element),
		lru:     list.New(),
	}
}

func (c *MeasureCache) Measure(font Font, text string) Size {
	key := font.Family + "\x00" + strconv.FormatUint(uint64(math.Float32bits(font.Size)), 16) + "\x00" + text
	if elem, ok := c.cache[key]; ok {
		c.lru.MoveToFront(elem)
		return elem.Value.(*cacheEntry).size
	}

	size := c.inner.Measure(font, text)

	// Evict oldest entries if at capacity
	for c.lru.Len() >= c.maxSize {
		oldest := c.lru.Back()
		c.lru.Remove(oldest)
		delete(c.cache, oldest.Value.(*cacheEntry).key)
	}
	c.cache[key] = c.lru.PushFront(&cacheEntry{key: key, size: size})
	return size
}

// Len returns the number of cached measurements.
func (c *MeasureCache) Len() int { return c.lru.Len() }

// Clear removes all entries, for example after the font set changes.
func (c *MeasureCache) Clear() {
	c.cache = make(map[string]*list.Element)
	c.lru.Init()
}
