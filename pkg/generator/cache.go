package generator

import (
	"math"
	"strings"
	"sync"

	"github.com/bastiangx/arrowword/pkg/words"
	"github.com/charmbracelet/log"
)

// Cache keeps the most recently used puzzles keyed by their word list. The
// layout is deterministic, so the same list always yields the same grid.
type Cache struct {
	puzzles     map[string]*Puzzle
	accessTime  map[string]int64
	accessCount int64
	hits        int
	misses      int
	maxEntries  int
	mu          sync.Mutex
}

func NewCache(maxEntries int) *Cache {
	return &Cache{
		puzzles:    make(map[string]*Puzzle, maxEntries),
		accessTime: make(map[string]int64, maxEntries),
		maxEntries: maxEntries,
	}
}

func (c *Cache) Get(key string) (*Puzzle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.puzzles[key]
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	c.markAccessed(key)
	return p, true
}

func (c *Cache) Put(key string, p *Puzzle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.puzzles[key]; !ok && len(c.puzzles) >= c.maxEntries {
		c.evictLRU()
	}
	c.puzzles[key] = p
	c.markAccessed(key)
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.puzzles)
}

func (c *Cache) Stats() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return map[string]int{
		"cachedPuzzles":    len(c.puzzles),
		"maxCachedPuzzles": c.maxEntries,
		"cacheHits":        c.hits,
		"cacheMisses":      c.misses,
	}
}

func (c *Cache) markAccessed(key string) {
	c.accessCount++
	c.accessTime[key] = c.accessCount
}

func (c *Cache) evictLRU() {
	var oldestKey string
	var oldestTime int64 = math.MaxInt64

	for key, t := range c.accessTime {
		if t < oldestTime {
			oldestTime = t
			oldestKey = key
		}
	}

	if oldestKey != "" {
		delete(c.puzzles, oldestKey)
		delete(c.accessTime, oldestKey)
		log.Debugf("Evicted puzzle of %d words from cache", strings.Count(oldestKey, "\x1e"))
	}
}

// cacheKey joins the entries with separators that cannot occur in a
// cleaned word.
func cacheKey(entries []words.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Text)
		b.WriteByte('\x1f')
		b.WriteString(e.Hint)
		b.WriteByte('\x1e')
	}
	return b.String()
}
