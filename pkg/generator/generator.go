package generator

import (
	"fmt"
	"sync"
	"time"

	"github.com/bastiangx/arrowword/internal/logger"
	"github.com/bastiangx/arrowword/pkg/config"
	"github.com/bastiangx/arrowword/pkg/dictionary"
	"github.com/bastiangx/arrowword/pkg/layout"
	"github.com/bastiangx/arrowword/pkg/words"
	"github.com/charmbracelet/log"
)

// Puzzle is one finished run. Cached puzzles are shared between callers and
// must be treated as read-only.
type Puzzle struct {
	Result *layout.Result
	Took   time.Duration
	Cached bool
}

// Generator is safe for concurrent use; every run gets its own layout.
type Generator struct {
	dictOpts   []dictionary.Option
	layoutOpts []layout.Option
	policy     words.CasePolicy
	cache      *Cache
	log        *log.Logger

	mu        sync.Mutex
	generated int
	stuck     int
}

// NewGenerator validates cfg once and keeps the derived options. A nil
// logger falls back to a "gen" prefixed one.
func NewGenerator(cfg *config.Config, l *log.Logger) (*Generator, error) {
	if l == nil {
		l = logger.New("gen")
	}
	policy, err := cfg.CasePolicy()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	dictOpts, err := cfg.DictionaryOptions()
	if err != nil {
		return nil, err
	}
	layoutOpts, err := cfg.LayoutOptions()
	if err != nil {
		return nil, err
	}

	g := &Generator{
		dictOpts:   append(dictOpts, dictionary.WithLogger(l)),
		layoutOpts: append(layoutOpts, layout.WithLogger(l)),
		policy:     policy,
		log:        l,
	}
	if cfg.Engine.CacheSize > 0 {
		g.cache = NewCache(cfg.Engine.CacheSize)
	}
	return g, nil
}

// Generate filters entries and lays them out. When the layout gets stuck the
// partial puzzle is returned together with the error.
func (g *Generator) Generate(entries []words.Entry) (*Puzzle, error) {
	start := time.Now()

	lex, err := dictionary.FromEntries(entries, g.dictOpts...)
	if err != nil {
		return nil, err
	}
	kept := lex.Entries()

	key := cacheKey(kept)
	if g.cache != nil {
		if p, ok := g.cache.Get(key); ok {
			g.log.Debug("cache hit", "words", len(kept))
			return &Puzzle{Result: p.Result, Took: time.Since(start), Cached: true}, nil
		}
	}

	list, err := words.New(kept, words.WithCasePolicy(g.policy))
	if err != nil {
		return nil, err
	}
	lay, err := layout.New(g.layoutOpts...)
	if err != nil {
		return nil, err
	}

	res, err := lay.Build(list)
	if res == nil {
		return nil, err
	}
	p := &Puzzle{Result: res, Took: time.Since(start)}

	g.mu.Lock()
	g.generated++
	if err != nil {
		g.stuck++
	}
	g.mu.Unlock()

	if err != nil {
		return p, err
	}
	if g.cache != nil {
		g.cache.Put(key, p)
	}
	g.log.Debug("generated", "placed", len(res.Placed), "unplaced", len(res.Unplaced), "took", p.Took)
	return p, nil
}

// GenerateFile loads a word list file and lays it out.
func (g *Generator) GenerateFile(path string) (*Puzzle, error) {
	lex, err := dictionary.Load(path, g.dictOpts...)
	if err != nil {
		return nil, err
	}
	return g.Generate(lex.Entries())
}

func (g *Generator) Stats() map[string]int {
	g.mu.Lock()
	stats := map[string]int{
		"generated": g.generated,
		"stuck":     g.stuck,
	}
	g.mu.Unlock()

	if g.cache != nil {
		for k, v := range g.cache.Stats() {
			stats[k] = v
		}
	}
	return stats
}
