package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bastiangx/arrowword/internal/logger"
	"github.com/bastiangx/arrowword/pkg/config"
	"github.com/bastiangx/arrowword/pkg/dictionary"
	"github.com/bastiangx/arrowword/pkg/layout"
	"github.com/bastiangx/arrowword/pkg/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerator(t *testing.T, apply func(*config.Config)) *Generator {
	t.Helper()
	cfg := config.DefaultConfig()
	if apply != nil {
		apply(cfg)
	}
	g, err := NewGenerator(cfg, logger.Quiet())
	require.NoError(t, err)
	return g
}

func TestGenerate(t *testing.T) {
	g := newGenerator(t, nil)
	p, err := g.Generate(words.FromStrings("Chair", "cardboard", "speaker", "bottle", "chair", "42"))
	require.NoError(t, err)
	assert.False(t, p.Cached)
	assert.Equal(t, layout.StateDone, p.Result.State)
	assert.Len(t, p.Result.Placed, 4)
	assert.Equal(t, "____s_______", p.Result.Grid.Lines()[0])
}

func TestGenerateCachesResults(t *testing.T) {
	g := newGenerator(t, nil)
	input := words.FromStrings("hello", "bye")

	first, err := g.Generate(input)
	require.NoError(t, err)
	second, err := g.Generate(input)
	require.NoError(t, err)

	assert.True(t, second.Cached)
	assert.Same(t, first.Result, second.Result)

	stats := g.Stats()
	assert.Equal(t, 1, stats["generated"])
	assert.Equal(t, 1, stats["cacheHits"])
	assert.Equal(t, 1, stats["cachedPuzzles"])
}

func TestGenerateWithoutCache(t *testing.T) {
	g := newGenerator(t, func(c *config.Config) { c.Engine.CacheSize = 0 })
	input := words.FromStrings("hello", "bye")
	for i := 0; i < 2; i++ {
		p, err := g.Generate(input)
		require.NoError(t, err)
		assert.False(t, p.Cached)
	}
	assert.Equal(t, 2, g.Stats()["generated"])
	_, ok := g.Stats()["cacheHits"]
	assert.False(t, ok)
}

func TestGenerateStuck(t *testing.T) {
	g := newGenerator(t, nil)
	input := words.FromStrings("chair", "card", "bet")
	p, err := g.Generate(input)
	require.ErrorIs(t, err, layout.ErrNoIntersection)
	require.NotNil(t, p)
	assert.Equal(t, layout.StateStuck, p.Result.State)

	// stuck runs are not cached
	p, err = g.Generate(input)
	require.Error(t, err)
	assert.False(t, p.Cached)
	assert.Equal(t, 2, g.Stats()["stuck"])
}

func TestGenerateSkipUnplaceable(t *testing.T) {
	g := newGenerator(t, func(c *config.Config) { c.Engine.SkipUnplaceable = true })
	p, err := g.Generate(words.FromStrings("chair", "card", "bet"))
	require.NoError(t, err)
	assert.Len(t, p.Result.Unplaced, 1)
	assert.Equal(t, "bet", p.Result.Unplaced[0].String())
}

func TestGenerateNoWords(t *testing.T) {
	g := newGenerator(t, nil)
	_, err := g.Generate(words.FromStrings("1", "22"))
	assert.ErrorIs(t, err, dictionary.ErrNoWords)
}

func TestNewGeneratorRejectsBadConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Engine.Scan = "spiral"
	_, err := NewGenerator(cfg, logger.Quiet())
	assert.Error(t, err)
}

func TestGenerateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello;a greeting\nbye;a farewell\n"), 0644))

	g := newGenerator(t, nil)
	p, err := g.GenerateFile(path)
	require.NoError(t, err)
	require.Len(t, p.Result.Placed, 2)
	assert.Equal(t, "a greeting", p.Result.Placed[0].Hint())
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewCache(2)
	a, b, d := &Puzzle{}, &Puzzle{}, &Puzzle{}
	c.Put("a", a)
	c.Put("b", b)
	_, ok := c.Get("a")
	require.True(t, ok)
	c.Put("d", d)

	assert.Equal(t, 2, c.Len())
	_, ok = c.Get("b")
	assert.False(t, ok)
	got, ok := c.Get("a")
	assert.True(t, ok)
	assert.Same(t, a, got)
}
