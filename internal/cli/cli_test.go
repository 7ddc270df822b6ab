package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/arrowword/internal/logger"
	"github.com/bastiangx/arrowword/pkg/config"
	"github.com/bastiangx/arrowword/pkg/generator"
	"github.com/bastiangx/arrowword/pkg/words"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainConfig() config.CliConfig {
	c := config.DefaultConfig().CLI
	c.Color = false
	return c
}

func newGenerator(t *testing.T) *generator.Generator {
	t.Helper()
	g, err := generator.NewGenerator(config.DefaultConfig(), logger.Quiet())
	require.NoError(t, err)
	return g
}

func TestMain(m *testing.M) {
	log.SetOutput(&bytes.Buffer{})
	m.Run()
}

func TestRenderPuzzle(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, plainConfig())
	p, err := newGenerator(t).Generate([]words.Entry{
		{Text: "pen", Hint: "writes"},
		{Text: "eraser"},
		{Text: "schedule", Hint: "a plan"},
		{Text: "phone"},
	})
	require.NoError(t, err)

	s := r.Puzzle(p)
	assert.Contains(t, s, "s c h e d u l e")
	assert.Contains(t, s, "_ _ p _ _ _ _ _")
	assert.Contains(t, s, "╭")
	assert.Contains(t, s, "Across")
	assert.Contains(t, s, "Down")
	assert.Contains(t, s, "a plan")
	assert.Contains(t, s, "Left out: eraser")
	assert.NotContains(t, s, "\x1b[")
}

func TestRenderHidesHints(t *testing.T) {
	cfg := plainConfig()
	cfg.ShowHints = false
	cfg.ShowUnplaced = false
	r := NewRenderer(&bytes.Buffer{}, cfg)

	p, err := newGenerator(t).Generate([]words.Entry{{Text: "hello", Hint: "a greeting"}, {Text: "bye"}})
	require.NoError(t, err)
	s := r.Puzzle(p)
	assert.NotContains(t, s, "a greeting")
	assert.NotContains(t, s, "Left out")
}

func TestRenderStuck(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, plainConfig())
	p, err := newGenerator(t).Generate(words.FromStrings("chair", "card", "bet"))
	require.Error(t, err)
	s := r.Puzzle(p)
	assert.Contains(t, s, "Stopped early")
	assert.Contains(t, s, "Left out: bet")
}

func TestInputHandler(t *testing.T) {
	in := strings.NewReader("hello;a greeting\nbye\n:list\n:go\n:quit\nspeaker chair\n")
	var out bytes.Buffer
	h := NewInputHandler(newGenerator(t), NewRenderer(&out, plainConfig()), in, &out)
	require.NoError(t, h.Start())

	s := out.String()
	assert.Contains(t, s, " 1. hello a greeting")
	assert.Contains(t, s, "h e l l o")
	assert.Contains(t, s, "_ b _ _ _")
	// nothing after :quit is read
	assert.NotContains(t, s, "speaker")
}

func TestInputHandlerBuildsAtEOF(t *testing.T) {
	in := strings.NewReader("speaker chair")
	var out bytes.Buffer
	h := NewInputHandler(newGenerator(t), NewRenderer(&out, plainConfig()), in, &out)
	require.NoError(t, h.Start())
	assert.Contains(t, out.String(), "s p e a k e r")
}

func TestInputHandlerClear(t *testing.T) {
	in := strings.NewReader("hello bye\n:clear\n:go\n")
	var out bytes.Buffer
	h := NewInputHandler(newGenerator(t), NewRenderer(&out, plainConfig()), in, &out)
	require.NoError(t, h.Start())
	assert.Empty(t, out.String())
}

func TestParseLine(t *testing.T) {
	assert.Equal(t, []words.Entry{{Text: "chair", Hint: "a seat, with legs"}}, parseLine("chair;a seat, with legs"))
	assert.Equal(t, words.FromStrings("chair", "card"), parseLine("chair  card"))
	assert.Equal(t, []words.Entry{{Text: "chair"}}, parseLine("chair;"))
}
