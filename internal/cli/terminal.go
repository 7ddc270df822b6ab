package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/arrowword/pkg/config"
	"github.com/bastiangx/arrowword/pkg/generator"
	"github.com/bastiangx/arrowword/pkg/layout"
	"github.com/bastiangx/arrowword/pkg/words"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Renderer draws puzzles for a terminal. With color off every style renders
// as plain text, frame included.
type Renderer struct {
	cfg    config.CliConfig
	letter lipgloss.Style
	empty  lipgloss.Style
	frame  lipgloss.Style
	title  lipgloss.Style
	hint   lipgloss.Style
	warn   lipgloss.Style
}

// NewRenderer creates a renderer for output written to w.
func NewRenderer(w io.Writer, cfg config.CliConfig) *Renderer {
	r := lipgloss.NewRenderer(w)
	if !cfg.Color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		cfg:    cfg,
		letter: r.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		empty:  r.NewStyle().Faint(true),
		frame: r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}),
		title: r.NewStyle().Bold(true).Underline(true),
		hint:  r.NewStyle().Italic(true),
		warn:  r.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// Grid draws the cells space separated inside a rounded frame.
func (r *Renderer) Grid(g *layout.Grid) string {
	rows := make([]string, 0, g.Rows())
	for _, line := range g.Matrix() {
		cells := make([]string, len(line))
		for i, c := range line {
			if c == g.Empty() {
				cells[i] = r.empty.Render(string(c))
			} else {
				cells[i] = r.letter.Render(string(c))
			}
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return r.frame.Render(strings.Join(rows, "\n"))
}

// Puzzle draws the grid followed by the word list per orientation and the
// words that were left out.
func (r *Renderer) Puzzle(p *generator.Puzzle) string {
	res := p.Result
	parts := []string{r.Grid(res.Grid)}

	for _, o := range []words.Orientation{words.Horizontal, words.Down} {
		var lines []string
		for i, w := range res.Placed {
			if w.Orientation() == o {
				lines = append(lines, r.clue(i+1, w))
			}
		}
		if len(lines) > 0 {
			parts = append(parts, r.title.Render(orientationTitle(o)), strings.Join(lines, "\n"))
		}
	}

	if r.cfg.ShowUnplaced && len(res.Unplaced) > 0 {
		left := make([]string, len(res.Unplaced))
		for i, w := range res.Unplaced {
			left[i] = w.String()
		}
		parts = append(parts, r.warn.Render("Left out: "+strings.Join(left, ", ")))
	}
	if res.State == layout.StateStuck {
		parts = append(parts, r.warn.Render("Stopped early: a word shares no letter with the grid"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r *Renderer) clue(n int, w *words.Word) string {
	pos := w.Position()
	line := fmt.Sprintf("%2d. %-16s (%d, %d)", n, w.String(), pos.Row, pos.Col)
	if r.cfg.ShowHints && w.Hint() != "" {
		line += "  " + r.hint.Render(w.Hint())
	}
	return line
}

func orientationTitle(o words.Orientation) string {
	if o == words.Down {
		return "Down"
	}
	return "Across"
}
