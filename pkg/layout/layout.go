/*
Package layout grows an arrowword grid one word at a time.

Words arrive in ranked order. The first one is laid horizontally at the
origin. Every later word is matched against the placed words, newest first,
takes the orientation orthogonal to its match and crosses it at the first
shared letter. The grid grows on whichever side the new word runs off, and a
word that would overwrite a different letter is left out.

	list, _ := words.New(words.FromStrings("chair", "cardboard", "speaker", "bottle"))
	l, _ := layout.New()
	res, err := l.Build(list)

The strategy is greedy and never backtracks: one intersection is tried per
word. A word that shares nothing with any placed word stops the run with
ErrNoIntersection; Build then still returns the grid as it stood.
*/
package layout

import (
	"errors"
	"fmt"
	"io"

	"github.com/bastiangx/arrowword/internal/logger"
	"github.com/bastiangx/arrowword/pkg/words"
	"github.com/charmbracelet/log"
)

// State of a run.
type State int

const (
	StateEmpty State = iota
	StateSeeded
	StateGrowing
	StateDone
	StateStuck
)

func (s State) String() string {
	switch s {
	case StateSeeded:
		return "seeded"
	case StateGrowing:
		return "growing"
	case StateDone:
		return "done"
	case StateStuck:
		return "stuck"
	}
	return "empty"
}

// Result is what a run leaves behind.
type Result struct {
	Grid     *Grid
	Placed   []*words.Word
	Unplaced []*words.Word
	State    State
}

// Layout owns the grid and the placed words of one run. Not safe for
// concurrent use.
type Layout struct {
	grid   *Grid
	placed []*words.Word
	state  State

	scan            func(a, b *words.Word) []words.Intersection
	skipUnplaceable bool
	log             *log.Logger
}

// New creates a layout with an empty grid, or a copy of WithInitialGrid.
func New(opts ...Option) (*Layout, error) {
	s := settings{empty: DefaultEmpty}
	for _, opt := range opts {
		opt(&s)
	}

	grid, err := NewGridFrom(s.initial, s.empty)
	if err != nil {
		return nil, err
	}

	l := &Layout{
		grid:            grid,
		scan:            words.Intersections,
		skipUnplaceable: s.skipUnplaceable,
		log:             s.logger,
	}
	if s.letterScan {
		l.scan = words.LetterIntersections
	}
	if l.log == nil {
		l.log = logger.New("layout")
	}
	return l, nil
}

func (l *Layout) Grid() *Grid {
	return l.grid
}

// Placed returns the placed words in placement order.
func (l *Layout) Placed() []*words.Word {
	cp := make([]*words.Word, len(l.placed))
	copy(cp, l.placed)
	return cp
}

func (l *Layout) State() State {
	return l.state
}

// Build places the whole ranked queue of list. Collisions leave a word out
// and carry on; a word without any intersection aborts the run, and the
// returned Result then holds the grid at that point along with the error.
func (l *Layout) Build(list *words.Wordlist) (*Result, error) {
	if list == nil || list.Len() == 0 {
		return nil, words.ErrEmptyInput
	}

	var unplaced []*words.Word
	queue := list.Ranked()
	if l.skipUnplaceable {
		queue, unplaced = l.dropUnplaceable(queue)
	}

	for i, w := range queue {
		err := l.Place(w)
		if err == nil {
			continue
		}
		if errors.Is(err, ErrCollision) {
			unplaced = append(unplaced, w)
			continue
		}
		l.log.Error("run aborted", "word", w, "err", err)
		unplaced = append(unplaced, queue[i:]...)
		return l.result(unplaced), err
	}

	l.state = StateDone
	l.log.Debug("run done", "placed", len(l.placed), "unplaced", len(unplaced),
		"rows", l.grid.Rows(), "cols", l.grid.Cols())
	return l.result(unplaced), nil
}

// dropUnplaceable removes words without crossings from the queue. The head
// of an empty layout is kept, a seed needs no crossing.
func (l *Layout) dropUnplaceable(queue []*words.Word) ([]*words.Word, []*words.Word) {
	var kept, dropped []*words.Word
	for i, w := range queue {
		if w.Crossings().Len() == 0 && !(i == 0 && len(l.placed) == 0) {
			l.log.Warn("skipping unplaceable word", "word", w)
			dropped = append(dropped, w)
			continue
		}
		kept = append(kept, w)
	}
	return kept, dropped
}

func (l *Layout) result(unplaced []*words.Word) *Result {
	return &Result{
		Grid:     l.grid.Clone(),
		Placed:   l.Placed(),
		Unplaced: unplaced,
		State:    l.state,
	}
}

// Place puts a single word on the grid.
//
// Errors are *PlacementError wrapping ErrCollision (grid untouched, the
// layout can go on) or ErrNoIntersection (the layout is stuck from then on).
func (l *Layout) Place(w *words.Word) error {
	switch {
	case l.state == StateStuck:
		return &PlacementError{Word: w, Err: ErrStuck}
	case w.Placed():
		return &PlacementError{Word: w, Err: ErrAlreadyPlaced}
	}

	if len(l.placed) == 0 {
		return l.seed(w)
	}

	matched, pairs := l.findMatch(w)
	if matched == nil {
		l.state = StateStuck
		return &PlacementError{Word: w, Err: ErrNoIntersection}
	}

	x := pairs[0]
	o := matched.Orientation().Orthogonal()
	start := matched.Cell(x.A).Offset(o, -x.B)
	l.log.Debug("crossing", "word", w, "matched", matched, "at", fmt.Sprintf("%d/%d", x.A, x.B),
		"orientation", o, "row", start.Row, "col", start.Col)

	if !l.Check(w, o, start) {
		l.log.Warn("collision, leaving word out", "word", w, "matched", matched)
		return &PlacementError{Word: w, Matched: matched, Err: ErrCollision}
	}

	l.commit(w, o, start)
	consume(matched, x.A)
	consume(w, x.B)
	l.state = StateGrowing
	return nil
}

func (l *Layout) seed(w *words.Word) error {
	if !l.Check(w, words.Horizontal, words.Position{}) {
		return &PlacementError{Word: w, Err: ErrCollision}
	}
	l.commit(w, words.Horizontal, words.Position{})
	l.state = StateSeeded
	l.log.Debug("seeded", "word", w)
	return nil
}

// findMatch walks the placed words from the newest back and returns the
// first one sharing a usable letter with w.
func (l *Layout) findMatch(w *words.Word) (*words.Word, []words.Intersection) {
	for i := len(l.placed) - 1; i >= 0; i-- {
		prev := l.placed[i]
		if pairs := l.scan(prev, w); len(pairs) > 0 {
			return prev, pairs
		}
		l.log.Debug("no intersection, trying older word", "word", w, "placed", prev)
	}
	return nil, nil
}

// Check reports whether w fits with its first letter at start. Cells outside
// the grid pass, growth makes them empty.
func (l *Layout) Check(w *words.Word, o words.Orientation, start words.Position) bool {
	for i := 0; i < w.Len(); i++ {
		cell, ok := l.grid.At(start.Offset(o, i))
		if !ok {
			continue
		}
		if cell != l.grid.Empty() && cell != w.At(i) {
			return false
		}
	}
	return true
}

// commit grows the grid around the span of w, records the placement and
// writes the letters.
func (l *Layout) commit(w *words.Word, o words.Orientation, start words.Position) {
	end := start.Offset(o, w.Len()-1)
	for _, axis := range []words.Orientation{words.Horizontal, words.Down} {
		lo, hi := along(start, axis), along(end, axis)
		if lo < 0 {
			l.MakeSpace(-lo, axis, true)
			start = start.Offset(axis, -lo)
			hi -= lo
		}
		if size := l.grid.Size(axis); hi >= size {
			l.MakeSpace(hi-size+1, axis, false)
		}
	}

	w.Place(o, start)
	// the span fits now
	_ = l.Write(w)
	l.placed = append(l.placed, w)
}

// MakeSpace grows the grid by n lines along o. Growth on the leading edge
// shifts every placed word so it still points at its letters.
func (l *Layout) MakeSpace(n int, o words.Orientation, leading bool) {
	if n <= 0 {
		return
	}
	l.grid.Grow(o, n, leading)
	if leading {
		dr, dc := o.Step()
		for _, w := range l.placed {
			w.Shift(dr*n, dc*n)
		}
	}
	l.log.Debug("grew grid", "by", n, "along", o, "leading", leading,
		"rows", l.grid.Rows(), "cols", l.grid.Cols())
}

// Write copies the letters of a placed word into the grid. Nothing is written
// if any letter would land outside.
func (l *Layout) Write(w *words.Word) error {
	for i := 0; i < w.Len(); i++ {
		if !l.grid.InBounds(w.Cell(i)) {
			return &PlacementError{Word: w, Err: ErrOutOfBounds}
		}
	}
	for i := 0; i < w.Len(); i++ {
		l.grid.Set(w.Cell(i), w.At(i))
	}
	return nil
}

// Output prints the grid row by row.
func (l *Layout) Output(out io.Writer) error {
	for _, line := range l.grid.Lines() {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

// consume removes a used crossing point and both its neighbours, so no later
// word crosses right next to it.
func consume(w *words.Word, i int) {
	w.Crossings().Remove(i - 1)
	w.Crossings().Remove(i)
	w.Crossings().Remove(i + 1)
}

func along(p words.Position, o words.Orientation) int {
	if o == words.Down {
		return p.Row
	}
	return p.Col
}
