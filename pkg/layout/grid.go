package layout

import (
	"strings"

	"github.com/bastiangx/arrowword/pkg/words"
)

// DefaultEmpty marks a cell no word has written to.
const DefaultEmpty = '_'

// Grid is a rectangular letter matrix that only ever grows.
// The column count is tracked separately so a grid with no rows still has a
// width.
type Grid struct {
	cells [][]rune
	cols  int
	empty rune
}

// NewGrid creates a rows x cols grid of empty cells.
func NewGrid(rows, cols int, empty rune) *Grid {
	g := &Grid{cols: cols, empty: empty}
	for i := 0; i < rows; i++ {
		g.cells = append(g.cells, g.blankRow())
	}
	return g
}

// NewGridFrom copies a caller supplied matrix. Every row must have the same
// length.
func NewGridFrom(m [][]rune, empty rune) (*Grid, error) {
	g := &Grid{empty: empty}
	if len(m) == 0 {
		return g, nil
	}
	g.cols = len(m[0])
	for _, row := range m {
		if len(row) != g.cols {
			return nil, ErrNonRectangular
		}
		cp := make([]rune, len(row))
		copy(cp, row)
		g.cells = append(g.cells, cp)
	}
	return g, nil
}

func (g *Grid) Rows() int {
	return len(g.cells)
}

func (g *Grid) Cols() int {
	return g.cols
}

// Empty returns the sentinel used for unwritten cells.
func (g *Grid) Empty() rune {
	return g.empty
}

// Size returns the extent along an orientation: columns for Horizontal,
// rows for Down.
func (g *Grid) Size(o words.Orientation) int {
	if o == words.Down {
		return g.Rows()
	}
	return g.Cols()
}

func (g *Grid) InBounds(p words.Position) bool {
	return p.Row >= 0 && p.Row < len(g.cells) && p.Col >= 0 && p.Col < g.cols
}

// At returns the cell at p, false when p lies outside the grid.
func (g *Grid) At(p words.Position) (rune, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[p.Row][p.Col], true
}

// Set writes r at p. Returns false if out of bounds.
func (g *Grid) Set(p words.Position, r rune) bool {
	if !g.InBounds(p) {
		return false
	}
	g.cells[p.Row][p.Col] = r
	return true
}

// Grow inserts n empty lines along o: columns for Horizontal, rows for Down.
// Leading growth inserts before the existing cells, so every existing cell
// moves n steps along o.
func (g *Grid) Grow(o words.Orientation, n int, leading bool) {
	if n <= 0 {
		return
	}
	if o == words.Horizontal {
		pad := make([]rune, n)
		for i := range pad {
			pad[i] = g.empty
		}
		for i, row := range g.cells {
			grown := make([]rune, 0, len(row)+n)
			if leading {
				grown = append(append(grown, pad...), row...)
			} else {
				grown = append(append(grown, row...), pad...)
			}
			g.cells[i] = grown
		}
		g.cols += n
		return
	}

	rows := make([][]rune, n)
	for i := range rows {
		rows[i] = g.blankRow()
	}
	if leading {
		g.cells = append(rows, g.cells...)
	} else {
		g.cells = append(g.cells, rows...)
	}
}

// Matrix returns a copy of the cells.
func (g *Grid) Matrix() [][]rune {
	cp := make([][]rune, len(g.cells))
	for i, row := range g.cells {
		cp[i] = make([]rune, len(row))
		copy(cp[i], row)
	}
	return cp
}

// Lines returns one string per row.
func (g *Grid) Lines() []string {
	lines := make([]string, len(g.cells))
	for i, row := range g.cells {
		lines[i] = string(row)
	}
	return lines
}

func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	return &Grid{cells: g.Matrix(), cols: g.cols, empty: g.empty}
}

func (g *Grid) blankRow() []rune {
	row := make([]rune, g.cols)
	for i := range row {
		row[i] = g.empty
	}
	return row
}
