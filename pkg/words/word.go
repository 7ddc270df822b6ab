/*
Package words analyses an unordered word list for an arrowword puzzle.

It answers three questions before any grid exists: which letters of each word
can cross another word of the set, which words are the easiest to place, and
where two given words could share a letter.

# Crossable positions

A letter index is crossable when the letter occurs elsewhere in the set. A
letter with a global count of 1 is never crossable, and neither is a letter
whose every occurrence sits inside the same word:

	list, _ := words.New(words.FromStrings("chair", "card", "bet"))
	list.Items()[0].Crossings().Indices() // [0 2 4] -> c, a, r
	list.Unplaceable()                    // [bet]

Crossings are computed once, in [New]. The layout engine later removes
entries as crossing points get used up, see [Crossings.Remove].

# Ranking

[Rank] is a stable sort by descending number of crossable positions:

	pen eraser schedule phone -> schedule phone pen eraser
*/
package words

// Orientation is the axis a placed word runs along.
type Orientation int

const (
	Horizontal Orientation = iota
	Down
)

// Step returns the (row, column) unit vector of the orientation.
func (o Orientation) Step() (int, int) {
	if o == Down {
		return 1, 0
	}
	return 0, 1
}

// Orthogonal returns the other orientation.
func (o Orientation) Orthogonal() Orientation {
	if o == Down {
		return Horizontal
	}
	return Down
}

func (o Orientation) String() string {
	if o == Down {
		return "down"
	}
	return "horizontal"
}

// Position is a grid coordinate.
type Position struct {
	Row int
	Col int
}

// Offset returns the cell n letters along orientation o.
func (p Position) Offset(o Orientation, n int) Position {
	dr, dc := o.Step()
	return Position{Row: p.Row + dr*n, Col: p.Col + dc*n}
}

// Entry is one raw dictionary item: the word and an optional definition.
type Entry struct {
	Text string `toml:"word" msgpack:"w"`
	Hint string `toml:"hint" msgpack:"h,omitempty"`
}

// FromStrings wraps bare words into entries without hints.
func FromStrings(texts ...string) []Entry {
	entries := make([]Entry, len(texts))
	for i, t := range texts {
		entries[i] = Entry{Text: t}
	}
	return entries
}

// Word is a dictionary item plus the metadata the layout engine needs.
// Letters never change; crossings, orientation and position do.
type Word struct {
	text      string
	letters   []rune
	hint      string
	crossings *Crossings

	placed      bool
	orientation Orientation
	position    Position
}

// NewWord creates a word with an empty crossing set.
func NewWord(text, hint string) *Word {
	return &Word{
		text:      text,
		letters:   []rune(text),
		hint:      hint,
		crossings: NewCrossings(),
	}
}

func (w *Word) String() string {
	return w.text
}

// Len returns the number of letters.
func (w *Word) Len() int {
	return len(w.letters)
}

// At returns the letter at index i.
func (w *Word) At(i int) rune {
	return w.letters[i]
}

// Letters returns a copy of the letters.
func (w *Word) Letters() []rune {
	cp := make([]rune, len(w.letters))
	copy(cp, w.letters)
	return cp
}

// Hint is carried through untouched, nothing in this module reads it.
func (w *Word) Hint() string {
	return w.hint
}

func (w *Word) Crossings() *Crossings {
	return w.crossings
}

// Placed reports whether the word has been committed to a grid.
func (w *Word) Placed() bool {
	return w.placed
}

// Orientation is only meaningful once Placed is true.
func (w *Word) Orientation() Orientation {
	return w.orientation
}

// Position of the first letter. Only meaningful once Placed is true.
func (w *Word) Position() Position {
	return w.position
}

// Cell returns the grid cell of letter i for the current placement.
func (w *Word) Cell(i int) Position {
	return w.position.Offset(w.orientation, i)
}

// Place records the final orientation and anchor of the word.
func (w *Word) Place(o Orientation, p Position) {
	w.placed = true
	w.orientation = o
	w.position = p
}

// Shift moves a placed word, used when a grid grows on a leading edge.
func (w *Word) Shift(rows, cols int) {
	w.position.Row += rows
	w.position.Col += cols
}

// Unplace clears the placement.
func (w *Word) Unplace() {
	w.placed = false
	w.orientation = Horizontal
	w.position = Position{}
}

// Equal compares the words by their letters only.
func (w *Word) Equal(other *Word) bool {
	return other != nil && w.text == other.text
}
