package words

import "sort"

// Crossings is the set of letter indexes of a word that may still serve as an
// intersection point, each with its letter.
type Crossings struct {
	letters map[int]rune
}

// NewCrossings returns an empty set.
func NewCrossings() *Crossings {
	return &Crossings{letters: make(map[int]rune)}
}

// Add records index i holding letter r.
func (c *Crossings) Add(i int, r rune) {
	c.letters[i] = r
}

// Remove deletes index i and reports whether it was present.
func (c *Crossings) Remove(i int) bool {
	if _, ok := c.letters[i]; !ok {
		return false
	}
	delete(c.letters, i)
	return true
}

// Has reports whether index i is crossable.
func (c *Crossings) Has(i int) bool {
	_, ok := c.letters[i]
	return ok
}

// Letter returns the letter at a crossable index.
func (c *Crossings) Letter(i int) (rune, bool) {
	r, ok := c.letters[i]
	return r, ok
}

func (c *Crossings) Len() int {
	return len(c.letters)
}

// Indices returns the crossable indexes in ascending order, which is the
// order every scan over the set uses.
func (c *Crossings) Indices() []int {
	idx := make([]int, 0, len(c.letters))
	for i := range c.letters {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

// Map returns a copy of index -> letter.
func (c *Crossings) Map() map[int]rune {
	cp := make(map[int]rune, len(c.letters))
	for i, r := range c.letters {
		cp[i] = r
	}
	return cp
}
