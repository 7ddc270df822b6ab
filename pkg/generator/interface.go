// Package generator turns raw word lists into finished arrowword grids: it
// filters the list into a lexicon, analyses the words and runs the layout,
// reusing recent results for word lists it has seen before.
package generator

import "github.com/bastiangx/arrowword/pkg/words"

// IGenerator defines the interface for grid generators
type IGenerator interface {
	// Generate builds a grid from in-memory entries
	Generate(entries []words.Entry) (*Puzzle, error)

	// GenerateFile builds a grid from a word list file
	GenerateFile(path string) (*Puzzle, error)

	// Stats returns counters about generated and cached grids
	Stats() map[string]int
}
