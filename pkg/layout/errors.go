package layout

import (
	"errors"
	"fmt"

	"github.com/bastiangx/arrowword/pkg/words"
)

var (
	// ErrNoIntersection indicates a word shares no usable letter with any
	// placed word. It ends the run.
	ErrNoIntersection = errors.New("layout: no intersection with any placed word")
	// ErrCollision indicates the chosen crossing would overwrite a different
	// letter. The word is left out and the run goes on.
	ErrCollision = errors.New("layout: placement collides with a written letter")
	// ErrStuck is returned by Place once an earlier word hit ErrNoIntersection.
	ErrStuck = errors.New("layout: run already stuck")
	// ErrAlreadyPlaced indicates the word is on the grid already.
	ErrAlreadyPlaced = errors.New("layout: word already placed")
	// ErrNonRectangular indicates an initial matrix with rows of differing lengths.
	ErrNonRectangular = errors.New("layout: all rows must have the same length")
	// ErrOutOfBounds indicates a write outside the grid.
	ErrOutOfBounds = errors.New("layout: word runs outside the grid")
)

// PlacementError names the word a placement failed for and, when one was
// chosen, the placed word it was matched against.
type PlacementError struct {
	Word    *words.Word
	Matched *words.Word
	Err     error
}

func (e *PlacementError) Error() string {
	if e.Matched != nil {
		return fmt.Sprintf("placing %q across %q: %v", e.Word, e.Matched, e.Err)
	}
	return fmt.Sprintf("placing %q: %v", e.Word, e.Err)
}

func (e *PlacementError) Unwrap() error {
	return e.Err
}
