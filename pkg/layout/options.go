package layout

import (
	"github.com/charmbracelet/log"
)

// Option configures a Layout.
type Option func(*settings)

type settings struct {
	empty           rune
	initial         [][]rune
	letterScan      bool
	skipUnplaceable bool
	logger          *log.Logger
}

// WithEmpty sets the sentinel of unwritten cells. Default DefaultEmpty.
func WithEmpty(r rune) Option {
	return func(s *settings) { s.empty = r }
}

// WithInitialGrid starts from a copy of m instead of an empty grid.
func WithInitialGrid(m [][]rune) Option {
	return func(s *settings) { s.initial = m }
}

// WithLetterScan matches every letter of the placed word against the new
// word's crossings, including letters already used up by earlier crossings.
func WithLetterScan() Option {
	return func(s *settings) { s.letterScan = true }
}

// WithSkipUnplaceable makes Build drop words without crossable positions
// from the queue and report them unplaced, instead of getting stuck on them.
func WithSkipUnplaceable() Option {
	return func(s *settings) { s.skipUnplaceable = true }
}

func WithLogger(l *log.Logger) Option {
	return func(s *settings) { s.logger = l }
}
