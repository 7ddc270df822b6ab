/*
Package dictionary reads word lists with optional hints and filters them into
a Lexicon ready for a layout run.

Files are read as plain text, TOML or msgpack, picked by extension:

	chair;something to sit on
	card

	[[entry]]
	word = "chair"
	hint = "something to sit on"

Words are cleaned of separators, checked against the length limits and
deduplicated. Rejected lines are logged and skipped, never fatal.
*/
package dictionary

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bastiangx/arrowword/internal/logger"
	"github.com/bastiangx/arrowword/internal/utils"
	"github.com/bastiangx/arrowword/pkg/words"
	"github.com/charmbracelet/log"
)

var (
	ErrUnknownFormat = errors.New("dictionary: unknown word list format")
	ErrNoWords       = errors.New("dictionary: no usable words")
)

// Option configures Load and Parse.
type Option func(*options)

type options struct {
	minLen, maxLen  int
	maxWords        int
	allowDuplicates bool
	casePolicy      words.CasePolicy
	logger          *log.Logger
}

// WithLimits bounds word length in letters and the number of words kept.
// Zero disables a bound.
func WithLimits(minLen, maxLen, maxWords int) Option {
	return func(o *options) {
		o.minLen, o.maxLen, o.maxWords = minLen, maxLen, maxWords
	}
}

func WithDuplicates(allow bool) Option {
	return func(o *options) { o.allowDuplicates = allow }
}

// WithCasePolicy sets the folding used to compare words. Default CaseLower.
func WithCasePolicy(p words.CasePolicy) Option {
	return func(o *options) { o.casePolicy = p }
}

func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

func newOptions(opts []Option) options {
	o := options{casePolicy: words.CaseLower}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.New("dict")
	}
	return o
}

// Load reads the word list at path, format taken from its extension.
func Load(path string, opts ...Option) (*Lexicon, error) {
	format, err := DetectFileFormat(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer f.Close()

	lex, err := Parse(f, format, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lex, nil
}

// Parse reads a word list in the given format.
func Parse(r io.Reader, format FileFormat, opts ...Option) (*Lexicon, error) {
	var (
		entries []words.Entry
		err     error
	)
	switch format {
	case FormatText:
		entries, err = readText(r)
	case FormatTOML:
		entries, err = readTOML(r)
	case FormatBinary:
		entries, err = readBinary(r)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	return FromEntries(entries, opts...)
}

// FromEntries filters already decoded entries into a Lexicon.
func FromEntries(entries []words.Entry, opts ...Option) (*Lexicon, error) {
	o := newOptions(opts)
	lex := NewLexicon(o.casePolicy, o.allowDuplicates)

	skipped := 0
	for i, e := range entries {
		if o.maxWords > 0 && lex.Len() >= o.maxWords {
			o.logger.Warnf("Word limit of %d reached, ignoring %d more entries", o.maxWords, len(entries)-i)
			break
		}
		e.Text = utils.CleanWord(e.Text)
		if !utils.IsValidWord(e.Text, o.minLen, o.maxLen) {
			o.logger.Debug("skipping invalid word", "entry", i, "word", e.Text)
			skipped++
			continue
		}
		if !lex.Add(e) {
			o.logger.Debug("skipping duplicate", "entry", i, "word", e.Text)
			skipped++
		}
	}

	if lex.Len() == 0 {
		return nil, ErrNoWords
	}
	if skipped > 0 {
		o.logger.Infof("Kept %d words, skipped %d", lex.Len(), skipped)
	}
	return lex, nil
}
