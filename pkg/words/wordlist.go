package words

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrEmptyInput indicates there is no word to seed a grid with.
	ErrEmptyInput = errors.New("words: input word set is empty")
	// ErrDegenerateWord indicates a zero-length word.
	ErrDegenerateWord = errors.New("words: zero-length word")
)

// Option configures New.
type Option func(*options)

type options struct {
	casePolicy CasePolicy
}

// WithCasePolicy sets the folding applied to every entry. Default CaseLower.
func WithCasePolicy(p CasePolicy) Option {
	return func(o *options) { o.casePolicy = p }
}

// Wordlist is the analysed word set: every Word with its crossings, the
// global letter table and the placement order.
type Wordlist struct {
	items    []*Word
	alphabet FrequencyTable
	ranked   []*Word
}

// New validates the entries, computes crossable positions for every word and
// ranks them. The result is complete or an error is returned, never a partial
// analysis.
func New(entries []Entry, opts ...Option) (*Wordlist, error) {
	o := options{casePolicy: CaseLower}
	for _, opt := range opts {
		opt(&o)
	}

	if len(entries) == 0 {
		return nil, ErrEmptyInput
	}

	items := make([]*Word, 0, len(entries))
	for i, e := range entries {
		text := o.casePolicy.Normalize(e.Text)
		if text == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrDegenerateWord, i)
		}
		items = append(items, NewWord(text, e.Hint))
	}

	alphabet := CountLetters(items)
	analyse(items, alphabet)

	return &Wordlist{
		items:    items,
		alphabet: alphabet,
		ranked:   Rank(items),
	}, nil
}

// analyse fills in the crossings of every word. First pass drops globally
// unique letters, second drops letters this word holds every copy of.
func analyse(items []*Word, alphabet FrequencyTable) {
	for _, w := range items {
		for i, r := range w.letters {
			if alphabet.Count(r) == 1 {
				continue
			}
			w.crossings.Add(i, r)
		}
	}
	for _, w := range items {
		for _, i := range w.crossings.Indices() {
			r, _ := w.crossings.Letter(i)
			if alphabet.Count(r) == countIn(w.letters, r) {
				w.crossings.Remove(i)
			}
		}
	}
}

// Rank orders words by descending number of crossable positions. Ties keep
// their input order. The input slice is left untouched.
func Rank(items []*Word) []*Word {
	ranked := make([]*Word, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].crossings.Len() > ranked[j].crossings.Len()
	})
	return ranked
}

// Items returns the words in input order.
func (l *Wordlist) Items() []*Word {
	return l.items
}

// Ranked returns the placement order, most connectable first.
func (l *Wordlist) Ranked() []*Word {
	cp := make([]*Word, len(l.ranked))
	copy(cp, l.ranked)
	return cp
}

// Unplaceable returns the words without any crossable position, in input
// order. Nothing can ever be attached to them after the seed.
func (l *Wordlist) Unplaceable() []*Word {
	var out []*Word
	for _, w := range l.items {
		if w.crossings.Len() == 0 {
			out = append(out, w)
		}
	}
	return out
}

func (l *Wordlist) Alphabet() FrequencyTable {
	return l.alphabet
}

func (l *Wordlist) Len() int {
	return len(l.items)
}
