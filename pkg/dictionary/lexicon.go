package dictionary

import (
	"sync"

	"github.com/bastiangx/arrowword/pkg/words"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Lexicon is a deduplicating word list. Words are keyed in a patricia trie by
// their case-folded text, so hint lookups and prefix listings do not scan the
// whole list, while Entries keeps the order words were added in.
type Lexicon struct {
	trie            *patricia.Trie
	entries         []words.Entry
	policy          words.CasePolicy
	allowDuplicates bool
	mu              sync.RWMutex
}

// NewLexicon creates an empty lexicon folding keys with policy.
func NewLexicon(policy words.CasePolicy, allowDuplicates bool) *Lexicon {
	return &Lexicon{
		trie:            patricia.NewTrie(),
		policy:          policy,
		allowDuplicates: allowDuplicates,
	}
}

// Add appends e with its text folded by the lexicon's case policy. It
// returns false for an empty word, and for a repeat unless duplicates are
// allowed; a repeat never replaces the first hint.
func (l *Lexicon) Add(e words.Entry) bool {
	e.Text = l.policy.Normalize(e.Text)
	if e.Text == "" {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.trie.Insert(patricia.Prefix(e.Text), len(l.entries)) && !l.allowDuplicates {
		return false
	}
	l.entries = append(l.entries, e)
	return true
}

func (l *Lexicon) Contains(word string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.trie.Get(patricia.Prefix(l.policy.Normalize(word))) != nil
}

// Hint returns the hint of the first entry for word.
func (l *Lexicon) Hint(word string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	item := l.trie.Get(patricia.Prefix(l.policy.Normalize(word)))
	if item == nil {
		return "", false
	}
	return l.entries[item.(int)].Hint, true
}

// WithPrefix lists the distinct entries starting with prefix. The order
// follows the trie walk, not insertion.
func (l *Lexicon) WithPrefix(prefix string) []words.Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []words.Entry
	key := patricia.Prefix(l.policy.Normalize(prefix))
	_ = l.trie.VisitSubtree(key, func(_ patricia.Prefix, item patricia.Item) error {
		out = append(out, l.entries[item.(int)])
		return nil
	})
	return out
}

// Entries returns a copy of all entries in insertion order.
func (l *Lexicon) Entries() []words.Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	cp := make([]words.Entry, len(l.entries))
	copy(cp, l.entries)
	return cp
}

func (l *Lexicon) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
