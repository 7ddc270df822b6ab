package words

import "sort"

// FrequencyTable maps every letter to the number of times it occurs across a
// whole word set. Repeated letters inside one word each count.
type FrequencyTable map[rune]int

// CountLetters builds the frequency table for the given words.
func CountLetters(items []*Word) FrequencyTable {
	table := make(FrequencyTable)
	for _, w := range items {
		for _, r := range w.letters {
			table[r]++
		}
	}
	return table
}

// Count returns the global number of occurrences of r, 0 if unknown.
func (t FrequencyTable) Count(r rune) int {
	return t[r]
}

// Letters returns the distinct letters in ascending order.
// Handy for debug output, the table itself has no ordering.
func (t FrequencyTable) Letters() []rune {
	letters := make([]rune, 0, len(t))
	for r := range t {
		letters = append(letters, r)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}

// countIn counts occurrences of r within a single word.
func countIn(letters []rune, r rune) int {
	n := 0
	for _, l := range letters {
		if l == r {
			n++
		}
	}
	return n
}
