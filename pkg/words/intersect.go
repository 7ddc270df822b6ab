package words

// Intersection is a pair of letter indexes, one in each word, holding the
// same letter.
type Intersection struct {
	A int
	B int
}

// Intersections lists every pair where a crossable letter of a matches a
// crossable letter of b. Pairs are ordered by A, then by B, both ascending.
// A word whose used crossing points were removed no longer offers them here.
func Intersections(a, b *Word) []Intersection {
	return intersect(a.crossings.Indices(), a, b)
}

// LetterIntersections is Intersections driven by every letter of a, crossable
// or not. Only b's crossable positions are eligible targets.
func LetterIntersections(a, b *Word) []Intersection {
	all := make([]int, len(a.letters))
	for i := range a.letters {
		all[i] = i
	}
	return intersect(all, a, b)
}

func intersect(source []int, a, b *Word) []Intersection {
	var out []Intersection
	targets := b.crossings.Indices()
	for _, i := range source {
		letter := a.letters[i]
		for _, j := range targets {
			if r, _ := b.crossings.Letter(j); r == letter {
				out = append(out, Intersection{A: i, B: j})
			}
		}
	}
	return out
}
