package layout

import (
	"testing"

	"github.com/bastiangx/arrowword/pkg/words"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matrix(lines ...string) [][]rune {
	m := make([][]rune, len(lines))
	for i, l := range lines {
		m[i] = []rune(l)
	}
	return m
}

func TestGridGrow(t *testing.T) {
	testCases := []struct {
		name     string
		spaces   int
		o        words.Orientation
		leading  bool
		expected []string
	}{
		{"trailing column", 1, words.Horizontal, false, []string{"____", "_x__", "____"}},
		{"leading columns", 2, words.Horizontal, true, []string{"_____", "___x_", "_____"}},
		{"two trailing rows", 2, words.Down, false, []string{"___", "_x_", "___", "___", "___"}},
		{"three trailing rows", 3, words.Down, false, []string{"___", "_x_", "___", "___", "___", "___"}},
		{"leading row", 1, words.Down, true, []string{"___", "___", "_x_", "___"}},
		{"nothing", 0, words.Down, true, []string{"___", "_x_", "___"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGridFrom(matrix("___", "_x_", "___"), DefaultEmpty)
			require.NoError(t, err)
			g.Grow(tc.o, tc.spaces, tc.leading)
			if diff := cmp.Diff(tc.expected, g.Lines()); diff != "" {
				t.Errorf("Grow(%d, %s, leading=%v) mismatch (-want +got):\n%s", tc.spaces, tc.o, tc.leading, diff)
			}
			assert.Equal(t, len(tc.expected), g.Rows())
			assert.Equal(t, len(tc.expected[0]), g.Cols())
		})
	}
}

func TestGridFromErrors(t *testing.T) {
	_, err := NewGridFrom(matrix("___", "__"), DefaultEmpty)
	assert.ErrorIs(t, err, ErrNonRectangular)

	g, err := NewGridFrom(nil, DefaultEmpty)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Rows())
	assert.Equal(t, 0, g.Cols())
}

func TestGridCopiesInput(t *testing.T) {
	m := matrix("ab", "cd")
	g, err := NewGridFrom(m, DefaultEmpty)
	require.NoError(t, err)
	m[0][0] = 'z'
	r, ok := g.At(words.Position{})
	require.True(t, ok)
	assert.Equal(t, 'a', r)

	out := g.Matrix()
	out[1][1] = 'z'
	assert.Equal(t, "ab\ncd", g.String())
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(2, 3, '.')
	assert.True(t, g.InBounds(words.Position{Row: 1, Col: 2}))
	assert.False(t, g.InBounds(words.Position{Row: 2, Col: 0}))
	assert.False(t, g.InBounds(words.Position{Row: 0, Col: -1}))

	assert.True(t, g.Set(words.Position{Row: 1, Col: 1}, 'q'))
	assert.False(t, g.Set(words.Position{Row: 5, Col: 1}, 'q'))
	_, ok := g.At(words.Position{Row: -1})
	assert.False(t, ok)
	assert.Equal(t, "...\n.q.", g.String())
}

func TestGrowEmptyGridKeepsWidth(t *testing.T) {
	g := NewGrid(0, 0, DefaultEmpty)
	g.Grow(words.Horizontal, 4, false)
	assert.Equal(t, 0, g.Rows())
	assert.Equal(t, 4, g.Cols())
	g.Grow(words.Down, 1, false)
	assert.Equal(t, []string{"____"}, g.Lines())
}
