package sections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2022/sections"
)

var sample = []string{
	"2-4,6-8",
	"2-3,4-5",
	"5-7,7-9",
	"2-8,3-7",
	"6-6,4-6",
	"2-6,4-8",
}

func TestCounts(t *testing.T) {
	got, err := sections.CountContained(sample)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = sections.CountOverlapping(sample)
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestRange(t *testing.T) {
	a := sections.Range{Lo: 2, Hi: 8}
	b := sections.Range{Lo: 3, Hi: 7}
	assert.True(t, a.Contains(b))
	assert.False(t, b.Contains(a))
	assert.True(t, a.Contains(a))
	assert.Equal(t, 7, a.Len())

	// Touching ranges share one section.
	assert.True(t, sections.Range{Lo: 5, Hi: 7}.Overlaps(sections.Range{Lo: 7, Hi: 9}))
	assert.False(t, sections.Range{Lo: 2, Hi: 3}.Overlaps(sections.Range{Lo: 4, Hi: 5}))
}

func TestParsePair_Errors(t *testing.T) {
	cases := []struct {
		line string
		err  error
	}{
		{"2-4", sections.ErrBadPair},
		{"2-4;6-8", sections.ErrBadPair},
		{"2_4,6-8", sections.ErrBadPair},
		{"a-4,6-8", sections.ErrBadPair},
		{"2-4,6-x", sections.ErrBadPair},
		{"4-2,6-8", sections.ErrInvertedRange},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			_, _, err := sections.ParsePair(tc.line)
			require.ErrorIs(t, err, tc.err)
		})
	}
}
