package calories_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2022/calories"
)

const sample = `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000`

func TestParseGroups(t *testing.T) {
	groups, err := calories.ParseGroups(strings.Split(sample, "\n"))
	require.NoError(t, err)
	require.Len(t, groups, 5)
	assert.Equal(t, calories.Group{1000, 2000, 3000}, groups[0])
	// The final group has no terminating blank line.
	assert.Equal(t, calories.Group{10000}, groups[4])
}

func TestParseGroups_Errors(t *testing.T) {
	_, err := calories.ParseGroups([]string{"100", "abc"})
	require.ErrorIs(t, err, calories.ErrBadCalories)
	assert.Contains(t, err.Error(), "line 2")

	_, err = calories.ParseGroups([]string{"-5"})
	require.ErrorIs(t, err, calories.ErrBadCalories)

	_, err = calories.ParseGroups([]string{"", "  ", ""})
	require.ErrorIs(t, err, calories.ErrNoGroups)
}

func TestMaxAndTopN(t *testing.T) {
	groups, err := calories.ParseGroups(strings.Split(sample, "\n"))
	require.NoError(t, err)

	assert.Equal(t, 24000, calories.Max(groups))

	top, err := calories.TopN(groups, calories.DefaultTopN)
	require.NoError(t, err)
	assert.Equal(t, 45000, top)

	_, err = calories.TopN(groups, 6)
	require.ErrorIs(t, err, calories.ErrNotEnoughGroups)
}

// TestMax_LastGroupWins guards the case where the heaviest group is the
// unterminated final one.
func TestMax_LastGroupWins(t *testing.T) {
	groups, err := calories.ParseGroups([]string{"1", "", "2", "3"})
	require.NoError(t, err)
	assert.Equal(t, 5, calories.Max(groups))
}
