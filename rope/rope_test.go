package rope_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2022/rope"
)

func moves(s string) []string {
	return strings.Split(strings.ReplaceAll(s, ",", "\n"), "\n")
}

func TestCountTailPositions(t *testing.T) {
	cases := []struct {
		name  string
		moves string
		knots int
		want  int
	}{
		{"ShortRightUp", "R 4,U 4", rope.ShortRope, 7},
		{"ShortSample", "R 4,U 4,L 3,D 1,R 4,D 1,L 5,R 2", rope.ShortRope, 13},
		{"LongSmallSample", "R 4,U 4,L 3,D 1,R 4,D 1,L 5,R 2", rope.LongRope, 1},
		{"LongSample", "R 5,U 8,L 8,D 3,R 17,D 10,L 25,U 20", rope.LongRope, 36},
		{"SingleKnot", "R 3", 1, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := rope.CountTailPositions(moves(tc.moves), tc.knots)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCountTailPositions_Idempotent(t *testing.T) {
	in := moves("R 5,U 8,L 8,D 3,R 17,D 10,L 25,U 20")
	first, err := rope.CountTailPositions(in, rope.LongRope)
	require.NoError(t, err)
	second, err := rope.CountTailPositions(in, rope.LongRope)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRope_Step(t *testing.T) {
	r, err := rope.New(3)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = r.Step(rope.Right)
		require.NoError(t, err)
	}
	assert.Equal(t, []rope.Pos{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}, r.Knots())

	// A diagonal gap pulls the follower diagonally.
	_, err = r.Step(rope.Up)
	require.NoError(t, err)
	_, err = r.Step(rope.Up)
	require.NoError(t, err)
	assert.Equal(t, rope.Pos{X: 2, Y: 2}, r.Head())
	assert.Equal(t, []rope.Pos{{X: 2, Y: 2}, {X: 2, Y: 1}, {X: 1, Y: 1}}, r.Knots())
	assert.Equal(t, rope.Pos{X: 1, Y: 1}, r.Tail())

	_, err = r.Step(rope.Direction('X'))
	require.ErrorIs(t, err, rope.ErrBadMove)
}

func TestTracker_RecordsEveryUnitStep(t *testing.T) {
	tr, err := rope.NewTracker(rope.ShortRope)
	require.NoError(t, err)
	require.NoError(t, tr.Apply(rope.Move{Dir: rope.Right, Count: 4}))
	// Origin plus (1,0), (2,0), (3,0).
	assert.Equal(t, 4, tr.Visited())
	assert.Equal(t, rope.Pos{X: 3, Y: 0}, tr.Rope().Tail())
}

func TestPoint(t *testing.T) {
	p := rope.Point[int]{X: 0, Y: 0}
	assert.Equal(t, rope.Point[int]{X: 1, Y: -1}, p.Toward(rope.Point[int]{X: 5, Y: -3}))
	assert.Equal(t, rope.Point[int]{X: 0, Y: 0}, p.Toward(p))
	assert.Equal(t, 5, p.Chebyshev(rope.Point[int]{X: 5, Y: -3}))

	q := rope.Point[int64]{X: -2, Y: 7}
	assert.Equal(t, int64(7), q.Chebyshev(rope.Point[int64]{}))
}

func TestParseMove(t *testing.T) {
	m, err := rope.ParseMove("L 25")
	require.NoError(t, err)
	assert.Equal(t, rope.Move{Dir: rope.Left, Count: 25}, m)

	for _, bad := range []string{"", "R", "R4", "X 4", "R four", "R -1", "RR 4"} {
		_, err := rope.ParseMove(bad)
		require.ErrorIs(t, err, rope.ErrBadMove, "line %q", bad)
	}
}

func TestErrors(t *testing.T) {
	_, err := rope.New(0)
	require.ErrorIs(t, err, rope.ErrTooFewKnots)

	_, err = rope.CountTailPositions([]string{"R 1", "Q 1"}, rope.ShortRope)
	require.ErrorIs(t, err, rope.ErrBadMove)
	assert.Contains(t, err.Error(), "line 2")
}
