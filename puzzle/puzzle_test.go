package puzzle_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/advent2022/fstree"
	"github.com/katalvlaran/advent2022/internal/textio"
	"github.com/katalvlaran/advent2022/puzzle"
	"github.com/katalvlaran/advent2022/signal"
)

func sample(day int) string {
	return filepath.Join("testdata", fmt.Sprintf("day%d.txt", day))
}

func TestSolveFile_Samples(t *testing.T) {
	want := map[int]puzzle.Answers{
		1: {Part1: "24000", Part2: "45000"},
		2: {Part1: "15", Part2: "12"},
		3: {Part1: "157", Part2: "70"},
		4: {Part1: "2", Part2: "4"},
		5: {Part1: "CMZ", Part2: "MCD"},
		6: {Part1: "7", Part2: "19"},
		7: {Part1: "95437", Part2: "24933642"},
		8: {Part1: "21", Part2: "8"},
		9: {Part1: "13", Part2: "1"},
	}
	r := puzzle.NewRunner()
	for _, d := range r.Days() {
		d := d
		t.Run(fmt.Sprintf("Day%d", d.Number), func(t *testing.T) {
			res, err := r.SolveFile(d.Number, sample(d.Number))
			require.NoError(t, err)
			if diff := cmp.Diff(want[d.Number], res.Answers); diff != "" {
				t.Errorf("answers mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, d.Number, res.Day)
			assert.Equal(t, d.Title, res.Title)
			assert.Positive(t, res.InputBytes)
		})
	}
}

func TestSolve_Idempotent(t *testing.T) {
	r := puzzle.NewRunner()
	for _, d := range r.Days() {
		text, err := textio.ReadFile(sample(d.Number))
		require.NoError(t, err)
		first, err := r.Solve(d.Number, text)
		require.NoError(t, err)
		second, err := r.Solve(d.Number, text)
		require.NoError(t, err)
		assert.Equal(t, first.Answers, second.Answers, "day %d", d.Number)
	}
}

func TestDays_Ordered(t *testing.T) {
	days := puzzle.NewRunner().Days()
	require.Len(t, days, 9)
	for i, d := range days {
		assert.Equal(t, i+1, d.Number)
		assert.NotEmpty(t, d.Title)
	}
}

func TestUnknownDay(t *testing.T) {
	r := puzzle.NewRunner()
	_, err := r.Solve(26, "x")
	require.ErrorIs(t, err, puzzle.ErrUnknownDay)
	_, err = r.SolveFile(0, sample(1))
	require.ErrorIs(t, err, puzzle.ErrUnknownDay)
}

func TestSolve_Errors(t *testing.T) {
	r := puzzle.NewRunner()

	_, err := r.Solve(6, "abcabc\n")
	require.ErrorIs(t, err, signal.ErrNoMarker)

	_, err = r.Solve(7, "$ cd /\n$ cd ..\n")
	require.ErrorIs(t, err, fstree.ErrAboveRoot)

	_, err = r.SolveFile(1, filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestWithParams(t *testing.T) {
	p := puzzle.DefaultParams()
	p.TopElves = 1
	p.ShortKnots = 1
	p.PacketWindow = 1
	r := puzzle.NewRunner(puzzle.WithParams(p))

	res, err := r.SolveFile(1, sample(1))
	require.NoError(t, err)
	assert.Equal(t, "24000", res.Answers.Part2)

	res, err = r.SolveFile(6, sample(6))
	require.NoError(t, err)
	assert.Equal(t, "1", res.Answers.Part1)

	// A one-knot rope visits every cell the head passes over.
	res, err = r.SolveFile(9, sample(9))
	require.NoError(t, err)
	assert.NotEqual(t, "13", res.Answers.Part1)
}

func TestWithLogger_DebugTraces(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := puzzle.NewRunner(puzzle.WithLogger(zap.New(core)))

	_, err := r.SolveFile(7, sample(7))
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("input loaded").Len())
	assert.Equal(t, 1, logs.FilterMessage("day solved").Len())
	// Four directories: /, /a, /a/e, /d.
	assert.Equal(t, 4, logs.FilterMessage("directory size").Len())
	// Only / and /d are large enough to free 8381165 bytes.
	cands := logs.FilterMessage("deletion candidate").AllUntimed()
	require.Len(t, cands, 2)
	paths := []string{cands[0].ContextMap()["path"].(string), cands[1].ContextMap()["path"].(string)}
	assert.ElementsMatch(t, []string{"/", "/d"}, paths)
}
