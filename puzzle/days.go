package puzzle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/katalvlaran/advent2022/calories"
	"github.com/katalvlaran/advent2022/crates"
	"github.com/katalvlaran/advent2022/forest"
	"github.com/katalvlaran/advent2022/fstree"
	"github.com/katalvlaran/advent2022/internal/textio"
	"github.com/katalvlaran/advent2022/rope"
	"github.com/katalvlaran/advent2022/rps"
	"github.com/katalvlaran/advent2022/rucksack"
	"github.com/katalvlaran/advent2022/sections"
	"github.com/katalvlaran/advent2022/signal"
)

// registry lists every day in ascending order. It is never mutated.
var registry = []Day{
	{Number: 1, Title: "Calorie Counting", solve: solveCalories},
	{Number: 2, Title: "Rock Paper Scissors", solve: solveRPS},
	{Number: 3, Title: "Rucksack Reorganization", solve: solveRucksack},
	{Number: 4, Title: "Camp Cleanup", solve: solveSections},
	{Number: 5, Title: "Supply Stacks", solve: solveCrates},
	{Number: 6, Title: "Tuning Trouble", solve: solveSignal},
	{Number: 7, Title: "No Space Left On Device", solve: solveFSTree},
	{Number: 8, Title: "Treetop Tree House", solve: solveForest},
	{Number: 9, Title: "Rope Bridge", solve: solveRope},
}

func itoa(v int) string { return strconv.Itoa(v) }

func solveCalories(r *Runner, text string) (Answers, error) {
	groups, err := calories.ParseGroups(textio.Lines(text))
	if err != nil {
		return Answers{}, err
	}
	top, err := calories.TopN(groups, r.params.TopElves)
	if err != nil {
		return Answers{}, err
	}
	r.logger.Debug("calorie groups", zap.Int("groups", len(groups)))

	return Answers{Part1: itoa(calories.Max(groups)), Part2: itoa(top)}, nil
}

func solveRPS(_ *Runner, text string) (Answers, error) {
	lines := textio.Lines(text)
	p1, err := rps.Score(lines, rps.AsShapes)
	if err != nil {
		return Answers{}, err
	}
	p2, err := rps.Score(lines, rps.AsOutcomes)
	if err != nil {
		return Answers{}, err
	}

	return Answers{Part1: itoa(p1), Part2: itoa(p2)}, nil
}

func solveRucksack(_ *Runner, text string) (Answers, error) {
	lines := textio.Lines(text)
	p1, err := rucksack.SumCompartments(lines)
	if err != nil {
		return Answers{}, err
	}
	p2, err := rucksack.SumBadges(lines)
	if err != nil {
		return Answers{}, err
	}

	return Answers{Part1: itoa(p1), Part2: itoa(p2)}, nil
}

func solveSections(_ *Runner, text string) (Answers, error) {
	lines := textio.Lines(text)
	p1, err := sections.CountContained(lines)
	if err != nil {
		return Answers{}, err
	}
	p2, err := sections.CountOverlapping(lines)
	if err != nil {
		return Answers{}, err
	}

	return Answers{Part1: itoa(p1), Part2: itoa(p2)}, nil
}

func solveCrates(r *Runner, text string) (Answers, error) {
	yard, moves, err := crates.Parse(textio.Lines(text))
	if err != nil {
		return Answers{}, err
	}
	r.logger.Debug("stack drawing parsed", zap.Int("stacks", yard.Len()), zap.Int("moves", len(moves)))

	var tops [2]string
	for i, model := range []crates.Model{crates.CrateMover9000, crates.CrateMover9001} {
		y := yard.Clone()
		for k, m := range moves {
			if err := y.Apply(m, model); err != nil {
				return Answers{}, fmt.Errorf("move %d: %w", k+1, err)
			}
		}
		tops[i] = y.Tops()
		r.logger.Debug("crates rearranged", zap.Int("model", int(model)), zap.String("tops", tops[i]))
	}

	return Answers{Part1: tops[0], Part2: tops[1]}, nil
}

func solveSignal(r *Runner, text string) (Answers, error) {
	stream := strings.TrimSpace(text)
	p1, err := signal.FirstMarker(stream, r.params.PacketWindow)
	if err != nil {
		return Answers{}, err
	}
	p2, err := signal.FirstMarker(stream, r.params.MessageWindow)
	if err != nil {
		return Answers{}, err
	}

	return Answers{Part1: itoa(p1), Part2: itoa(p2)}, nil
}

func solveFSTree(r *Runner, text string) (Answers, error) {
	tree, err := fstree.Build(textio.Lines(text))
	if err != nil {
		return Answers{}, err
	}
	logSize := func(msg string) func(fstree.NodeID, int64) {
		return func(id fstree.NodeID, size int64) {
			r.logger.Debug(msg,
				zap.String("path", tree.Path(id)),
				zap.Int64("bytes", size),
				zap.String("size", humanize.Bytes(uint64(size))))
		}
	}

	p1 := tree.SumDirsBelow(r.params.SmallDirThreshold, fstree.WithOnDirSize(logSize("directory size")))
	p2, err := tree.SmallestToFree(r.params.DiskCapacity, r.params.RequiredFree,
		fstree.WithOnCandidate(logSize("deletion candidate")))
	if err != nil {
		return Answers{}, err
	}

	return Answers{Part1: strconv.FormatInt(p1, 10), Part2: strconv.FormatInt(p2, 10)}, nil
}

func solveForest(_ *Runner, text string) (Answers, error) {
	g, err := forest.NewGrid(textio.Lines(text))
	if err != nil {
		return Answers{}, err
	}

	return Answers{Part1: itoa(g.CountVisible()), Part2: itoa(g.MaxScenicScore())}, nil
}

func solveRope(r *Runner, text string) (Answers, error) {
	lines := textio.Lines(text)
	p1, err := rope.CountTailPositions(lines, r.params.ShortKnots)
	if err != nil {
		return Answers{}, err
	}
	p2, err := rope.CountTailPositions(lines, r.params.LongKnots)
	if err != nil {
		return Answers{}, err
	}

	return Answers{Part1: itoa(p1), Part2: itoa(p2)}, nil
}
