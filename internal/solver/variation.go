package solver

import (
	"context"

	"github.com/mvossen/c4solve/internal/position"
)

// PrincipalVariation reconstructs the sequence of columns realizing score
// from pos, by repeatedly solving each candidate child (in move_order) and
// keeping the first whose negated score matches the expected score —
// exactly, or merely in sign when weak is set.
func (s *Solver) PrincipalVariation(ctx context.Context, pos position.Position, score int, weak bool) []int {
	var line []int
	expected := score

	for {
		if pos.Won() || pos.Possible() == 0 {
			return line
		}

		found := false
		for _, col := range moveOrder {
			if pos.Full(col) {
				continue
			}
			child := pos.Play(col)
			childScore := -s.solve(child, weak)
			if matches(childScore, expected, weak) {
				line = append(line, col)
				pos = child
				expected = -childScore
				found = true
				break
			}
		}
		if !found {
			return line
		}
	}
}

func matches(got, want int, weak bool) bool {
	if weak {
		return sign(got) == sign(want)
	}
	return got == want
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
