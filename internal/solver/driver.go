package solver

import (
	"context"
	"time"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/mathx"

	"github.com/mvossen/c4solve/internal/position"
)

// Solve returns the exact game-theoretic value of pos from the side to
// move's perspective: positive means the mover wins, zero is a draw,
// negative means the mover loses, with the magnitude counting plies to the
// forced result. When weak is true, only the sign is resolved.
func (s *Solver) Solve(ctx context.Context, pos position.Position, weak bool) int {
	start := time.Now()
	result := s.solve(pos, weak)
	logw.Infof(ctx, "solve: score=%d visits=%d hits=%d misses=%d elapsed=%dus",
		result, s.stats.Visits, s.stats.Hits, s.stats.Misses, time.Since(start).Microseconds())
	return result
}

func (s *Solver) solve(pos position.Position, weak bool) int {
	if pos.Won() {
		return -pos.Score()
	}
	possible := pos.Possible()
	if possible == 0 {
		return 0
	}
	if pos.WinningBits()&possible != 0 {
		return pos.Score1()
	}
	if pos.NrPliesLeft() == 1 {
		return 0
	}

	min := -pos.Score2()
	max := pos.Score3()
	if weak {
		min = mathx.Max(min, -1)
		max = mathx.Min(max, 1)
	}

	for min < max {
		med := min + (max-min)/2
		if med <= 0 && min/2 < med {
			med = min / 2
		} else if med >= 0 && max/2 > med {
			med = max / 2
		}

		r := s.alphabeta(pos, med, med+1, pos.OpponentWinningBits())
		if r <= med {
			max = r
		} else {
			min = r
		}
	}
	return min
}
