package solver

import (
	"github.com/mvossen/c4solve/internal/bitboard"
	"github.com/mvossen/c4solve/internal/geometry"
	"github.com/mvossen/c4solve/internal/position"
)

// candidate is one ordered move under consideration during alphabeta.
type candidate struct {
	col     int
	bit     bitboard.Bitmap
	oppWin  bitboard.Bitmap // child's opponent-winning-bits (this move's after-play threats)
	threats int
}

// alphabeta is the fail-soft negamax kernel. It must only be called on a
// position that is not terminal: the caller has already ruled out an
// immediate win and confirmed legal moves exist. opponentWin is the set of
// cells where the opponent would complete a four on their next move.
//
// Fail-soft contract: if the true score is <= alpha, the return value is
// <= alpha; if it is >= beta, the return value is >= beta; otherwise the
// return value is exact.
func (s *Solver) alphabeta(pos position.Position, alpha, beta int, opponentWin bitboard.Bitmap) int {
	s.stats.Visits++

	possible := pos.Possible()
	forced := opponentWin & possible
	if forced != 0 {
		if forced&(forced-1) != 0 {
			// Two independent threats: can't block both.
			return -pos.Score2()
		}
		possible = forced
	}
	possible &^= opponentWin >> 1 // never stack a cell under an opponent win
	if possible == 0 {
		return -pos.Score2()
	}

	// The opponent cannot win on our very next ply (we're about to move),
	// so we can't lose any faster than that.
	if min := 1 - pos.Score2(); alpha < min {
		alpha = min
		if alpha >= beta {
			return alpha
		}
	}

	key := pos.Key()
	cachedBest := -1
	cachedMax, best, hit := s.table.Get(key)
	if hit {
		s.stats.Hits++
		cachedBest = best
	} else {
		s.stats.Misses++
		cachedMax = pos.Score3() // upper bound: can't win this ply either
	}
	if beta > cachedMax {
		beta = cachedMax
		if alpha >= beta {
			return beta
		}
	}

	candidates := orderMoves(pos, possible, opponentWin, cachedBest)

	currentBest := -geometry.MaxScore - 1
	bestCol := -1
	for _, c := range candidates {
		child := pos.Play(c.col)
		score := -s.alphabeta(child, -beta, -alpha, c.oppWin)
		if score > currentBest {
			currentBest = score
			bestCol = c.col
		}
		if currentBest > alpha {
			alpha = currentBest
		}
		if alpha >= beta {
			// Fail high: currentBest is only a lower bound, and the table
			// holds upper bounds, so it is returned without being stored.
			return currentBest
		}
	}

	s.table.Set(key, currentBest, bestCol)
	return currentBest
}

// orderMoves walks the fixed center-out column order and scores each
// legal candidate by the threats it creates for the side to move, biased
// towards cells the opponent would be forced to accept. A cached best
// move (from a previous transposition hit) always goes first and skips
// threat scoring.
func orderMoves(pos position.Position, possible bitboard.Bitmap, opponentWin bitboard.Bitmap, cachedBest int) []candidate {
	mine := pos.Mine()
	occupied := pos.Occupied()

	opponentStacked := opponentWin & (opponentWin << 1)
	opponentAllowed := ((opponentStacked | geometry.G.AboveBits) - geometry.G.BottomBits) & geometry.G.BoardMask

	var head *candidate
	rest := make([]candidate, 0, geometry.Width)

	for _, col := range moveOrder {
		bit := possible & geometry.ColumnMask(col)
		if bit == 0 {
			continue
		}
		afterMove := mine | bit
		winningBits := bitboard.Threats(afterMove, occupied|bit)

		if col == cachedBest {
			c := candidate{col: col, bit: bit, oppWin: winningBits}
			head = &c
			continue
		}

		threats := 2 * bitboard.PopCount(winningBits&opponentAllowed)
		if winningBits&(winningBits<<1) != 0 {
			threats++
		}
		insertCandidate(&rest, candidate{col: col, bit: bit, oppWin: winningBits, threats: threats})
	}

	if head == nil {
		return rest
	}
	out := make([]candidate, 0, len(rest)+1)
	out = append(out, *head)
	return append(out, rest...)
}

// insertCandidate inserts c into out (kept sorted descending by threats).
func insertCandidate(out *[]candidate, c candidate) {
	s := *out
	i := len(s)
	for i > 0 && s[i-1].threats < c.threats {
		i--
	}
	s = append(s, candidate{})
	copy(s[i+1:], s[i:])
	s[i] = c
	*out = s
}
