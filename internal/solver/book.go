package solver

import (
	"context"
	"io"

	"github.com/mvossen/c4solve/internal/book"
	"github.com/mvossen/c4solve/internal/position"
)

// GenerateBook solves every position reached from pos within depth plies
// and writes "<plays> <score>" lines to w, one per leaf of the traversal.
// prefix is prepended to the move string of every written line (the moves
// already played to reach pos).
func (s *Solver) GenerateBook(ctx context.Context, w io.Writer, pos position.Position, prefix string, depth int, weak bool) error {
	if depth == 0 || pos.Won() || pos.Possible() == 0 {
		return book.WriteLine(w, prefix, s.solve(pos, weak))
	}
	for col := 0; col < len(moveOrder); col++ {
		if pos.Full(col) {
			continue
		}
		child := pos.Play(col)
		childPrefix := prefix + string(rune('1'+col))
		if err := s.GenerateBook(ctx, w, child, childPrefix, depth-1, weak); err != nil {
			return err
		}
	}
	return nil
}
