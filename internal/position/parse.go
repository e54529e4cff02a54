package position

import (
	"fmt"

	"github.com/mvossen/c4solve/internal/geometry"
)

// ErrInvalidCharacter reports a non-digit byte in a move sequence.
type ErrInvalidCharacter struct {
	Character byte
	Index     int
}

func (e ErrInvalidCharacter) Error() string {
	return fmt.Sprintf("invalid character %q at index %d", e.Character, e.Index)
}

// ErrColumnOutOfRange reports a digit that does not name a board column.
type ErrColumnOutOfRange struct {
	Column int
	Index  int
}

func (e ErrColumnOutOfRange) Error() string {
	return fmt.Sprintf("column %d out of range at index %d", e.Column, e.Index)
}

// ErrColumnFull reports a play into an already-full column.
type ErrColumnFull struct {
	Column int
	Index  int
}

func (e ErrColumnFull) Error() string {
	return fmt.Sprintf("column %d is full at index %d", e.Column, e.Index)
}

// ErrWinningMove reports a play that completes a four-in-a-row with more
// moves still following it in the sequence.
type ErrWinningMove struct {
	Column int
	Index  int
}

func (e ErrWinningMove) Error() string {
	return fmt.Sprintf("move at index %d in column %d wins the game", e.Index, e.Column)
}

// FromMoves parses a sequence of single-digit column plays ('1'..'9',
// 1-based) applied in order to the empty board. It fails on a non-digit
// character, a column outside [1, geometry.Width], a play into a full
// column, or a winning move followed by further plays.
func FromMoves(moves string) (Position, error) {
	if geometry.Width >= 10 {
		panic("position: FromMoves doesn't support boards wider than 9 columns")
	}

	pos := Empty
	for i := 0; i < len(moves); i++ {
		c := moves[i]
		if c < '1' || c > '9' {
			return Position{}, ErrInvalidCharacter{Character: c, Index: i}
		}
		col := int(c-'0') - 1
		if col >= geometry.Width {
			return Position{}, ErrColumnOutOfRange{Column: col + 1, Index: i}
		}
		if pos.Full(col) {
			return Position{}, ErrColumnFull{Column: col + 1, Index: i}
		}
		if pos.WinningBits()&geometry.ColumnMask(col)&pos.Possible() != 0 && i != len(moves)-1 {
			return Position{}, ErrWinningMove{Column: col + 1, Index: i}
		}
		pos = pos.Play(col)
	}
	return pos, nil
}
