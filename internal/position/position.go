// Package position implements the bitboard Connect Four position: an
// immutable-by-convention value pair (color, mask) and the operations the
// search kernel needs (play, legality, terminal detection, winning-bits
// detection, key derivation, scoring, rendering).
package position

import (
	"strings"

	"github.com/mvossen/c4solve/internal/bitboard"
	"github.com/mvossen/c4solve/internal/geometry"
)

// Position is a Connect Four position. mask is the union of all played
// cells; color records the stones of the player who just moved, so that
// `color ^ mask` are the stones of the side to move. Both invariants hold
// for every value returned by this package: color&^mask == 0 and mask has
// no bits set in a column's guard row.
type Position struct {
	color bitboard.Bitmap
	mask  bitboard.Bitmap
	plies int
}

// Empty is the starting position.
var Empty = Position{}

// Play returns the position after dropping a stone in col, which must not
// be Full. The new mask both OR's in the new stone (the addition's carry
// propagates through the column's existing stones) and the new color
// complements the old one relative to the new mask, which is exactly the
// to-move perspective flip.
func (p Position) Play(col int) Position {
	newMask := p.mask | (p.mask + geometry.BottomBit(col))
	return Position{
		color: p.color ^ newMask,
		mask:  newMask,
		plies: p.plies + 1,
	}
}

// Full reports whether col has no empty cell left.
func (p Position) Full(col int) bool {
	return p.mask&geometry.TopBit(col) != 0
}

// Possible returns the cells where a legal move would land.
func (p Position) Possible() bitboard.Bitmap {
	return (p.mask + geometry.G.BottomBits) & geometry.G.BoardMask
}

// Mine returns the stones of the side to move.
func (p Position) Mine() bitboard.Bitmap {
	return p.color ^ p.mask
}

// Occupied returns the union of all played cells.
func (p Position) Occupied() bitboard.Bitmap {
	return p.mask
}

// Won reports whether the side that just moved (Position.color) completed
// a four-in-a-row.
func (p Position) Won() bool {
	return bitboard.Connected4(p.color)
}

// WinningBits returns every empty cell which, if filled by the side to
// move, completes a four-in-a-row.
func (p Position) WinningBits() bitboard.Bitmap {
	return bitboard.Threats(p.Mine(), p.mask)
}

// OpponentWinningBits returns the same, for the opponent of the side to
// move (i.e. the player who just moved).
func (p Position) OpponentWinningBits() bitboard.Bitmap {
	return bitboard.Threats(p.color, p.mask)
}

// PossibleNonLosingMoves restricts Possible to moves that don't immediately
// hand the opponent a win: if the opponent threatens two independent wins
// next turn they cannot both be blocked (returns 0); if they threaten
// exactly one, only that column can be played; any cell directly below an
// opponent-winning cell is excluded regardless, since playing there would
// set the opponent's winning cell up on top.
func (p Position) PossibleNonLosingMoves() bitboard.Bitmap {
	possible := p.Possible()
	opponentWin := p.OpponentWinningBits()

	forced := opponentWin & possible
	if forced != 0 {
		if forced&(forced-1) != 0 {
			return 0
		}
		possible = forced
	}
	return possible &^ (opponentWin >> 1)
}

// NrPlies returns the number of stones played so far.
func (p Position) NrPlies() int {
	return p.plies
}

// NrPliesLeft returns the number of empty cells remaining.
func (p Position) NrPliesLeft() int {
	return geometry.BoardSize - p.plies
}

// ToMove returns 0 for the first player to move, 1 for the second.
func (p Position) ToMove() int {
	return p.plies & 1
}

// Score1 is the score of a position where the side to move wins on its
// very next ply.
func (p Position) Score1() int {
	return (p.NrPliesLeft() + 1) / 2
}

// Score2 is the score of a position where the side to move wins in two
// plies (its opponent's reply, then a forced win).
func (p Position) Score2() int {
	return p.NrPliesLeft() / 2
}

// Score3 is the score of a position where the side to move wins in three
// plies; it also bounds the best possible score when the side to move
// cannot win immediately.
func (p Position) Score3() int {
	return (p.NrPliesLeft() - 1) / 2
}

// Score is the generic score ceiling for this position: the value Score1
// would give if evaluated one ply earlier, on the move that would have
// completed a four-in-a-row for the player who just moved (color). Unlike
// Score1, it is derived from color's stone count rather than NrPliesLeft,
// so it stays correct under either ply parity when called directly on an
// already-Won position (where Score1 would silently be one short).
func (p Position) Score() int {
	return geometry.BoardSize/2 + 1 - bitboard.PopCount(p.color)
}

// Key returns a per-position unique encoding: for each column, mask is a
// contiguous run of 1s from the bottom and color lies within that run, so
// color+mask reproduces the same run shifted up by one bit, from which
// both mask and color can be recovered.
func (p Position) Key() uint64 {
	return p.color + p.mask
}

// String renders the position with '+'/'-' borders, '.' for empty cells,
// 'x' for the side to move's stones and 'o' for the opponent's.
func (p Position) String() string {
	var b strings.Builder
	writeBorder(&b)
	for y := geometry.Height - 1; y >= 0; y-- {
		b.WriteByte('|')
		for x := 0; x < geometry.Width; x++ {
			bit := uint64(1) << uint(x*geometry.UsedHeight+y)
			switch {
			case p.mask&bit == 0:
				b.WriteByte('.')
			case p.Mine()&bit != 0:
				b.WriteByte('x')
			default:
				b.WriteByte('o')
			}
		}
		b.WriteString("|\n")
	}
	writeBorder(&b)
	return b.String()
}

func writeBorder(b *strings.Builder) {
	for x := 0; x < geometry.Width; x++ {
		b.WriteString("+-")
	}
	b.WriteString("+\n")
}
