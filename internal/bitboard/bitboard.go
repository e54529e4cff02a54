// Package bitboard implements the direction-mask primitives shared by
// Position.Won and Position.WinningBits: the classic bitboard four-in-a-row
// test, generalized over the four directions (vertical, horizontal, and
// both diagonals) via the board's column stride.
package bitboard

import "github.com/mvossen/c4solve/internal/geometry"

// Bitmap is a 64-bit column-major board mask; see internal/geometry for the
// bit layout.
type Bitmap = uint64

const (
	strideVertical   = 1
	strideHorizontal = geometry.UsedHeight
	strideDiagDown   = geometry.UsedHeight - 1 // '\' diagonal
	strideDiagUp     = geometry.UsedHeight + 1 // '/' diagonal
)

// Connected4 reports whether stones contains four connected bits in any of
// the four directions. stones is expected to already be restricted to a
// single player's cells.
func Connected4(stones Bitmap) bool {
	for _, stride := range [4]int{strideHorizontal, strideDiagDown, strideDiagUp, strideVertical} {
		m := stones & (stones >> uint(stride))
		if m&(m>>uint(2*stride)) != 0 {
			return true
		}
	}
	return false
}

// Threats returns every empty cell that would complete a four-in-a-row for
// stones if filled, including cells not yet reachable by gravity. Callers
// mask the result against the cells actually playable right now.
func Threats(stones Bitmap, occupied Bitmap) Bitmap {
	var r Bitmap

	// Vertical has no "other side": three in a row already means the
	// cell right above wins, no wraparound term needed.
	r |= (stones << strideVertical) & (stones << (2 * strideVertical)) & (stones << (3 * strideVertical))

	for _, stride := range [3]int{strideHorizontal, strideDiagDown, strideDiagUp} {
		p := (stones << uint(stride)) & (stones << uint(2*stride))
		r |= p & (stones << uint(3*stride))
		r |= p & (stones >> uint(stride))
		p >>= uint(3 * stride)
		r |= p & (stones << uint(stride))
		r |= p & (stones >> uint(3*stride))
	}

	return r & (geometry.G.BoardMask ^ occupied)
}

// PopCount returns the number of set bits.
func PopCount(b Bitmap) int {
	count := 0
	for b != 0 {
		b &= b - 1
		count++
	}
	return count
}
