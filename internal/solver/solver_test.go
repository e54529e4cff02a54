package solver

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvossen/c4solve/internal/position"
)

func mustSolve(t *testing.T, moves string, weak bool) int {
	t.Helper()
	s, err := New()
	require.NoError(t, err)
	pos, err := position.FromMoves(moves)
	require.NoError(t, err)
	return s.Solve(context.Background(), pos, weak)
}

func TestSolveEmptyBoardIsAWinForX(t *testing.T) {
	assert.Equal(t, 1, mustSolve(t, "", false))
}

func TestSolveFortyFourFourFourIsALoss(t *testing.T) {
	assert.Equal(t, -9, mustSolve(t, "44444", false))
}

func TestSolveColumnOverflowIsAParseError(t *testing.T) {
	_, err := position.FromMoves("4444444")
	require.Error(t, err)
}

func TestSolveStrongSequenceIsPlusEight(t *testing.T) {
	assert.Equal(t, 8, mustSolve(t, "32164625", false))
}

func TestSolveAlreadyWonPositionOddPlies(t *testing.T) {
	// x completes a vertical four on the 7th (odd) ply; Solve is called on
	// the post-win position and must report the side to move (o) losing by
	// the maximum margin.
	assert.Equal(t, -18, mustSolve(t, "1212121", false))
}

func TestSolveAlreadyWonPositionEvenPlies(t *testing.T) {
	// o completes a vertical four on the 8th (even) ply: the same check,
	// at the ply parity the review found broken.
	assert.Equal(t, -18, mustSolve(t, "12121232", false))
}

func TestSolveWeakAgreesInSignWithExact(t *testing.T) {
	pos, err := position.FromMoves("32164625")
	require.NoError(t, err)

	s, err := New()
	require.NoError(t, err)
	exact := s.Solve(context.Background(), pos, false)

	s2, err := New()
	require.NoError(t, err)
	weak := s2.Solve(context.Background(), pos, true)

	assert.Equal(t, sign(exact), sign(weak))
}

func TestPreseedShortCircuitsSearch(t *testing.T) {
	pos, err := position.FromMoves("32164625")
	require.NoError(t, err)

	s, err := New()
	require.NoError(t, err)
	want := s.Solve(context.Background(), pos, false)

	s2, err := New()
	require.NoError(t, err)
	s2.Preseed(map[position.Position]int{pos: want})
	s2.Reset(context.Background(), true)

	got := s2.Solve(context.Background(), pos, false)
	assert.Equal(t, want, got)
	assert.Zero(t, s2.Stats().Visits, "a preseeded leaf should need no search")
}

func TestResetClearsStats(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	pos, err := position.FromMoves("32164625")
	require.NoError(t, err)

	s.Solve(context.Background(), pos, false)
	require.NotZero(t, s.Stats().Visits)

	s.Reset(context.Background(), true)
	assert.Zero(t, s.Stats().Visits)
}

func TestPrincipalVariationEndsInAWinOrExhaustion(t *testing.T) {
	pos, err := position.FromMoves("32164625")
	require.NoError(t, err)

	s, err := New()
	require.NoError(t, err)
	score := s.Solve(context.Background(), pos, false)
	line := s.PrincipalVariation(context.Background(), pos, score, false)

	cur := pos
	for _, col := range line {
		require.False(t, cur.Full(col))
		cur = cur.Play(col)
	}
	assert.True(t, cur.Won() || cur.Possible() == 0, "principal variation stopped before the game ended")
}

func TestGenerateBookWritesOneLinePerLeaf(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.GenerateBook(context.Background(), &buf, position.Empty, "", 2, false))

	// Depth 2 from the empty board: 7 first moves, each with 7 replies, and
	// no position after one ply is won or full.
	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	assert.Equal(t, 7*7, lines)
}
