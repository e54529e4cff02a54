// Package book reads and writes opening-book files: plain text, one
// position per line, "<moves> <score>" where moves is a digit string
// (1-indexed columns) and score is the solved value of the resulting
// position from the side to move's perspective. Blank lines and lines
// that don't start with a digit (comments) are skipped.
package book

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mvossen/c4solve/internal/position"
)

// ErrMalformedLine reports a preseed line that isn't "<moves> <score>".
type ErrMalformedLine struct {
	LineNr int
	Reason string
}

func (e ErrMalformedLine) Error() string {
	return fmt.Sprintf("book: malformed line %d: %s", e.LineNr, e.Reason)
}

// ErrScoreOutOfBounds reports a score outside the range the resulting
// position could possibly have.
type ErrScoreOutOfBounds struct {
	LineNr int
	Score  int
	Bound  int
}

func (e ErrScoreOutOfBounds) Error() string {
	return fmt.Sprintf("book: line %d: score %d out of bounds (|score| <= %d)", e.LineNr, e.Score, e.Bound)
}

// ParsePreseed reads a preseed file and returns the positions it reaches,
// keyed by the exact Position value, with their preset scores.
func ParsePreseed(r io.Reader) (map[position.Position]int, error) {
	preset := make(map[position.Position]int)

	scanner := bufio.NewScanner(r)
	lineNr := 0
	for scanner.Scan() {
		lineNr++
		line := scanner.Text()
		if line == "" {
			continue
		}
		if line[0] < '0' || line[0] > '9' {
			continue
		}

		space := strings.IndexByte(line, ' ')
		if space < 0 {
			return nil, ErrMalformedLine{LineNr: lineNr, Reason: "no score field"}
		}
		moves := line[:space]
		scoreField := strings.TrimSpace(line[space+1:])

		pos, err := position.FromMoves(moves)
		if err != nil {
			return nil, ErrMalformedLine{LineNr: lineNr, Reason: err.Error()}
		}

		score, err := strconv.Atoi(scoreField)
		if err != nil {
			return nil, ErrMalformedLine{LineNr: lineNr, Reason: "score is not an integer"}
		}

		// Upper bound is the generic score ceiling (parity-correct
		// regardless of whether pos is actually won); lower bound is
		// narrower, since the side to move can only ever lose as fast as
		// Score1 (a loss on the very next ply).
		if upper, lower := pos.Score(), pos.Score1(); score > upper || score < -lower {
			bound := upper
			if score < -lower {
				bound = lower
			}
			return nil, ErrScoreOutOfBounds{LineNr: lineNr, Score: score, Bound: bound}
		}

		preset[pos] = score
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return preset, nil
}

// WriteLine writes one "<moves> <score>" book line.
func WriteLine(w io.Writer, moves string, score int) error {
	_, err := fmt.Fprintf(w, "%s %d\n", moves, score)
	return err
}
