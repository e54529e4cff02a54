// Command c4solve solves Connect Four positions given as move sequences on
// stdin, one per line, printing the exact game-theoretic score (and
// optionally the principal variation) for each.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"

	"github.com/mvossen/c4solve/internal/book"
	"github.com/mvossen/c4solve/internal/geometry"
	"github.com/mvossen/c4solve/internal/position"
	"github.com/mvossen/c4solve/internal/solver"
)

var version = build.NewVersion(0, 1, 0)

var (
	tableLog2 = flag.Int("T", 0, "transposition table size as log2 of the entry count; negative values count down from the 30-bit ceiling (0 uses the default)")
	weak      = flag.Bool("w", false, "weak solve: only resolve win/draw/loss, not the exact score")
	keepCache = flag.Bool("k", false, "keep the transposition table across lines instead of clearing it each time")
	principal = flag.Bool("p", false, "also print the principal variation")
	bookFile  = flag.String("b", "", "preseed the transposition table from an opening-book file")
	genDepth  = flag.Int("g", 0, "generate an opening book to stdout to this many plies and exit, instead of solving stdin")
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `c4solve %s

usage: c4solve [options] < moves.txt

Reads Connect Four move sequences from stdin, one per line (digits '1'
through '%d' naming a column), and prints the solved score of each.
Options:
`, version, geometry.Width)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	opts := []solver.Option{
		solver.WithWeakSolve(*weak),
		solver.WithKeepCache(*keepCache),
	}
	if *tableLog2 != 0 {
		opts = append(opts, solver.WithTableLog2Size(*tableLog2))
	}

	s, err := solver.New(opts...)
	if err != nil {
		logw.Exitf(ctx, "c4solve: creating solver: %v", err)
	}

	if *bookFile != "" {
		f, err := os.Open(*bookFile)
		if err != nil {
			logw.Exitf(ctx, "c4solve: opening book file: %v", err)
		}
		preset, err := book.ParsePreseed(f)
		f.Close()
		if err != nil {
			logw.Exitf(ctx, "c4solve: parsing book file: %v", err)
		}
		s.Preseed(preset)
		logw.Infof(ctx, "c4solve: preseeded %d positions from %s", len(preset), *bookFile)
	}

	if *genDepth > 0 {
		if err := s.GenerateBook(ctx, os.Stdout, position.Empty, "", *genDepth, *weak); err != nil {
			logw.Exitf(ctx, "c4solve: generating book: %v", err)
		}
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		moves := scanner.Text()
		if moves == "" {
			continue
		}

		pos, err := position.FromMoves(moves)
		if err != nil {
			fmt.Printf("%s: error: %v\n", moves, err)
			continue
		}

		s.Reset(ctx, *keepCache)
		score := s.Solve(ctx, pos, *weak)
		stats := s.Stats()

		if *principal {
			line := s.PrincipalVariation(ctx, pos, score, *weak)
			fmt.Printf("%s: score=%d visits=%d pv=%v\n", moves, score, stats.Visits, line)
		} else {
			fmt.Printf("%s: score=%d visits=%d\n", moves, score, stats.Visits)
		}
	}
	if err := scanner.Err(); err != nil {
		logw.Exitf(ctx, "c4solve: reading stdin: %v", err)
	}
}
