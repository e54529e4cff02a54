// Package solver implements the negamax-with-alpha-beta search kernel and
// the null-window iterative-deepening driver that resolves it to an exact
// score, plus the collaborator surface (reset, preseed, principal
// variation, book generation) built on top of it.
package solver

import (
	"context"

	"github.com/seekerror/logw"

	"github.com/mvossen/c4solve/internal/geometry"
	"github.com/mvossen/c4solve/internal/position"
	"github.com/mvossen/c4solve/internal/tt"
)

// Stats records search activity since the last Reset.
type Stats struct {
	Visits uint64
	Hits   uint64
	Misses uint64
}

// Solver owns a transposition table and running statistics; it holds no
// package-level state, so distinct Solver values can run independent,
// concurrent searches.
type Solver struct {
	table *tt.Table
	cfg   Config
	stats Stats
}

// New allocates a Solver per the given options.
func New(opts ...Option) (*Solver, error) {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}

	bits, err := resolveTableBits(cfg)
	if err != nil {
		return nil, err
	}
	table, err := tt.New(bits)
	if err != nil {
		return nil, err
	}

	return &Solver{table: table, cfg: cfg}, nil
}

// Stats returns a snapshot of the solver's running statistics.
func (s *Solver) Stats() Stats {
	return s.stats
}

// Reset zeroes the visit/hit/miss counters. If keepCache is false, the
// transposition table is also cleared.
func (s *Solver) Reset(ctx context.Context, keepCache bool) {
	s.stats = Stats{}
	if !keepCache {
		s.table.Clear()
		logw.Debugf(ctx, "solver: cleared transposition table (%d entries)", s.table.Len())
	}
}

// Preseed writes each (position, score) pair directly into the
// transposition table, bypassing search. Used to pre-load an opening book.
func (s *Solver) Preseed(seed map[position.Position]int) {
	for pos, score := range seed {
		s.table.Set(pos.Key(), score, 0)
	}
}

// moveOrder is the fixed center-out column exploration order.
var moveOrder = geometry.MoveOrder()
