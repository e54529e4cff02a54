// Package tt implements the solver's transposition table: an
// open-addressed, power-of-two-sized array of 64-bit entries, each packing
// {key, best move column, score}. Entries are addressed by a multiplicative
// hash and always replaced on collision.
package tt

import (
	"fmt"

	"github.com/mvossen/c4solve/internal/geometry"
)

// multiplier is a full-period 64-bit LCG multiplier, used to spread keys
// across the table (Fibonacci hashing: the top indexBits bits of key*M).
const multiplier = 6364136223846793005

// invalid is the sentinel written over the empty board's slot after Clear,
// so that a zeroed (untouched) entry elsewhere in the table never matches
// key 0 by accident.
const invalid = ^uint64(0)

// ErrSizeTooLarge reports a requested table size outside the supported
// range: more than MaxBits index bits, or fewer than one.
type ErrSizeTooLarge struct {
	RequestedBits int
	MaxBits       int
}

func (e ErrSizeTooLarge) Error() string {
	return fmt.Sprintf("transposition table: requested %d index bits, max is %d", e.RequestedBits, e.MaxBits)
}

// Table is a transposition table sized 2^indexBits entries.
type Table struct {
	entries   []uint64
	indexBits int
}

// New allocates a cleared Table of exactly 1<<indexBits entries. indexBits
// must lie in [1, 62]; otherwise New returns ErrSizeTooLarge.
func New(indexBits int) (*Table, error) {
	if indexBits < 1 || indexBits > 62 {
		return nil, ErrSizeTooLarge{RequestedBits: indexBits, MaxBits: 62}
	}
	t := &Table{
		entries:   make([]uint64, 1<<uint(indexBits)),
		indexBits: indexBits,
	}
	t.Clear()
	return t, nil
}

// Resize reallocates the table for the given requested size (entries,
// rounded up to the next power of two) and clears it.
func (t *Table) Resize(size uint64) error {
	if size == 0 {
		size = 1
	}
	bitsNeeded := 1
	for uint64(1)<<uint(bitsNeeded) < size {
		bitsNeeded++
	}
	if bitsNeeded > 62 {
		return ErrSizeTooLarge{RequestedBits: bitsNeeded, MaxBits: 62}
	}
	t.entries = make([]uint64, 1<<uint(bitsNeeded))
	t.indexBits = bitsNeeded
	t.Clear()
	return nil
}

// IndexBits returns log2 of the table's entry count.
func (t *Table) IndexBits() int {
	return t.indexBits
}

// Len returns the number of entries (1<<IndexBits()).
func (t *Table) Len() int {
	return len(t.entries)
}

// Clear zeroes every entry, then writes the invalid sentinel over the slot
// the empty board's key (0) hashes to.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = 0
	}
	t.entries[t.index(0)] = invalid
}

func (t *Table) index(key uint64) int {
	return int((key * multiplier) >> uint(64-t.indexBits))
}

// Get returns the cached score and best-move column for key, if present.
func (t *Table) Get(key uint64) (score int, best int, ok bool) {
	entry := t.entries[t.index(key)]
	storedKey := entry & keyMask()
	if storedKey != key {
		return 0, 0, false
	}
	best = int((entry >> geometry.G.KeyBits) & bestMask())
	biased := int((entry >> (geometry.G.KeyBits + geometry.G.BestBits)) & scoreMask())
	return biased - (geometry.MaxScore + 1), best, true
}

// Set stores score and best (a column index) for key, always replacing
// whatever was in that slot.
func (t *Table) Set(key uint64, score int, best int) {
	biased := uint64(score + geometry.MaxScore + 1)
	entry := (key & keyMask()) |
		(uint64(best)&bestMask())<<geometry.G.KeyBits |
		(biased&scoreMask())<<(geometry.G.KeyBits+geometry.G.BestBits)
	t.entries[t.index(key)] = entry
}

func keyMask() uint64   { return (uint64(1) << geometry.G.KeyBits) - 1 }
func bestMask() uint64  { return (uint64(1) << geometry.G.BestBits) - 1 }
func scoreMask() uint64 { return (uint64(1) << geometry.G.ScoreBits) - 1 }
