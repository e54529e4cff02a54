package solver

import (
	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/mvossen/c4solve/internal/tt"
)

// DefaultTableBits is the index-bit count used when no explicit
// transposition size is configured: 2^23 entries, 64MB at 8 bytes/entry.
const DefaultTableBits = 23

// MaxTableBits is the largest index-bit count solving "fill memory" (a
// negative Log2Size request) resolves against, since this package does not
// itself query installed RAM (an out-of-scope OS query, per the design).
const MaxTableBits = 30

// Config holds Solver construction options.
type Config struct {
	log2Size lang.Optional[int]
	weak     bool
	keep     bool
}

// Option configures a Solver at construction time.
type Option func(*Config)

// WithTableLog2Size sets the transposition table size as log2(entries).
// Zero is interpreted as "use the default ceiling"; negative values mean
// "MaxTableBits minus this many halving steps", per the external
// transposition-configuration interface.
func WithTableLog2Size(bits int) Option {
	return func(c *Config) {
		c.log2Size = lang.Some(bits)
	}
}

// WithWeakSolve records a weak-solve setting in the Solver's Config. Solve,
// PrincipalVariation and GenerateBook do not read it; each takes its weak
// mode from its own argument.
func WithWeakSolve(weak bool) Option {
	return func(c *Config) {
		c.weak = weak
	}
}

// WithKeepCache records a cache-retention setting in the Solver's Config.
// Reset does not read it; it takes keepCache as its own argument.
func WithKeepCache(keep bool) Option {
	return func(c *Config) {
		c.keep = keep
	}
}

func resolveTableBits(c Config) (int, error) {
	requested, ok := c.log2Size.V()
	if !ok || requested == 0 {
		return DefaultTableBits, nil
	}
	if requested > 0 {
		if requested > 62 {
			return 0, tt.ErrSizeTooLarge{RequestedBits: requested, MaxBits: 62}
		}
		return requested, nil
	}
	bits := MaxTableBits + requested
	if bits < 1 {
		return 0, tt.ErrSizeTooLarge{RequestedBits: bits, MaxBits: 62}
	}
	return bits, nil
}
