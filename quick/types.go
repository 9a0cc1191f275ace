package quick

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvsort/core"
)

// Sentinel errors for quicksort and the Hoare scheme.
var (
	// ErrSentinelMissing indicates there is no slot at last+1 for the Hoare scan.
	ErrSentinelMissing = errors.New("quick: hoare partition needs a sentinel at last+1")

	// ErrSentinelTooSmall indicates seq[last+1] is smaller than a value the
	// Hoare scan must stop before.
	ErrSentinelTooSmall = errors.New("quick: sentinel is smaller than the range it guards")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("quick: invalid option supplied")
)

// Scheme selects the partition strategy used by Sort.
type Scheme int

const (
	// Lomuto partitions with a single forward scan. Default.
	Lomuto Scheme = iota

	// Hoare partitions with two inward cursors and a sentinel at last+1.
	Hoare
)

// String returns the lower-case scheme name.
func (s Scheme) String() string {
	switch s {
	case Lomuto:
		return "lomuto"
	case Hoare:
		return "hoare"
	default:
		return fmt.Sprintf("scheme(%d)", int(s))
	}
}

// Option configures a quicksort call.
// Invalid options are recorded and surfaced as ErrOptionViolation by Sort
// and by the single-partition functions, which honour only WithStats.
type Option func(*Options)

// Options holds the strategy and instrumentation for quicksort.
type Options struct {
	// Scheme picks the partition strategy. Default Lomuto.
	Scheme Scheme

	// Stats, if non-nil, receives comparison, swap and partition counts and
	// the maximum logical recursion depth.
	Stats *core.Stats

	// OnPartition is called after each partition with the range, the final
	// pivot index and the logical depth (top-level range = 1).
	OnPartition func(first, last, pivot, depth int)

	// Rand, if non-nil, enables random pivot selection.
	Rand *rand.Rand

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - the Lomuto scheme
//   - no stats
//   - a no-op OnPartition
//   - first-element pivots (Rand == nil)
func DefaultOptions() Options {
	return Options{
		Scheme:      Lomuto,
		Stats:       nil,
		OnPartition: func(int, int, int, int) {},
		Rand:        nil,
		err:         nil,
	}
}

// WithScheme selects the partition scheme.
// Unknown schemes are an ErrOptionViolation.
func WithScheme(s Scheme) Option {
	return func(o *Options) {
		if s != Lomuto && s != Hoare {
			o.err = fmt.Errorf("%w: unknown scheme %v", ErrOptionViolation, s)
			return
		}
		o.Scheme = s
	}
}

// WithStats records counters into st.
func WithStats(st *core.Stats) Option {
	return func(o *Options) {
		o.Stats = st
	}
}

// WithOnPartition registers a per-partition callback. A nil fn is ignored.
func WithOnPartition(fn func(first, last, pivot, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPartition = fn
		}
	}
}

// WithRandomPivot swaps a uniformly chosen element of each range into its
// first slot before partitioning, drawing from r. A nil r is an
// ErrOptionViolation.
func WithRandomPivot(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: random pivot needs a non-nil *rand.Rand", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}
