package merge

import (
	"errors"

	"github.com/katalvlaran/lvsort/core"
)

// Sentinel errors for Merge.
var (
	// ErrNotAdjacent indicates that the second run does not start right
	// after the first one (end1+1 != start2).
	ErrNotAdjacent = errors.New("merge: runs are not adjacent")

	// ErrInvertedRun indicates a run whose start lies more than one past
	// its end.
	ErrInvertedRun = errors.New("merge: run bounds are inverted")
)

// Option configures a merge or merge sort call.
type Option func(*Options)

// Options holds the optional instrumentation for merge sort.
type Options struct {
	// Stats, if non-nil, receives comparison, move and merge counts.
	// Moves count writes into the auxiliary buffer.
	Stats *core.Stats

	// OnMerge is called after the runs [start1, end1] and [start2, end2]
	// have been merged back into the slice.
	OnMerge func(start1, end1, start2, end2 int)
}

// DefaultOptions returns Options with no stats and a no-op OnMerge.
func DefaultOptions() Options {
	return Options{
		Stats:   nil,
		OnMerge: func(int, int, int, int) {},
	}
}

// WithStats records counters into st.
func WithStats(st *core.Stats) Option {
	return func(o *Options) {
		o.Stats = st
	}
}

// WithOnMerge registers a per-merge callback. A nil fn is ignored.
func WithOnMerge(fn func(start1, end1, start2, end2 int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMerge = fn
		}
	}
}
