package selection

import (
	"errors"

	"github.com/katalvlaran/lvsort/core"
)

// ErrKOutOfRange indicates k outside [1, n].
var ErrKOutOfRange = errors.New("selection: k out of range")

// Option configures a selection call.
type Option func(*Options)

// Options holds the optional instrumentation for selection.
type Options struct {
	// Stats, if non-nil, receives comparisons and swaps for both strategies,
	// plus passes for KthLargest and partitions and depth for KthLargestQuick.
	Stats *core.Stats
}

// DefaultOptions returns Options with no stats.
func DefaultOptions() Options {
	return Options{Stats: nil}
}

// WithStats records counters into st.
func WithStats(st *core.Stats) Option {
	return func(o *Options) {
		o.Stats = st
	}
}
