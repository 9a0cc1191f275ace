package insertion

import "github.com/katalvlaran/lvsort/core"

// Option configures an insertion sort call.
type Option func(*Options)

// Options holds the optional instrumentation for insertion sort.
type Options struct {
	// Stats, if non-nil, receives comparison, move and step counts.
	// Every processed index counts as one pass.
	Stats *core.Stats

	// OnInsert is called after index i has been inserted, when seq[0..i]
	// is sorted.
	OnInsert func(i int)
}

// DefaultOptions returns Options with no stats and a no-op OnInsert.
func DefaultOptions() Options {
	return Options{
		Stats:    nil,
		OnInsert: func(int) {},
	}
}

// WithStats records counters into st.
func WithStats(st *core.Stats) Option {
	return func(o *Options) {
		o.Stats = st
	}
}

// WithOnInsert registers a per-step callback. A nil fn is ignored.
func WithOnInsert(fn func(i int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnInsert = fn
		}
	}
}
