package bubble

import "github.com/katalvlaran/lvsort/core"

// Option configures a bubble sort call.
type Option func(*Options)

// Options holds the optional instrumentation for bubble sort.
type Options struct {
	// Stats, if non-nil, receives comparison, swap and pass counts.
	Stats *core.Stats

	// OnPass is called after every completed pass with the 1-based pass
	// number and whether that pass swapped anything.
	OnPass func(pass int, swapped bool)
}

// DefaultOptions returns Options with no stats and a no-op OnPass.
func DefaultOptions() Options {
	return Options{
		Stats:  nil,
		OnPass: func(int, bool) {},
	}
}

// WithStats records counters into st.
func WithStats(st *core.Stats) Option {
	return func(o *Options) {
		o.Stats = st
	}
}

// WithOnPass registers a per-pass callback. A nil fn is ignored.
func WithOnPass(fn func(pass int, swapped bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPass = fn
		}
	}
}
