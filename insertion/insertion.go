package insertion

import (
	"cmp"

	"github.com/katalvlaran/lvsort/core"
)

// Sort sorts seq[0:n] ascending in place.
// Returns core.ErrCountOutOfRange if n is outside [0, len(seq)].
func Sort[T cmp.Ordered](seq []T, n int, opts ...Option) error {
	return SortFunc(seq, n, cmp.Compare[T], opts...)
}

// SortFunc sorts seq[0:n] in place by the ordering cmp.
// Returns core.ErrNilCompare for a nil cmp and core.ErrCountOutOfRange for a
// bad n.
func SortFunc[T any](seq []T, n int, cmp func(a, b T) int, opts ...Option) error {
	// Validate input
	if err := core.CheckCompare(cmp); err != nil {
		return err
	}
	if err := core.CheckCount(n, len(seq)); err != nil {
		return err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// seq[0:i] is sorted at the top of every iteration
	for i := 1; i < n; i++ {
		o.Stats.CountPass()
		candidate := seq[i]
		loc := i - 1
		// shift larger elements out of the way
		for loc >= 0 && core.Less(cmp, candidate, seq[loc], o.Stats) {
			seq[loc+1] = seq[loc]
			o.Stats.CountMove()
			loc--
		}
		// drop the candidate into the vacated slot
		seq[loc+1] = candidate
		o.OnInsert(i)
	}
	return nil
}
