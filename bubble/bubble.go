package bubble

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
// bad n; seq is untouched in both cases.
func SortFunc[T any](seq []T, n int, cmp func(a, b T) int, opts ...Option) error {
	// Validate comparator and prefix length before touching seq
	if err := core.CheckCompare(cmp); err != nil {
		return err
	}
	if err := core.CheckCount(n, len(seq)); err != nil {
		return err
	}

	// Build options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Each pass bubbles the largest value of seq[0:bound] up to bound-1,
	// so the next pass can stop one slot earlier.
	pass := 0
	for bound := n; bound > 1; bound-- {
		pass++
		o.Stats.CountPass()
		swapped := false
		for i := 0; i < bound-1; i++ {
			if core.Greater(cmp, seq[i], seq[i+1], o.Stats) {
				core.SwapCounted(seq, i, i+1, o.Stats)
				swapped = true
			}
		}
		o.OnPass(pass, swapped)

		// A clean pass means the prefix is already in order
		if !swapped {
			break
		}
	}
	return nil
}
