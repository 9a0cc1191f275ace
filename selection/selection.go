package selection

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/lvsort/core"
	"github.com/katalvlaran/lvsort/quick"
)

// KthLargest returns the k-th largest value of seq[0:n], reordering the
// prefix as a side effect.
// Returns core.ErrCountOutOfRange for a bad n and ErrKOutOfRange unless
// 1 <= k <= n.
func KthLargest[T cmp.Ordered](seq []T, n, k int, opts ...Option) (T, error) {
	return KthLargestFunc(seq, n, k, cmp.Compare[T], opts...)
}

// KthLargestFunc is KthLargest with an explicit ordering.
func KthLargestFunc[T any](seq []T, n, k int, cmp func(a, b T) int, opts ...Option) (T, error) {
	var zero T
	if err := core.CheckCompare(cmp); err != nil {
		return zero, err
	}
	if err := core.CheckCount(n, len(seq)); err != nil {
		return zero, err
	}
	if k < 1 || k > n {
		return zero, fmt.Errorf("%w: k=%d, n=%d", ErrKOutOfRange, k, n)
	}
	o := applyOptions(opts)
	st := o.Stats

	for i := 0; i < k; i++ {
		st.CountPass()
		end := n - i
		largest, at := seq[0], 0
		for j := 1; j < end; j++ {
			if core.Greater(cmp, seq[j], largest, st) {
				largest, at = seq[j], j
			}
		}
		core.SwapCounted(seq, end-1, at, st)
	}
	// pass k left the k-th largest at n-k
	return seq[n-k], nil
}

// KthLargestQuick returns the k-th largest value of seq using quickselect,
// reordering seq as a side effect.
// Returns ErrKOutOfRange unless 1 <= k <= len(seq).
func KthLargestQuick[T cmp.Ordered](seq []T, k int, opts ...Option) (T, error) {
	return KthLargestQuickFunc(seq, k, cmp.Compare[T], opts...)
}

// KthLargestQuickFunc is KthLargestQuick with an explicit ordering.
func KthLargestQuickFunc[T any](seq []T, k int, cmp func(a, b T) int, opts ...Option) (T, error) {
	var zero T
	if err := core.CheckCompare(cmp); err != nil {
		return zero, err
	}
	n := len(seq)
	if k < 1 || k > n {
		return zero, fmt.Errorf("%w: k=%d, n=%d", ErrKOutOfRange, k, n)
	}
	o := applyOptions(opts)

	target := n - k
	first, last := 0, n-1
	for depth := 1; first < last; depth++ {
		p, err := quick.LomutoPartitionFunc(seq, first, last, cmp, quick.WithStats(o.Stats))
		if err != nil {
			return zero, err
		}
		o.Stats.CountPartition(depth)
		switch {
		case p == target:
			return seq[p], nil
		case target < p:
			last = p - 1
		default:
			first = p + 1
		}
	}
	return seq[target], nil
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
