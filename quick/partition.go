package quick

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/lvsort/core"
)

// partitionFunc is the contract both schemes satisfy: rearrange
// seq[first..last] around the pivot seq[first] and return the boundary.
// Callers guarantee first < last and any scheme-specific precondition.
type partitionFunc[T any] func(seq []T, first, last int, cmp func(a, b T) int, st *core.Stats) int

// partitionerFor maps a Scheme to its partition function.
func partitionerFor[T any](s Scheme) partitionFunc[T] {
	if s == Hoare {
		return hoare[T]
	}
	return lomuto[T]
}

// Partition runs one partition of seq[first..last] with the given scheme.
// Only WithStats is honoured among opts; see LomutoPartition and
// HoarePartition for the result and its bounds.
func Partition[T cmp.Ordered](seq []T, first, last int, s Scheme, opts ...Option) (int, error) {
	return PartitionFunc(seq, first, last, cmp.Compare[T], s, opts...)
}

// PartitionFunc runs one partition with the given scheme and ordering.
func PartitionFunc[T any](seq []T, first, last int, cmp func(a, b T) int, s Scheme, opts ...Option) (int, error) {
	switch s {
	case Lomuto:
		return LomutoPartitionFunc(seq, first, last, cmp, opts...)
	case Hoare:
		return HoarePartitionFunc(seq, first, last, cmp, opts...)
	default:
		return 0, fmt.Errorf("%w: unknown scheme %v", ErrOptionViolation, s)
	}
}

// LomutoPartition partitions seq[first..last] around the pivot value
// seq[first] and returns the pivot's final index p:
//   - seq[first..p-1] < seq[p]
//   - seq[p+1..last] >= seq[p] (values equal to the pivot land here)
//
// A single-element range returns p = first unchanged. An empty range
// (first > last) also returns first, which is then NOT an element index:
// it may equal len(seq). Check first <= last before using p.
func LomutoPartition[T cmp.Ordered](seq []T, first, last int, opts ...Option) (int, error) {
	return LomutoPartitionFunc(seq, first, last, cmp.Compare[T], opts...)
}

// LomutoPartitionFunc is LomutoPartition with an explicit ordering.
func LomutoPartitionFunc[T any](seq []T, first, last int, cmp func(a, b T) int, opts ...Option) (int, error) {
	st, err := prepare(seq, first, last, cmp, opts)
	if err != nil || first >= last {
		return first, err
	}
	return lomuto(seq, first, last, cmp, st), nil
}

// HoarePartition partitions seq[first..last] around the pivot value
// seq[first] and returns the boundary p, which holds the pivot:
//   - seq[first..p-1] <= seq[p]
//   - seq[p+1..last]  >= seq[p]
//
// Precondition: seq[last+1] exists (ErrSentinelMissing) and is >= seq[first]
// (ErrSentinelTooSmall). Both are checked before seq is modified. Ranges of
// fewer than two elements need no sentinel; they return first, which for an
// empty range (first > last) is not an element index.
func HoarePartition[T cmp.Ordered](seq []T, first, last int, opts ...Option) (int, error) {
	return HoarePartitionFunc(seq, first, last, cmp.Compare[T], opts...)
}

// HoarePartitionFunc is HoarePartition with an explicit ordering.
func HoarePartitionFunc[T any](seq []T, first, last int, cmp func(a, b T) int, opts ...Option) (int, error) {
	st, err := prepare(seq, first, last, cmp, opts)
	if err != nil || first >= last {
		return first, err
	}

	// the right-moving scan has no bound check of its own
	if last+1 >= len(seq) {
		return first, fmt.Errorf("%w: last=%d, len=%d", ErrSentinelMissing, last, len(seq))
	}
	if cmp(seq[last+1], seq[first]) < 0 {
		return first, fmt.Errorf("%w: seq[%d] < pivot seq[%d]", ErrSentinelTooSmall, last+1, first)
	}
	return hoare(seq, first, last, cmp, st), nil
}

// prepare validates a single-partition call and returns the Stats to count into.
func prepare[T any](seq []T, first, last int, cmp func(a, b T) int, opts []Option) (*core.Stats, error) {
	if err := core.CheckCompare(cmp); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if _, err := core.CheckRange(first, last, len(seq)); err != nil {
		return nil, err
	}
	return o.Stats, nil
}

// lomuto is the single-scan scheme.
func lomuto[T any](seq []T, first, last int, cmp func(a, b T) int, st *core.Stats) int {
	pivot := seq[first]
	pivotPoint := first

	for i := first + 1; i <= last; i++ {
		if core.Less(cmp, seq[i], pivot, st) {
			pivotPoint++
			core.SwapCounted(seq, pivotPoint, i, st)
		}
	}

	// move pivot value into its final place
	core.SwapCounted(seq, first, pivotPoint, st)
	return pivotPoint
}

// hoare is the two-cursor scheme. The lower cursor may reach last+1 and
// stops there on the sentinel; the upper cursor stops on the pivot at first
// at the latest. Comparisons are strict on both sides so runs of values
// equal to the pivot are split instead of skipped.
func hoare[T any](seq []T, first, last int, cmp func(a, b T) int, st *core.Stats) int {
	pivot := seq[first]
	lower, upper := first, last+1

	for {
		upper--
		for core.Greater(cmp, seq[upper], pivot, st) {
			upper--
		}
		lower++
		for core.Less(cmp, seq[lower], pivot, st) {
			lower++
		}
		core.SwapCounted(seq, upper, lower, st)
		if lower >= upper {
			break
		}
	}

	// undo the extra exchange made once the cursors crossed
	core.SwapCounted(seq, upper, lower, st)

	// move pivot value into its final place
	core.SwapCounted(seq, first, upper, st)
	return upper
}
