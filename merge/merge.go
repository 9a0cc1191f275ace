package merge

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/lvsort/core"
)

// merger carries the state shared by one Sort or Merge call.
type merger[T any] struct {
	seq  []T
	buf  []T // scratch space; buf[0] lines up with the start of each merge
	cmp  func(a, b T) int
	opts Options
}

// Sort sorts seq[first..last] ascending in place.
// first > last is an empty range and a no-op. Returns a *core.RangeError for
// a non-empty range outside seq.
func Sort[T cmp.Ordered](seq []T, first, last int, opts ...Option) error {
	return SortFunc(seq, first, last, cmp.Compare[T], opts...)
}

// SortFunc sorts seq[first..last] in place by the ordering cmp.
func SortFunc[T any](seq []T, first, last int, cmp func(a, b T) int, opts ...Option) error {
	if err := core.CheckCompare(cmp); err != nil {
		return err
	}
	empty, err := core.CheckRange(first, last, len(seq))
	if err != nil || empty {
		return err
	}

	m := newMerger(seq, cmp, last-first+1, opts)
	m.sort(first, last)
	return nil
}

// Merge merges the sorted adjacent runs seq[start1..end1] and
// seq[start2..end2] into one sorted run in place. Either run may be empty.
//
// Preconditions: end1+1 == start2 (ErrNotAdjacent), both runs inside seq
// (core.ErrIndexOutOfRange) and each run sorted ascending. Sortedness is the
// caller's contract and is not checked.
//
// On equal heads the element of the second run is taken first.
func Merge[T cmp.Ordered](seq []T, start1, end1, start2, end2 int, opts ...Option) error {
	return MergeFunc(seq, start1, end1, start2, end2, cmp.Compare[T], opts...)
}

// MergeFunc is Merge with an explicit ordering.
func MergeFunc[T any](seq []T, start1, end1, start2, end2 int, cmp func(a, b T) int, opts ...Option) error {
	if err := core.CheckCompare(cmp); err != nil {
		return err
	}
	if start1 > end1+1 || start2 > end2+1 {
		return fmt.Errorf("%w: [%d, %d] and [%d, %d]", ErrInvertedRun, start1, end1, start2, end2)
	}
	if end1+1 != start2 {
		return fmt.Errorf("%w: end1=%d, start2=%d", ErrNotAdjacent, end1, start2)
	}
	empty, err := core.CheckRange(start1, end2, len(seq))
	if err != nil || empty {
		return err
	}

	m := newMerger(seq, cmp, end2-start1+1, opts)
	m.merge(start1, end1, start2, end2)
	return nil
}

func newMerger[T any](seq []T, cmp func(a, b T) int, size int, opts []Option) *merger[T] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &merger[T]{
		seq:  seq,
		buf:  make([]T, size),
		cmp:  cmp,
		opts: o,
	}
}

// sort is the recursive split; depth is O(log n).
func (m *merger[T]) sort(first, last int) {
	if first >= last {
		return
	}
	middle := first + (last-first)/2 // same as (first+last)/2 without overflow
	m.sort(first, middle)
	m.sort(middle+1, last)
	m.merge(first, middle, middle+1, last)
}

// merge combines seq[start1..end1] and seq[start2..end2] through m.buf.
func (m *merger[T]) merge(start1, end1, start2, end2 int) {
	st := m.opts.Stats
	st.CountMerge()

	finalStart, finalEnd := start1, end2
	out := m.buf[:finalEnd-finalStart+1]
	k := 0
	for start1 <= end1 && start2 <= end2 {
		// strict less: ties go to the right run
		if core.Less(m.cmp, m.seq[start1], m.seq[start2], st) {
			out[k] = m.seq[start1]
			start1++
		} else {
			out[k] = m.seq[start2]
			start2++
		}
		st.CountMove()
		k++
	}

	// move the part of the run that is left over
	for ; start1 <= end1; start1++ {
		out[k] = m.seq[start1]
		st.CountMove()
		k++
	}
	for ; start2 <= end2; start2++ {
		out[k] = m.seq[start2]
		st.CountMove()
		k++
	}

	copy(m.seq[finalStart:finalEnd+1], out)
	m.opts.OnMerge(finalStart, end1, end1+1, finalEnd)
}
