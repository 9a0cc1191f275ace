package quick

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/lvsort/core"
)

// span is one pending range on the worklist.
type span struct {
	first, last int
	depth       int // logical recursion depth, top-level range = 1
}

// sorter encapsulates the mutable state of one Sort call.
type sorter[T any] struct {
	seq   []T
	cmp   func(a, b T) int
	part  partitionFunc[T]
	opts  Options
	stack []span
}

// Sort sorts seq[first..last] ascending in place.
//
// first >= last is a no-op. A non-empty range outside seq returns a
// *core.RangeError. With WithScheme(Hoare), seq[last+1] must exist and be
// >= every element of the range; otherwise ErrSentinelMissing or
// ErrSentinelTooSmall is returned and seq is untouched.
func Sort[T cmp.Ordered](seq []T, first, last int, opts ...Option) error {
	return SortFunc(seq, first, last, cmp.Compare[T], opts...)
}

// SortFunc sorts seq[first..last] in place by the ordering cmp.
func SortFunc[T any](seq []T, first, last int, cmp func(a, b T) int, opts ...Option) error {
	if err := core.CheckCompare(cmp); err != nil {
		return err
	}

	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}

	// Validate range; empty and single-element ranges are already sorted
	if _, err := core.CheckRange(first, last, len(seq)); err != nil {
		return err
	}
	if first >= last {
		return nil
	}

	// The Hoare scan reads seq[last+1] in every right-hand sub-range
	if o.Scheme == Hoare {
		if err := checkSentinel(seq, first, last, cmp); err != nil {
			return err
		}
	}

	s := &sorter[T]{
		seq:   seq,
		cmp:   cmp,
		part:  partitionerFor[T](o.Scheme),
		opts:  o,
		stack: make([]span, 0, 16),
	}
	s.run(first, last)
	return nil
}

// checkSentinel verifies seq[last+1] bounds every element of the range, so
// every sub-range sharing that slot keeps a valid sentinel.
func checkSentinel[T any](seq []T, first, last int, cmp func(a, b T) int) error {
	if last+1 >= len(seq) {
		return fmt.Errorf("%w: last=%d, len=%d", ErrSentinelMissing, last, len(seq))
	}
	sentinel := seq[last+1]
	for i := first; i <= last; i++ {
		if cmp(seq[i], sentinel) > 0 {
			return fmt.Errorf("%w: seq[%d] > seq[%d]", ErrSentinelTooSmall, i, last+1)
		}
	}
	return nil
}

// run drains the worklist. Each partitioned range pushes its two sides;
// the larger one goes below the smaller one so it is handled last.
func (s *sorter[T]) run(first, last int) {
	st := s.opts.Stats
	s.push(span{first: first, last: last, depth: 1})

	for len(s.stack) > 0 {
		r := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]

		// Optionally replace the first-element pivot with a random one
		if s.opts.Rand != nil {
			k := r.first + s.opts.Rand.Intn(r.last-r.first+1)
			core.SwapCounted(s.seq, r.first, k, st)
		}
		p := s.part(s.seq, r.first, r.last, s.cmp, st)
		st.CountPartition(r.depth)
		s.opts.OnPartition(r.first, r.last, p, r.depth)

		// Queue both sides; the pivot at p is final
		left := span{first: r.first, last: p - 1, depth: r.depth + 1}
		right := span{first: p + 1, last: r.last, depth: r.depth + 1}
		if left.last-left.first > right.last-right.first {
			s.push(left)
			s.push(right)
		} else {
			s.push(right)
			s.push(left)
		}
	}
}

// push queues r unless it has fewer than two elements.
func (s *sorter[T]) push(r span) {
	if r.first < r.last {
		s.stack = append(s.stack, r)
	}
}
