package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for bounds and comparator validation.
var (
	// ErrCountOutOfRange indicates a prefix length outside [0, len(seq)].
	ErrCountOutOfRange = errors.New("core: count out of range")

	// ErrIndexOutOfRange indicates a range endpoint outside the slice.
	ErrIndexOutOfRange = errors.New("core: index out of range")

	// ErrNilCompare indicates a nil comparison function.
	ErrNilCompare = errors.New("core: compare function is nil")
)

// RangeError describes an inclusive range that does not fit a slice.
// It unwraps to ErrIndexOutOfRange.
type RangeError struct {
	First, Last int
	Len         int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("core: range [%d, %d] out of bounds for length %d", e.First, e.Last, e.Len)
}

// Unwrap lets errors.Is match ErrIndexOutOfRange.
func (e *RangeError) Unwrap() error { return ErrIndexOutOfRange }

// Stats collects operation counts for a single sort call.
//
// Fields:
//   - Comparisons — calls to the ordering (one per "<" or ">" evaluated).
//   - Swaps       — element exchanges performed through Swap, self-swaps included.
//   - Moves       — element writes that are not swaps: insertion shifts and
//     merge buffer writes.
//   - Passes      — bubble passes or insertion steps executed.
//   - Merges      — MergeCombine invocations.
//   - Partitions  — partition invocations inside QuickSort or selection.
//   - MaxDepth    — deepest logical recursion level at which a partition ran;
//     the top-level range is depth 1.
//
// All methods are safe on a nil *Stats and do nothing, so algorithms can call
// them unconditionally. Stats is not safe for concurrent use.
type Stats struct {
	Comparisons int
	Swaps       int
	Moves       int
	Passes      int
	Merges      int
	Partitions  int
	MaxDepth    int
}

// CountCompare records one comparison.
func (s *Stats) CountCompare() {
	if s != nil {
		s.Comparisons++
	}
}

// CountSwap records one swap.
func (s *Stats) CountSwap() {
	if s != nil {
		s.Swaps++
	}
}

// CountMove records one non-swap element write.
func (s *Stats) CountMove() {
	if s != nil {
		s.Moves++
	}
}

// CountPass records one outer-loop pass.
func (s *Stats) CountPass() {
	if s != nil {
		s.Passes++
	}
}

// CountMerge records one merge step.
func (s *Stats) CountMerge() {
	if s != nil {
		s.Merges++
	}
}

// CountPartition records one partition performed at the given depth.
func (s *Stats) CountPartition(depth int) {
	if s == nil {
		return
	}
	s.Partitions++
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
}

// Reset zeroes every counter.
func (s *Stats) Reset() {
	if s != nil {
		*s = Stats{}
	}
}

// Less reports cmp(a, b) < 0 and counts the comparison.
func Less[T any](cmp func(a, b T) int, a, b T, st *Stats) bool {
	st.CountCompare()
	return cmp(a, b) < 0
}

// Greater reports cmp(a, b) > 0 and counts the comparison.
func Greater[T any](cmp func(a, b T) int, a, b T, st *Stats) bool {
	st.CountCompare()
	return cmp(a, b) > 0
}
