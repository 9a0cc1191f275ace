// Package core holds the primitives every lvsort algorithm is built on.
//
// What lives here:
//
//   - Swap        — exchange two positions of a slice (the ElementSwap step).
//   - CheckCount  — validate a prefix length n against len(seq).
//   - CheckRange  — validate an inclusive [first, last] range; first > last is
//     an empty range and is reported as such, never as an error.
//   - Stats       — optional counters (comparisons, swaps, moves, passes,
//     merges, partitions, maximum partition depth) filled in by the algorithms.
//   - Sentinel errors shared by all packages.
//
// Nothing in core keeps state between calls. A Stats value belongs to the
// caller; passing nil everywhere it is accepted disables counting.
//
// Errors:
//
//	ErrCountOutOfRange - n < 0 or n > len(seq).
//	ErrIndexOutOfRange - first < 0 or last >= len(seq) on a non-empty range.
//	ErrNilCompare      - a nil comparator was passed to a ...Func variant.
package core
