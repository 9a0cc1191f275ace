// Package quick implements quicksort with two interchangeable partition
// schemes, both pivoting on the first element of the range.
//
// 🚀 Schemes:
//
//	Lomuto — one forward scan. Every element strictly smaller than the pivot
//	         is swapped into a growing left block; the pivot is then swapped to
//	         the end of that block. Left of the returned index: < pivot.
//	         Right of it: >= pivot.
//
//	Hoare  — two cursors scan inward from both ends, stop on elements that
//	         sit on the wrong side and swap them. The scan that moves right
//	         relies on a SENTINEL: seq[last+1] must exist and be >= the pivot,
//	         otherwise nothing stops it at the end of the range. Left of the
//	         returned index: <= pivot. Right of it: >= pivot.
//
// Sentinel contract:
//
//	HoarePartition and Sort(..., WithScheme(Hoare)) check the sentinel before
//	touching the slice and fail with ErrSentinelMissing or ErrSentinelTooSmall.
//	HoarePartition needs seq[last+1] >= seq[first]; Sort needs seq[last+1]
//	>= every element of [first, last], because every sub-range to the right
//	reuses the same slot. The slot is read and may be swapped during a scan, but it holds its
//	original value again when the call returns.
//
// Single partitions:
//
//	LomutoPartition, HoarePartition and Partition(..., scheme) run one
//	partition step on their own and accept WithStats. The Scheme constants
//	Lomuto and Hoare name the same two strategies for Sort.
//
// Pivot choice:
//
//	The pivot is always seq[first]. Sorted and reverse-sorted inputs therefore
//	split off one element per partition: O(n²) time and recursion depth n-1.
//	WithRandomPivot swaps a random element of the range into first before
//	each partition; it is off by default.
//
// Recursion:
//
//	Sort keeps pending ranges on an explicit stack instead of the call stack
//	and always handles the smaller side first, so the stack holds O(log n)
//	ranges even when the logical recursion depth reaches n-1. The logical
//	depth is still tracked and reported through core.Stats.MaxDepth.
//
// Complexity:
//
//   - Time:   O(n log n) average, O(n²) worst
//   - Memory: O(log n) pending ranges
package quick
