// Package insertion implements insertion sort over a prefix of a slice.
//
// The first element of any list is a sorted list of one. Each step takes the
// next element as a candidate, shifts every larger element of the sorted
// prefix one slot to the right and drops the candidate into the gap, so the
// sorted prefix grows by one per step.
//
// Invariant: once index i has been processed, seq[0..i] is sorted ascending.
// Only strictly larger elements are shifted, so the sort is stable.
//
// Complexity: O(n²) worst and average time, O(n) on sorted input (no shifts),
// O(1) extra memory.
package insertion
