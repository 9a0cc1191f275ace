// Package selection finds the k-th largest element of a slice.
//
// Two strategies are offered:
//
//	KthLargest      — k passes; pass i finds the largest value of the
//	                  unsorted prefix seq[0:n-i] and swaps it to the end of
//	                  that prefix. Cheap for small k: O(k·n) time, O(1) memory.
//	                  On return seq[n-k:n] holds the k largest values in
//	                  ascending order.
//
//	KthLargestQuick — quickselect over quick.LomutoPartition steps; only the side
//	                  holding the target index is kept. O(n) average,
//	                  O(n²) worst time (first-element pivots), O(1) memory.
//	                  On return the target sits at index len(seq)-k with
//	                  smaller-or-equal values before it and greater-or-equal
//	                  values after it.
//
// k is 1-based: k = 1 is the maximum.
package selection
