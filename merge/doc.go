// Package merge implements top-down merge sort and its merge step.
//
// 🚀 How it works:
//
//	Sort splits [first, last] at middle = (first+last)/2, sorts [first, middle]
//	and [middle+1, last] recursively, and merges the two sorted halves. A
//	range of one element is sorted already and ends the recursion.
//
//	Merge compares the heads of two adjacent sorted runs, appends the smaller
//	one to an auxiliary buffer, appends the rest of whichever run is left over
//	and copies the buffer back over both runs.
//
// ⚠️ Tie-break:
//
//	When the two heads compare equal the head of the RIGHT run is taken
//	first. Equal elements coming from the left half can therefore end up
//	after equal elements from the right half: this merge, and so this merge
//	sort, is NOT stable. The behaviour is kept on purpose and pinned by tests.
//
// Complexity:
//
//   - Time:   O(n log n) comparisons and moves on every input
//   - Memory: O(n) auxiliary buffer; recursion depth O(log n)
//
// Merge allocates a buffer per call. Sort allocates one buffer sized to the
// whole range and reuses it for every merge; results are identical.
package merge
