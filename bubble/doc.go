// Package bubble implements bubble sort over a prefix of a slice.
//
// 🚀 How it works:
//
//	Each pass walks the active prefix [0, bound) and swaps every adjacent pair
//	that is out of order. The largest remaining element is carried to the end
//	of the prefix, so bound shrinks by one after every pass. A pass that swaps
//	nothing proves the prefix sorted and ends the sort.
//
// Guarantees:
//   - after pass k the k largest elements sit in the last k positions, in
//     final order;
//   - equal neighbours are never swapped, so the sort is stable;
//   - n = 0 and n = 1 run no passes; sorted input runs exactly one pass with
//     zero swaps.
//
// ⚙️ Usage:
//
//	var st core.Stats
//	err := bubble.Sort(list, len(list), bubble.WithStats(&st))
//
// Complexity:
//
//   - Time:   O(n²) worst and average, O(n) on sorted input
//   - Memory: O(1)
package bubble
