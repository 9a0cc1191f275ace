// Package lvsort is a small library of classic in-memory comparison sorts
// that work in place on a caller-owned slice.
//
// 🚀 What is inside?
//
//	• bubble/    — bubble sort over seq[0:n] with early exit on a clean pass
//	• insertion/ — insertion sort over seq[0:n], stable, linear on sorted input
//	• merge/     — top-down merge sort over [first, last] and its merge step
//	• quick/     — quicksort over [first, last] with Lomuto or Hoare partitions
//	• selection/ — k-th largest by repeated passes or by quickselect
//	• core/      — Swap, bounds checks, Stats counters, shared errors
//
// ✨ Conventions shared by every package:
//
//   - Ordered element types use Sort; anything else uses SortFunc with a
//     comparator returning <0, 0 or >0, the way slices.Sort and
//     slices.SortFunc pair up.
//   - Ranges are inclusive: [first, last]. first > last is an empty range and
//     a no-op, never an error.
//   - Invalid input (bad n, out-of-range indices, missing Hoare sentinel) is
//     reported as an error before the slice is modified.
//   - Optional instrumentation through functional options: WithStats(&st)
//     and per-algorithm hooks (OnPass, OnInsert, OnMerge, OnPartition).
//   - No goroutines, no locks, no global state. A slice must not be sorted
//     by two calls at once.
//
// Stability at a glance:
//
//	bubble    stable
//	insertion stable
//	merge     NOT stable: equal heads are taken from the right run first
//	quick     not stable
//
// Quick ASCII example:
//
//	quick.Sort([5 3 8 1], 0, 3)
//	  pivot 5 → [1 3 | 5 | 8]
//	  pivot 1 → [1 | 3]
//	  → [1 3 5 8]
//
//	go get github.com/katalvlaran/lvsort
package lvsort
