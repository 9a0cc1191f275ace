// Package fixtures builds the input shapes the lvsort tests and benchmarks
// run against: sorted, reverse-sorted, random, duplicate-heavy and keyed
// sequences, plus helpers for checking results.
package fixtures

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/samber/lo"
)

// Keyed is an element whose identity survives sorting. Only Key takes part
// in comparisons; Tag tells equal keys apart when checking tie-breaks.
type Keyed struct {
	Key int
	Tag string
}

// CompareKeyed orders Keyed values by Key only.
func CompareKeyed(a, b Keyed) int {
	switch {
	case a.Key < b.Key:
		return -1
	case a.Key > b.Key:
		return 1
	default:
		return 0
	}
}

// Sorted returns 0, 1, ..., n-1.
func Sorted(n int) []int {
	return lo.Range(n)
}

// Reversed returns n, n-1, ..., 1.
func Reversed(n int) []int {
	return lo.Map(lo.Range(n), func(x, _ int) int {
		return n - x
	})
}

// Random returns n values in [0, 10n) drawn from a source seeded with seed.
func Random(n int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	limit := 10*n + 1
	return lo.Times(n, func(_ int) int {
		return r.Intn(limit)
	})
}

// Duplicates returns n values drawn from only k distinct keys.
func Duplicates(n, k int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	return lo.Times(n, func(_ int) int {
		return r.Intn(k)
	})
}

// Constant returns n copies of v.
func Constant(n, v int) []int {
	return lo.Times(n, func(_ int) int {
		return v
	})
}

// WithSentinel returns a copy of seq with math.MaxInt appended, giving the
// Hoare scheme the extra slot it reads past the working range.
func WithSentinel(seq []int) []int {
	out := make([]int, len(seq), len(seq)+1)
	copy(out, seq)
	return append(out, math.MaxInt)
}

// Tagged turns keys into Keyed values tagged by their original position
// ("k0", "k1", ...).
func Tagged(keys ...int) []Keyed {
	return lo.Map(keys, func(k, i int) Keyed {
		return Keyed{Key: k, Tag: tagFor(i)}
	})
}

// Tags projects the Tag of every element.
func Tags(seq []Keyed) []string {
	return lo.Map(seq, func(e Keyed, _ int) string {
		return e.Tag
	})
}

// SameMultiset reports whether a and b hold the same values with the same
// multiplicities.
func SameMultiset[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	ca, cb := lo.CountValues(a), lo.CountValues(b)
	for v, n := range ca {
		if cb[v] != n {
			return false
		}
	}
	return true
}

// Ascending reports whether seq is non-decreasing.
func Ascending(seq []int) bool {
	return lo.IsSortedByKey(seq, func(v int) int { return v })
}

// KeysAscending reports whether Keyed values are non-decreasing by Key.
func KeysAscending(seq []Keyed) bool {
	return lo.IsSortedByKey(seq, func(e Keyed) int { return e.Key })
}

// Clone returns an independent copy of seq.
func Clone[T any](seq []T) []T {
	out := make([]T, len(seq))
	copy(out, seq)
	return out
}

func tagFor(i int) string {
	return "k" + strconv.Itoa(i)
}
