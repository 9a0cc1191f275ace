package quick_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsort/internal/fixtures"
	"github.com/katalvlaran/lvsort/quick"
)

// benchmarkSort sorts a fresh copy of ref (plus sentinel) each iteration.
func benchmarkSort(b *testing.B, ref []int, opts ...quick.Option) {
	src := fixtures.WithSentinel(ref)
	data := make([]int, len(src))
	last := len(ref) - 1
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, src)
		if err := quick.Sort(data, 0, last, opts...); err != nil {
			b.Fatalf("Sort failed: %v", err)
		}
	}
}

// BenchmarkSort_LomutoRandom10000 measures Lomuto on random input.
func BenchmarkSort_LomutoRandom10000(b *testing.B) {
	benchmarkSort(b, fixtures.Random(10000, 1))
}

// BenchmarkSort_HoareRandom10000 measures Hoare on the same input.
func BenchmarkSort_HoareRandom10000(b *testing.B) {
	benchmarkSort(b, fixtures.Random(10000, 1), quick.WithScheme(quick.Hoare))
}

// BenchmarkSort_LomutoDuplicates10000 shows Lomuto degrading on few keys.
func BenchmarkSort_LomutoDuplicates10000(b *testing.B) {
	benchmarkSort(b, fixtures.Duplicates(10000, 4, 1))
}

// BenchmarkSort_HoareDuplicates10000 shows Hoare splitting equal runs.
func BenchmarkSort_HoareDuplicates10000(b *testing.B) {
	benchmarkSort(b, fixtures.Duplicates(10000, 4, 1), quick.WithScheme(quick.Hoare))
}

// BenchmarkSort_Sorted2000 is the first-element-pivot worst case.
func BenchmarkSort_Sorted2000(b *testing.B) {
	benchmarkSort(b, fixtures.Sorted(2000))
}

// BenchmarkSort_SortedRandomPivot2000 is the same input with random pivots.
func BenchmarkSort_SortedRandomPivot2000(b *testing.B) {
	benchmarkSort(b, fixtures.Sorted(2000), quick.WithRandomPivot(rand.New(rand.NewSource(1))))
}
