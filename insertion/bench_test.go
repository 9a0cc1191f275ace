package insertion_test

import (
	"testing"

	"github.com/katalvlaran/lvsort/insertion"
	"github.com/katalvlaran/lvsort/internal/fixtures"
)

func benchmarkSort(b *testing.B, ref []int) {
	data := make([]int, len(ref))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		if err := insertion.Sort(data, len(data)); err != nil {
			b.Fatalf("Sort failed: %v", err)
		}
	}
}

// BenchmarkSort_Random1000 measures the average case.
func BenchmarkSort_Random1000(b *testing.B) { benchmarkSort(b, fixtures.Random(1000, 1)) }

// BenchmarkSort_Sorted1000 measures the linear best case.
func BenchmarkSort_Sorted1000(b *testing.B) { benchmarkSort(b, fixtures.Sorted(1000)) }

// BenchmarkSort_Duplicates1000 measures a low-cardinality input.
func BenchmarkSort_Duplicates1000(b *testing.B) { benchmarkSort(b, fixtures.Duplicates(1000, 8, 1)) }
