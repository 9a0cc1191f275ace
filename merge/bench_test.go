package merge_test

import (
	"testing"

	"github.com/katalvlaran/lvsort/internal/fixtures"
	"github.com/katalvlaran/lvsort/merge"
)

func benchmarkSort(b *testing.B, ref []int) {
	data := make([]int, len(ref))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		if err := merge.Sort(data, 0, len(data)-1); err != nil {
			b.Fatalf("Sort failed: %v", err)
		}
	}
}

// BenchmarkSort_Random10000 measures a random input.
func BenchmarkSort_Random10000(b *testing.B) { benchmarkSort(b, fixtures.Random(10000, 1)) }

// BenchmarkSort_Sorted10000 shows merge sort does the same work on sorted input.
func BenchmarkSort_Sorted10000(b *testing.B) { benchmarkSort(b, fixtures.Sorted(10000)) }

// BenchmarkSort_Reversed10000 measures a reverse-sorted input.
func BenchmarkSort_Reversed10000(b *testing.B) { benchmarkSort(b, fixtures.Reversed(10000)) }
