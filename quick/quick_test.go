package quick_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvsort/core"
	"github.com/katalvlaran/lvsort/internal/fixtures"
	"github.com/katalvlaran/lvsort/quick"
)

// SchemeSuite runs the same quicksort contract against one partition scheme.
type SchemeSuite struct {
	suite.Suite
	scheme quick.Scheme
}

// prepare copies in and, for Hoare, appends the sentinel slot.
// Returns the working slice and the inclusive last index of the data.
func (s *SchemeSuite) prepare(in []int) ([]int, int) {
	if s.scheme == quick.Hoare {
		return fixtures.WithSentinel(in), len(in) - 1
	}
	return fixtures.Clone(in), len(in) - 1
}

// sort runs quick.Sort over the data part of seq with the suite's scheme.
func (s *SchemeSuite) sort(seq []int, last int, opts ...quick.Option) {
	opts = append([]quick.Option{quick.WithScheme(s.scheme)}, opts...)
	require.NoError(s.T(), quick.Sort(seq, 0, last, opts...))
}

// TestScenarios covers the small fixed inputs.
func (s *SchemeSuite) TestScenarios() {
	tests := []struct {
		in, want []int
	}{
		{[]int{5, 3, 8, 1}, []int{1, 3, 5, 8}},
		{[]int{}, []int{}},
		{[]int{7}, []int{7}},
		{[]int{2, 2, 1}, []int{1, 2, 2}},
		{[]int{15, 4, 10, 8, 6, 9, 16, 1, 7, 3, 11, 14, 2, 5, 12, 13},
			[]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}},
	}
	for _, tc := range tests {
		seq, last := s.prepare(tc.in)
		s.sort(seq, last)
		s.Equal(tc.want, seq[:last+1], "input %v", tc.in)
	}
}

// TestSentinelRestored checks the Hoare sentinel slot keeps its value.
func (s *SchemeSuite) TestSentinelRestored() {
	if s.scheme != quick.Hoare {
		s.T().Skip("sentinel applies to hoare only")
	}
	seq, last := s.prepare(fixtures.Random(100, 9))
	s.sort(seq, last)
	s.Equal(math.MaxInt, seq[last+1])
}

// TestReverseDepth: [5,4,3,2,1] splits off one element per partition.
func (s *SchemeSuite) TestReverseDepth() {
	var st core.Stats
	seq, last := s.prepare([]int{5, 4, 3, 2, 1})
	s.sort(seq, last, quick.WithStats(&st))

	s.Equal([]int{1, 2, 3, 4, 5}, seq[:last+1])
	s.Equal(4, st.MaxDepth)
	s.Equal(4, st.Partitions)
}

// TestSortedDepth: first-element pivots on sorted input reach depth n-1.
func (s *SchemeSuite) TestSortedDepth() {
	var st core.Stats
	var pivots []int
	seq, last := s.prepare(fixtures.Sorted(6))
	s.sort(seq, last, quick.WithStats(&st), quick.WithOnPartition(func(first, _, p, _ int) {
		pivots = append(pivots, p)
		s.Equal(first, p, "pivot of a sorted range stays at first")
	}))

	s.Equal(fixtures.Sorted(6), seq[:last+1])
	s.Equal(5, st.MaxDepth)
	s.Equal(5, st.Partitions)
	s.Equal([]int{0, 1, 2, 3, 4}, pivots)
}

// TestPartitionPostconditions checks every partition performed by Sort.
func (s *SchemeSuite) TestPartitionPostconditions() {
	seq, last := s.prepare(fixtures.Duplicates(300, 9, 4))
	s.sort(seq, last, quick.WithOnPartition(func(first, l, p, _ int) {
		pivot := seq[p]
		for i := first; i < p; i++ {
			if s.scheme == quick.Lomuto {
				s.Less(seq[i], pivot)
			} else {
				s.LessOrEqual(seq[i], pivot)
			}
		}
		for i := p + 1; i <= l; i++ {
			s.GreaterOrEqual(seq[i], pivot)
		}
	}))
	s.True(fixtures.Ascending(seq[:last+1]))
}

// TestProperties runs permutation, sortedness and idempotence checks.
func (s *SchemeSuite) TestProperties() {
	inputs := map[string][]int{
		"random":     fixtures.Random(2000, 31),
		"duplicates": fixtures.Duplicates(2000, 3, 32),
		"sorted":     fixtures.Sorted(300),
		"reversed":   fixtures.Reversed(300),
		"constant":   fixtures.Constant(100, 5),
	}
	for name, in := range inputs {
		seq, last := s.prepare(in)
		s.sort(seq, last)
		s.True(fixtures.Ascending(seq[:last+1]), name)
		s.True(fixtures.SameMultiset(in, seq[:last+1]), name)

		again := fixtures.Clone(seq)
		s.sort(again, last)
		s.Equal(seq, again, name)
	}
}

// TestRandomPivot keeps correctness and shortens sorted-input recursion.
func (s *SchemeSuite) TestRandomPivot() {
	var st core.Stats
	seq, last := s.prepare(fixtures.Sorted(512))
	s.sort(seq, last, quick.WithRandomPivot(rand.New(rand.NewSource(42))), quick.WithStats(&st))
	s.Equal(fixtures.Sorted(512), seq[:last+1])
	s.Less(st.MaxDepth, 511)
}

// TestSubRange sorts only the requested window; seq[4] doubles as the
// Hoare sentinel.
func (s *SchemeSuite) TestSubRange() {
	seq := []int{9, 6, 2, 4, 8, 1}
	require.NoError(s.T(), quick.Sort(seq, 1, 3, quick.WithScheme(s.scheme)))
	s.Equal([]int{9, 2, 4, 6, 8, 1}, seq)
}

func TestLomutoSuite(t *testing.T) {
	suite.Run(t, &SchemeSuite{scheme: quick.Lomuto})
}

func TestHoareSuite(t *testing.T) {
	suite.Run(t, &SchemeSuite{scheme: quick.Hoare})
}
