package dataset

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(n int) []Record {
	result := make([]Record, n)
	for i := range result {
		result[i] = Record{Class: i % 2, Features: []int{i}}
	}
	return result
}

func TestEntropy(t *testing.T) {
	assert.Equal(t, 0.0, Entropy(nil))
	assert.Equal(t, 0.0, Entropy([]int{0, 0}))
	assert.Equal(t, 0.0, Entropy([]int{0, 7, 0}))
	assert.InDelta(t, 1.0, Entropy([]int{3, 3}), 1e-12)
	assert.InDelta(t, 2.0, Entropy([]int{1, 1, 1, 1}), 1e-12)
	expected := -(0.25*math.Log2(0.25) + 0.75*math.Log2(0.75))
	assert.InDelta(t, expected, Entropy([]int{1, 3}), 1e-12)
}

func TestMajorityBreaksTiesWithLowestClass(t *testing.T) {
	assert.Equal(t, 0, Majority([]int{2, 2, 1}))
	assert.Equal(t, 1, Majority([]int{1, 3, 3}))
	assert.Equal(t, 2, Majority([]int{0, 0, 1}))
}

func TestDistributionAndGroupBy(t *testing.T) {
	rs := References([]Record{
		{Class: 0, Features: []int{1}},
		{Class: 1, Features: []int{0}},
		{Class: 1, Features: []int{1}},
	})
	assert.Equal(t, []int{1, 2}, Distribution(rs, 2))

	groups := GroupBy(rs, 0, 3)
	require.Len(t, groups, 3)
	assert.Equal(t, []*Record{rs[1]}, groups[0])
	assert.Equal(t, []*Record{rs[0], rs[2]}, groups[1])
	assert.Empty(t, groups[2])
}

func TestSplit(t *testing.T) {
	rs := records(10)
	a, b := Split(rs, 7)
	assert.Len(t, a, 7)
	assert.Len(t, b, 3)
	assert.Equal(t, rs[7], b[0])

	a, b = Split(rs, 20)
	assert.Len(t, a, 10)
	assert.Empty(t, b)
	a, b = Split(rs, -1)
	assert.Empty(t, a)
	assert.Len(t, b, 10)
}

func TestFoldsPartitionRecords(t *testing.T) {
	for _, tc := range []struct {
		n, k, folds int
	}{
		{10, 3, 3},
		{10, 5, 5},
		{10, 4, 4},
		{10, 6, 5},
		{7, 7, 7},
		{3, 10, 3},
	} {
		rs := records(tc.n)
		folds := Folds(rs, tc.k)
		require.Len(t, folds, tc.folds, "n=%d k=%d", tc.n, tc.k)
		seen := make(map[int]int)
		for _, f := range folds {
			assert.Len(t, f.Training, tc.n-len(f.Testing))
			for _, r := range f.Testing {
				seen[r.Features[0]]++
			}
			for i := 1; i < len(f.Training); i++ {
				assert.Less(t, f.Training[i-1].Features[0], f.Training[i].Features[0], "training keeps relative order")
			}
		}
		assert.Len(t, seen, tc.n)
		for id, count := range seen {
			assert.Equal(t, 1, count, "record %d appears once", id)
		}
	}
	assert.Nil(t, Folds(records(4), 0))
}

func TestFoldSizeIsCeiling(t *testing.T) {
	folds := Folds(records(10), 4)
	var sizes []int
	for _, f := range folds {
		sizes = append(sizes, len(f.Testing))
	}
	assert.Equal(t, []int{3, 3, 3, 1}, sizes)
}

func TestShuffleIsAPermutation(t *testing.T) {
	rs := records(50)
	Shuffle(rs, rand.New(rand.NewSource(42)))
	seen := make(map[int]bool)
	for _, r := range rs {
		seen[r.Features[0]] = true
	}
	assert.Len(t, seen, 50)
}
