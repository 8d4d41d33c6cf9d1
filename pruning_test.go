package seedling

import (
	"math/rand"
	"testing"

	"github.com/pbanos/seedling/dataset"
	"github.com/pbanos/seedling/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoLevelTree returns the tree
// a -> a0: b -> b0: p, b1: n; a1: n
// with fallback n on a and p on b.
func twoLevelTree(t *testing.T) *tree.Tree {
	tr, err := New(binaryCatalog(t)).Grow([]dataset.Record{
		rec(0, 0, 0),
		rec(1, 0, 1),
		rec(1, 1, 0),
		rec(1, 1, 1),
		rec(1, 1, 1),
	})
	require.NoError(t, err)
	require.Len(t, tr.Nodes, 5)
	return tr
}

func TestPruneCollapsesWhenAccuracyDoesNotChange(t *testing.T) {
	tr, err := New(binaryCatalog(t)).Grow(separable())
	require.NoError(t, err)

	collapsed, err := Prune(tr, []dataset.Record{rec(0, 0, 1)})
	require.NoError(t, err)
	assert.Equal(t, 1, collapsed)
	assert.True(t, tr.Nodes[0].Stub())
	assert.Equal(t, 1, tr.LiveNodes())
	assert.Equal(t, 2, tr.PrunedNodes())
	assert.Len(t, tr.Nodes, 3)
}

func TestPruneKeepsBranchesThatHelp(t *testing.T) {
	tr, err := New(binaryCatalog(t)).Grow(separable())
	require.NoError(t, err)

	collapsed, err := Prune(tr, []dataset.Record{rec(1, 1, 0)})
	require.NoError(t, err)
	assert.Equal(t, 0, collapsed)
	assert.Equal(t, 3, tr.LiveNodes())
}

func TestPruneCollapsesBestCandidate(t *testing.T) {
	tr := twoLevelTree(t)
	logger := &recordingLogger{}
	validation := []dataset.Record{
		rec(0, 0, 0),
		rec(0, 0, 1),
		rec(1, 1, 0),
	}
	collapsed, err := New(binaryCatalog(t), WithLogger(logger)).Prune(tr, validation)
	require.NoError(t, err)
	assert.Equal(t, 1, collapsed)
	assert.False(t, tr.Nodes[0].Stub())
	assert.True(t, tr.Nodes[2].Stub())
	assert.Equal(t, 3, tr.LiveNodes())
	assert.Equal(t, 2, tr.PrunedNodes())
	assert.Equal(t, 2, tr.MaxDepth())
	accuracy, err := tr.Test(validation)
	require.NoError(t, err)
	assert.Equal(t, 1.0, accuracy)
	assert.True(t, logger.contains("pruned node 2"), "%v", logger.lines)
}

func TestPruneCollapsesRootWhenBest(t *testing.T) {
	tr := twoLevelTree(t)
	collapsed, err := Prune(tr, []dataset.Record{rec(1, 0, 0), rec(1, 1, 0)})
	require.NoError(t, err)
	assert.Equal(t, 1, collapsed)
	assert.Equal(t, 1, tr.LiveNodes())
	assert.Equal(t, 4, tr.PrunedNodes())
}

func TestPruneTiesCollapseEarliestCandidate(t *testing.T) {
	tr := twoLevelTree(t)
	logger := &recordingLogger{}
	// collapsing either the root or b keeps the accuracy at 1
	collapsed, err := New(binaryCatalog(t), WithLogger(logger)).Prune(tr, []dataset.Record{rec(1, 1, 0)})
	require.NoError(t, err)
	assert.Equal(t, 1, collapsed)
	assert.True(t, tr.Nodes[0].Stub())
	assert.Equal(t, 1, tr.LiveNodes())
	assert.True(t, logger.contains("pruned node 0"), "%v", logger.lines)
}

func TestPruneMetricsAreMonotonic(t *testing.T) {
	c := randomCatalog(t)
	rnd := rand.New(rand.NewSource(7))
	tr, err := New(c).Grow(randomRecords(rnd, 120))
	require.NoError(t, err)
	live, pruned := tr.LiveNodes(), tr.PrunedNodes()
	for round := 0; round < 5; round++ {
		_, err = Prune(tr, randomRecords(rnd, 20))
		require.NoError(t, err)
		assert.LessOrEqual(t, tr.LiveNodes(), live)
		assert.GreaterOrEqual(t, tr.PrunedNodes(), pruned)
		assert.Equal(t, len(tr.Nodes), tr.LiveNodes()+tr.PrunedNodes())
		live, pruned = tr.LiveNodes(), tr.PrunedNodes()
	}
}

func TestPruneErrors(t *testing.T) {
	tr := twoLevelTree(t)
	_, err := Prune(tr, nil)
	assert.ErrorIs(t, err, tree.ErrEmptyEvaluationSet)

	_, err = Prune(tree.New(), []dataset.Record{rec(0, 0, 0)})
	assert.ErrorIs(t, err, tree.ErrEmptyTree)
}
