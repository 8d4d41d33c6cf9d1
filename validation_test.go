package seedling

import (
	"math/rand"
	"testing"

	"github.com/pbanos/seedling/dataset"
	"github.com/pbanos/seedling/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twice(records []dataset.Record) []dataset.Record {
	return append(append([]dataset.Record(nil), records...), records...)
}

func TestCrossValidate(t *testing.T) {
	cv, err := CrossValidate(twice(separable()), binaryCatalog(t), 4, false)
	require.NoError(t, err)
	require.Len(t, cv.Folds, 4)
	for i, f := range cv.Folds {
		assert.Equal(t, 2*i, f.Start)
		assert.Equal(t, 2*i+2, f.End)
		assert.Equal(t, 1.0, f.Accuracy)
		assert.Equal(t, 0, f.Pruned)
	}
	assert.Equal(t, 1.0, cv.Accuracy)
	assert.Equal(t, 3.0, cv.LiveNodes)
	assert.Equal(t, 2.0, cv.Depth)
}

func TestCrossValidateTestsEveryRecordOnce(t *testing.T) {
	records := randomRecords(rand.New(rand.NewSource(3)), 23)
	cv, err := CrossValidate(records, randomCatalog(t), 5, true)
	require.NoError(t, err)
	var next int
	for _, f := range cv.Folds {
		assert.Equal(t, next, f.Start)
		next = f.End
	}
	assert.Equal(t, len(records), next)
	assert.GreaterOrEqual(t, cv.Accuracy, 0.0)
	assert.LessOrEqual(t, cv.Accuracy, 1.0)
}

func TestCrossValidateSkipsEmptyFolds(t *testing.T) {
	records := twice(separable())[:5]
	cv, err := CrossValidate(records, binaryCatalog(t), 4, false)
	require.NoError(t, err)
	require.Len(t, cv.Folds, 3)
	assert.Equal(t, 4, cv.Folds[2].Start)
	assert.Equal(t, 5, cv.Folds[2].End)
}

func TestCrossValidateMeans(t *testing.T) {
	records := []dataset.Record{
		rec(0, 0, 0),
		rec(1, 1, 0),
		rec(0, 0, 1),
		rec(0, 1, 1),
	}
	cv, err := CrossValidate(records, binaryCatalog(t), 2, false)
	require.NoError(t, err)
	require.Len(t, cv.Folds, 2)
	var accuracy, live, depth float64
	for _, f := range cv.Folds {
		accuracy += f.Accuracy
		live += float64(f.LiveNodes)
		depth += float64(f.Depth)
	}
	assert.InDelta(t, accuracy/2, cv.Accuracy, 1e-12)
	assert.InDelta(t, live/2, cv.LiveNodes, 1e-12)
	assert.InDelta(t, depth/2, cv.Depth, 1e-12)
}

func TestCrossValidateInvalidFoldCount(t *testing.T) {
	c := binaryCatalog(t)
	for _, k := range []int{-1, 0, 1, 5} {
		_, err := CrossValidate(separable(), c, k, false)
		assert.ErrorIs(t, err, ErrInvalidFoldCount, "k=%d", k)
	}
}

func TestEvaluateWithPruning(t *testing.T) {
	logger := &recordingLogger{}
	p := New(binaryCatalog(t), WithLogger(logger))
	training := append(twice(separable()), rec(0, 0, 1), rec(0, 1, 0))
	e, err := p.Evaluate(training, separable(), true)
	require.NoError(t, err)
	// the first 7 records grow the tree and the last 3 prune it
	assert.Equal(t, 1, e.Pruned)
	assert.Equal(t, 1, e.LiveNodes)
	assert.Equal(t, 0.5, e.Accuracy)

	e, err = p.Evaluate(separable()[:1], separable(), true)
	require.NoError(t, err)
	assert.Equal(t, 0, e.Pruned)
	assert.True(t, logger.contains("not pruning"))
}

func TestHoldout(t *testing.T) {
	c := binaryCatalog(t)
	e, err := Holdout(twice(separable()), c, 50, false)
	require.NoError(t, err)
	assert.Equal(t, 1.0, e.Accuracy)
	assert.Equal(t, 3, e.LiveNodes)
	assert.Equal(t, 2, e.Depth)

	_, err = Holdout(separable(), c, 0, false)
	assert.ErrorIs(t, err, ErrEmptyTrainingSet)
	_, err = Holdout(separable(), c, 100, false)
	assert.ErrorIs(t, err, tree.ErrEmptyEvaluationSet)
}
