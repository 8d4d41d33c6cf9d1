package seedling

import (
	"github.com/pbanos/seedling/dataset"
	"github.com/pbanos/seedling/feature"
	"github.com/pbanos/seedling/tree"
)

// Evaluation holds a tree grown from a training set
// and its measures against a testing set.
type Evaluation struct {
	Tree *tree.Tree
	// Fraction of the testing records whose class
	// the tree predicts correctly
	Accuracy float64
	// Number of nodes reachable from the root
	LiveNodes int
	// Number of nodes in the longest path from the root
	Depth int
	// Number of branches collapsed by pruning
	Pruned int
}

// FoldResult holds the evaluation of the tree grown for a fold,
// tested against the records in the [Start, End) range.
type FoldResult struct {
	Evaluation
	Start, End int
}

// CrossValidation holds the result of a cross-validation: the
// evaluation of every fold and their means.
type CrossValidation struct {
	Folds     []FoldResult
	Accuracy  float64
	LiveNodes float64
	Depth     float64
}

/*
PruningPercent is the percentage of a training set used to grow a tree when
the tree is to be pruned afterwards. The remaining records make the
validation set for pruning.
*/
const PruningPercent = 70

/*
Evaluate takes a training set, a testing set and whether to prune, and
returns the evaluation against the testing set of a tree grown from the
training set, or an error.

When pruning, the first 70% of the training records, rounded down, grow the
tree and the rest are used to prune it. If either part would be empty, the
tree is grown from every training record and left unpruned.
*/
func (p *Pot) Evaluate(training, testing []dataset.Record, prune bool) (*Evaluation, error) {
	var validation []dataset.Record
	if prune {
		sub, rest := dataset.Split(training, len(training)*PruningPercent/100)
		if len(sub) > 0 && len(rest) > 0 {
			training, validation = sub, rest
		} else {
			p.logger.Logf("not pruning: %d training records are too few to hold out a validation set", len(training))
		}
	}
	t, err := p.Grow(training)
	if err != nil {
		return nil, err
	}
	e := &Evaluation{Tree: t}
	if len(validation) > 0 {
		e.Pruned, err = p.Prune(t, validation)
		if err != nil {
			return nil, err
		}
	}
	e.Accuracy, err = t.Test(testing)
	if err != nil {
		return nil, err
	}
	e.LiveNodes = t.LiveNodes()
	e.Depth = t.MaxDepth()
	return e, nil
}

/*
Holdout takes a slice of records, a catalog, the percentage of records to
train with and whether to prune, and returns the evaluation of a tree grown
from the first records against the rest or an error. The number of training
records is rounded down.
*/
func Holdout(records []dataset.Record, c *feature.Catalog, percent float64, prune bool, opts ...Option) (*Evaluation, error) {
	training, testing := dataset.Split(records, int(float64(len(records))*percent/100.0))
	return New(c, opts...).Evaluate(training, testing, prune)
}

/*
CrossValidate takes a slice of records, a catalog, a number of folds and
whether to prune, and returns the result of cross-validating trees grown out
of the records or an error.

The records are partitioned into contiguous folds of ceil(n/k) records. For
every fold, a tree is grown, and optionally pruned, from the rest of the
records as Evaluate does, and tested against the fold. Folds left empty by the
rounding are not evaluated. The means are taken over the evaluated folds.
ErrInvalidFoldCount is returned if k is less than 2 or greater than the number
of records.
*/
func CrossValidate(records []dataset.Record, c *feature.Catalog, k int, prune bool, opts ...Option) (*CrossValidation, error) {
	if k < 2 || k > len(records) {
		return nil, ErrInvalidFoldCount
	}
	p := New(c, opts...)
	result := &CrossValidation{}
	for _, fold := range dataset.Folds(records, k) {
		e, err := p.Evaluate(fold.Training, fold.Testing, prune)
		if err != nil {
			return nil, err
		}
		p.logger.Logf("fold [%d, %d): accuracy %v, %d live nodes, depth %d, %d pruned", fold.Start, fold.End, e.Accuracy, e.LiveNodes, e.Depth, e.Pruned)
		result.Folds = append(result.Folds, FoldResult{Evaluation: *e, Start: fold.Start, End: fold.End})
		result.Accuracy += e.Accuracy
		result.LiveNodes += float64(e.LiveNodes)
		result.Depth += float64(e.Depth)
	}
	n := float64(len(result.Folds))
	result.Accuracy /= n
	result.LiveNodes /= n
	result.Depth /= n
	return result, nil
}
