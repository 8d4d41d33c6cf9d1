package tree

import (
	"github.com/pbanos/seedling/dataset"
	"github.com/pbanos/seedling/feature"
)

// PredictionError represents an error related with predictions
type PredictionError string

/*
ErrEmptyTree is the error returned when trying to predict a sample with a
tree that has no nodes.
*/
const ErrEmptyTree = PredictionError("cannot predict with an empty tree")

/*
ErrEmptyEvaluationSet is the error returned when trying to test a tree
against no records.
*/
const ErrEmptyEvaluationSet = PredictionError("cannot test a tree against an empty set of records")

func (pe PredictionError) Error() string {
	return string(pe)
}

/*
Predict takes a sample and returns the index of the class the tree predicts
for it or an error if the tree is empty.

Starting at the root, branches move on to the child for the value the sample
takes for their feature. If a branch has no such child, its fallback class is
predicted. Reaching a leaf predicts its class.
*/
func (t *Tree) Predict(s feature.Sample) (int, error) {
	if t.Empty() {
		return 0, ErrEmptyTree
	}
	n := &t.Nodes[0]
	for !n.Leaf {
		child, ok := n.Children[s.ValueFor(n.Feature)]
		if !ok {
			break
		}
		n = &t.Nodes[child]
	}
	return n.Prediction(), nil
}

/*
Test takes a slice of records and returns the fraction of them whose class
the tree predicts correctly, or an error if the slice is empty or the tree
cannot predict.
*/
func (t *Tree) Test(records []dataset.Record) (float64, error) {
	if len(records) == 0 {
		return 0.0, ErrEmptyEvaluationSet
	}
	var hits int
	for i := range records {
		class, err := t.Predict(&records[i])
		if err != nil {
			return 0.0, err
		}
		if class == records[i].Class {
			hits++
		}
	}
	return float64(hits) / float64(len(records)), nil
}
