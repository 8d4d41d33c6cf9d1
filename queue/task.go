package queue

import (
	"fmt"

	"github.com/pbanos/seedling/dataset"
)

// Link identifies the branch a grown node must be attached to
// and the feature value that leads to it.
type Link struct {
	// Index of the parent branch in the tree arena
	Node int
	// Value of the parent's feature for the records of the task
	Value int
}

// Task represents a node to be developed on a tree.
type Task struct {
	// Used tells for every non-label feature whether
	// an ancestor branch already splits on it.
	Used []bool
	// The training records satisfying the constraints
	// of the ancestors of the node.
	Records []*dataset.Record
	// The link to the parent branch, nil for the root.
	Parent *Link
}

// Available returns the number of features the task
// can still split its records on.
func (t *Task) Available() int {
	var count int
	for _, used := range t.Used {
		if !used {
			count++
		}
	}
	return count
}

// With returns a copy of the given used features
// with feature f marked as used.
func With(used []bool, f int) []bool {
	result := make([]bool, len(used))
	copy(result, used)
	result[f] = true
	return result
}

func (t *Task) String() string {
	if t.Parent == nil {
		return fmt.Sprintf("{Task root (%d records)}", len(t.Records))
	}
	return fmt.Sprintf("{Task %d=%d (%d records)}", t.Parent.Node, t.Parent.Value, len(t.Records))
}
