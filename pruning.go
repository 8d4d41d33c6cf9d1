package seedling

import (
	"sort"

	"github.com/pbanos/seedling/dataset"
	"github.com/pbanos/seedling/tree"
)

/*
Prune takes a tree and a slice of validation records and prunes the tree in
place with reduced error pruning, returning the number of collapsed branches
or an error if the tree cannot be tested against the records.

On every round, each branch with children is collapsed in turn, the accuracy
of the tree on the records is measured, and its children are restored. The
branch whose collapse scores best, the first one in arena order winning ties,
has its children cleared for good if its score is not worse than the
accuracy of the tree before the round. Pruning stops after a round in which
every collapse worsens the accuracy.

Collapsed branches stay in the arena and predict their fallback class.
Branches detached by earlier collapses are not considered, as collapsing them
cannot change any prediction.
*/
func Prune(t *tree.Tree, validation []dataset.Record) (int, error) {
	return prune(t, validation, nopLogger{})
}

func prune(t *tree.Tree, validation []dataset.Record, logger Logger) (int, error) {
	var collapsed int
	for {
		baseline, err := t.Test(validation)
		if err != nil {
			return collapsed, err
		}
		best, bestScore := -1, 0.0
		for _, i := range liveBranches(t) {
			n := &t.Nodes[i]
			children := n.Children
			n.Children = map[int]int{}
			score, err := t.Test(validation)
			n.Children = children
			if err != nil {
				return collapsed, err
			}
			if best < 0 || score > bestScore {
				best, bestScore = i, score
			}
		}
		if best < 0 || bestScore < baseline {
			return collapsed, nil
		}
		t.Nodes[best].Children = map[int]int{}
		collapsed++
		logger.Logf("pruned node %d: validation accuracy %v -> %v, %d live nodes left", best, baseline, bestScore, t.LiveNodes())
	}
}

// liveBranches returns in ascending order the indices of the
// reachable branches that still have children.
func liveBranches(t *tree.Tree) []int {
	var result []int
	t.Traverse(func(index, _ int, n *tree.Node) error {
		if !n.Leaf && len(n.Children) > 0 {
			result = append(result, index)
		}
		return nil
	})
	sort.Ints(result)
	return result
}

// Prune prunes the given tree against the validation records
// like the Prune function, reporting every collapse to the
// logger of the Pot.
func (p *Pot) Prune(t *tree.Tree, validation []dataset.Record) (int, error) {
	return prune(t, validation, p.logger)
}
