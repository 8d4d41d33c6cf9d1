package tree

import "fmt"

/*
Node is a node of the tree

It is either a leaf predicting a class, or a branch asking for the value of a
feature and moving on to the child for that value. A branch with no child for
the value of a sample predicts its fallback class instead. A branch whose
children were cleared by pruning is a stub that always predicts its fallback
class.
*/
type Node struct {
	// Whether the node is a leaf
	Leaf bool
	// The index of the feature a branch splits on
	Feature int
	// The index in the tree arena of the child node for each
	// value of the feature. Every index is greater than the
	// index of the branch.
	Children map[int]int
	// The majority class of the training records that reached a branch
	Fallback int
	// The class predicted by a leaf
	Class int
}

// NewLeaf returns a leaf node predicting the given class.
func NewLeaf(class int) Node {
	return Node{Leaf: true, Class: class}
}

// NewBranch returns a branch node without children that splits on the
// given feature and falls back to the given class.
func NewBranch(feature, fallback int) Node {
	return Node{Feature: feature, Children: make(map[int]int), Fallback: fallback}
}

// Stub tells whether the node is a branch without children.
func (n *Node) Stub() bool {
	return !n.Leaf && len(n.Children) == 0
}

// Prediction returns the class predicted by the node when no child applies:
// the class of a leaf or the fallback class of a branch.
func (n *Node) Prediction() int {
	if n.Leaf {
		return n.Class
	}
	return n.Fallback
}

func (n *Node) String() string {
	if n.Leaf {
		return fmt.Sprintf("{Leaf %d}", n.Class)
	}
	return fmt.Sprintf("{Branch #%d %v fallback %d}", n.Feature, n.Children, n.Fallback)
}
