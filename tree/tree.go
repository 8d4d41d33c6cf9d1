package tree

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pbanos/seedling/feature"
)

// Tree represents a decision tree. Its nodes are stored
// in an arena where the root takes index 0 and every
// child is stored after its parent. The arena never
// shrinks: pruning only detaches subtrees.
type Tree struct {
	Nodes []Node
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// Append takes a node, appends it to the arena and returns its index.
func (t *Tree) Append(n Node) int {
	t.Nodes = append(t.Nodes, n)
	return len(t.Nodes) - 1
}

// Attach takes the index of a branch, a value of its feature and the index
// of a node and registers the node as the branch's child for the value.
func (t *Tree) Attach(branch, value, child int) error {
	if branch < 0 || branch >= len(t.Nodes) || t.Nodes[branch].Leaf {
		return fmt.Errorf("attaching node %d: node %d is not a branch", child, branch)
	}
	if child <= branch || child >= len(t.Nodes) {
		return fmt.Errorf("attaching node %d to branch %d: invalid child index", child, branch)
	}
	t.Nodes[branch].Children[value] = child
	return nil
}

// Empty tells whether the tree has no nodes.
func (t *Tree) Empty() bool {
	return t == nil || len(t.Nodes) == 0
}

/*
Traverse takes a function that takes the index of a node, its depth and the
node, and goes through the nodes reachable from the root calling the function
for every one of them. A node is visited before its children, and children
are visited in ascending order of their feature value. The root has depth 1.
If the function returns an error the traversing is aborted and the error is
returned.
*/
func (t *Tree) Traverse(f func(index, depth int, n *Node) error) error {
	if t.Empty() {
		return nil
	}
	type visit struct{ index, depth int }
	stack := []visit{{0, 1}}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.Nodes[v.index]
		if err := f(v.index, v.depth, n); err != nil {
			return err
		}
		values := sortedValues(n.Children)
		for i := len(values) - 1; i >= 0; i-- {
			stack = append(stack, visit{n.Children[values[i]], v.depth + 1})
		}
	}
	return nil
}

// LiveNodes returns the number of nodes reachable from the root.
func (t *Tree) LiveNodes() int {
	var count int
	t.Traverse(func(_, _ int, _ *Node) error {
		count++
		return nil
	})
	return count
}

// PrunedNodes returns the number of nodes in the arena that
// are no longer reachable from the root.
func (t *Tree) PrunedNodes() int {
	if t.Empty() {
		return 0
	}
	return len(t.Nodes) - t.LiveNodes()
}

// MaxDepth returns the number of nodes in the longest path from
// the root to a leaf or stub, 0 for an empty tree.
func (t *Tree) MaxDepth() int {
	var max int
	t.Traverse(func(_, depth int, _ *Node) error {
		if depth > max {
			max = depth
		}
		return nil
	})
	return max
}

/*
Levels takes a catalog and a maximum depth and returns one line for every
level of the tree up to that depth, or all of them if depth is not positive.

Each line holds an entry per node in the level separated by " | ". Branches
are shown as b(<criterion>, <feature>), leaves as l(<criterion>, <class>) and
stubs left by pruning as p(<criterion>, <fallback class>), where the
criterion is "root" for the root node and "<feature>: <value>" of the parent
otherwise.
*/
func (t *Tree) Levels(c *feature.Catalog, depth int) []string {
	if t.Empty() {
		return nil
	}
	type entry struct {
		criterion string
		index     int
	}
	var result []string
	level := []entry{{"root", 0}}
	for d := 1; len(level) > 0 && (depth <= 0 || d <= depth); d++ {
		var next []entry
		parts := make([]string, 0, len(level))
		for _, e := range level {
			n := &t.Nodes[e.index]
			switch {
			case n.Leaf:
				parts = append(parts, fmt.Sprintf("l(%s, %s)", e.criterion, c.Label().Label(n.Class)))
			case n.Stub():
				parts = append(parts, fmt.Sprintf("p(%s, %s)", e.criterion, c.Label().Label(n.Fallback)))
			default:
				f := c.Feature(n.Feature)
				parts = append(parts, fmt.Sprintf("b(%s, %s)", e.criterion, f.Name()))
				for _, v := range sortedValues(n.Children) {
					next = append(next, entry{fmt.Sprintf("%s: %s", f.Name(), f.Label(v)), n.Children[v]})
				}
			}
		}
		result = append(result, strings.Join(parts, " | "))
		level = next
	}
	return result
}

func (t *Tree) String() string {
	if t.Empty() {
		return "{Tree empty}"
	}
	var b strings.Builder
	for i, n := range t.Nodes {
		fmt.Fprintf(&b, "[%d] %v\n", i, &n)
	}
	return b.String()
}

func sortedValues(children map[int]int) []int {
	values := make([]int, 0, len(children))
	for v := range children {
		values = append(values, v)
	}
	sort.Ints(values)
	return values
}
