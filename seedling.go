package seedling

import (
	"github.com/pbanos/seedling/dataset"
	"github.com/pbanos/seedling/feature"
	"github.com/pbanos/seedling/queue"
	"github.com/pbanos/seedling/tree"
)

// Error represents an error growing or evaluating trees
type Error string

/*
ErrEmptyTrainingSet is the error returned when trying to grow a tree
without training records.
*/
const ErrEmptyTrainingSet = Error("cannot grow a tree from an empty training set")

/*
ErrInvalidFoldCount is the error returned when cross-validating with less
than 2 folds or more folds than records.
*/
const ErrInvalidFoldCount = Error("fold count must be at least 2 and at most the number of records")

func (e Error) Error() string {
	return string(e)
}

// Logger is the interface wrapping the Logf method
// used to report the progress of growing, pruning
// and validating trees.
type Logger interface {
	Logf(format string, a ...interface{})
}

type nopLogger struct{}

func (nopLogger) Logf(string, ...interface{}) {}

// Option configures a Pot
type Option func(*Pot)

// WithLogger returns an Option that sets the logger of a Pot.
func WithLogger(l Logger) Option {
	return func(p *Pot) {
		if l != nil {
			p.logger = l
		}
	}
}

// Pot grows trees that predict the label feature of a catalog
// out of records described by it.
type Pot struct {
	catalog *feature.Catalog
	logger  Logger
}

// New takes a catalog and options and returns a Pot to grow trees
// for records described by the catalog.
func New(c *feature.Catalog, opts ...Option) *Pot {
	p := &Pot{catalog: c, logger: nopLogger{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

/*
Grow takes a slice of training records and returns a tree grown from them or
an error if the slice is empty.

Nodes are developed with BranchOut one at a time, the pending ones being kept
in a queue.Stack, starting with a root task holding every record.

When the records of a node have more than one class and every feature has
already been used by its ancestors, no node is created and the parent is left
without a child for those records. Predictions for them fall back to the
fallback class of the parent. If that happens at the root, which only occurs
when the catalog has no features other than the label, a leaf predicting the
majority class is created instead so that the tree is never empty.
*/
func (p *Pot) Grow(records []dataset.Record) (*tree.Tree, error) {
	if len(records) == 0 {
		return nil, ErrEmptyTrainingSet
	}
	t := tree.New()
	s := queue.New(&queue.Task{
		Used:    make([]bool, p.catalog.Len()-1),
		Records: dataset.References(records),
	})
	for task := s.Pop(); task != nil; task = s.Pop() {
		tasks, err := p.BranchOut(t, task)
		if err != nil {
			return nil, err
		}
		for _, st := range tasks {
			s.Push(st)
		}
	}
	p.logger.Logf("grew tree with %d nodes from %d records", len(t.Nodes), len(records))
	return t, nil
}

/*
BranchOut takes a tree and a task, develops the node for the task's records
on the tree and returns the tasks to develop its children or an error.

If the records all share a class, a leaf predicting it is appended to the
tree. Otherwise, if some feature is not yet used by the task, a branch on the
feature whose partition of the records has the least weighted entropy is
appended, and a task is returned for every value of the feature taken by any
record, in ascending order of value. The node is attached to the task's
parent right after being appended.
*/
func (p *Pot) BranchOut(t *tree.Tree, task *queue.Task) ([]*queue.Task, error) {
	if len(task.Records) == 0 {
		return nil, ErrEmptyTrainingSet
	}
	distribution := dataset.Distribution(task.Records, p.catalog.Classes())
	majority := dataset.Majority(distribution)
	if distribution[majority] == len(task.Records) {
		return nil, p.appendTo(t, task, tree.NewLeaf(majority))
	}
	if task.Available() == 0 {
		p.logger.Logf("undecided node at %s: class distribution %v", p.describe(t, task), distribution)
		if task.Parent == nil {
			return nil, p.appendTo(t, task, tree.NewLeaf(majority))
		}
		return nil, nil
	}
	part := bestPartition(p.catalog, task.Records, task.Used)
	if err := p.appendTo(t, task, tree.NewBranch(part.Feature, majority)); err != nil {
		return nil, err
	}
	index := len(t.Nodes) - 1
	used := queue.With(task.Used, part.Feature)
	var tasks []*queue.Task
	for value, group := range part.Groups {
		if len(group) == 0 {
			continue
		}
		tasks = append(tasks, &queue.Task{
			Used:    used,
			Records: group,
			Parent:  &queue.Link{Node: index, Value: value},
		})
	}
	return tasks, nil
}

func (p *Pot) appendTo(t *tree.Tree, task *queue.Task, n tree.Node) error {
	index := t.Append(n)
	if task.Parent == nil {
		return nil
	}
	return t.Attach(task.Parent.Node, task.Parent.Value, index)
}

func (p *Pot) describe(t *tree.Tree, task *queue.Task) string {
	if task.Parent == nil {
		return "root"
	}
	parent := t.Nodes[task.Parent.Node]
	return feature.NewValueCriterion(parent.Feature, task.Parent.Value).Describe(p.catalog)
}
