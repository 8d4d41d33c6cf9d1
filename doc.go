/*
Package seedling grows ID3 decision trees out of datasets of discrete and
bucketed features, prunes them against held-out records and evaluates them
with holdout and k-fold cross-validation.

Trees are grown without recursion: a Pot keeps the nodes pending to be
developed in a queue.Stack and appends every developed node to the
tree.Tree arena.

	c := d.Catalog
	t, err := seedling.New(c).Grow(d.Records)
	if err != nil {
		return err
	}
	class, err := t.Predict(&record)
*/
package seedling
