package seedling

import (
	"github.com/pbanos/seedling/dataset"
	"github.com/pbanos/seedling/feature"
)

/*
Partition represents a partition of a set of records according to the values
they take for a feature, along with its weighted entropy for the label.
*/
type Partition struct {
	Feature int
	// Groups holds the records taking each value of
	// the feature, indexed by value.
	Groups  [][]*dataset.Record
	Entropy float64
}

/*
NewPartition takes a catalog, a slice of records and the index of a feature
and returns the partition of the records for the feature. Its entropy is the
sum over the values of the feature of the entropy of the class distribution
of the records taking the value, weighted by their share of the records.
*/
func NewPartition(c *feature.Catalog, records []*dataset.Record, f int) *Partition {
	groups := dataset.GroupBy(records, f, c.Feature(f).Size())
	total := float64(len(records))
	var entropy float64
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		gEntropy := dataset.Entropy(dataset.Distribution(group, c.Classes()))
		entropy += gEntropy * float64(len(group)) / total
	}
	return &Partition{Feature: f, Groups: groups, Entropy: entropy}
}

// bestPartition returns the partition with the least entropy over the
// features not yet used, the lowest feature index winning ties.
func bestPartition(c *feature.Catalog, records []*dataset.Record, used []bool) *Partition {
	var result *Partition
	for f, u := range used {
		if u {
			continue
		}
		part := NewPartition(c, records, f)
		if result == nil || part.Entropy < result.Entropy {
			result = part
		}
	}
	return result
}
