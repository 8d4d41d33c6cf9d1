package feature

import "fmt"

/*
Sample is an interface for something that takes values for features, such
as a record to classify.

Its ValueFor method returns the index of the value the sample takes for
the feature with the given index.
*/
type Sample interface {
	ValueFor(feature int) int
}

/*
ValueCriterion represents the constraint a branch of a tree puts on the
samples reaching one of its children: taking a single value for a feature.
*/
type ValueCriterion struct {
	feature int
	value   int
}

/*
NewValueCriterion takes the index of a feature and a value index and returns
a ValueCriterion constraining the feature to take that value.
*/
func NewValueCriterion(feature, value int) *ValueCriterion {
	return &ValueCriterion{feature, value}
}

/*
Describe takes a catalog and returns a human readable representation of the
criterion such as "outlook is sunny".
*/
func (vc *ValueCriterion) Describe(c *Catalog) string {
	f := c.Feature(vc.feature)
	return fmt.Sprintf("%s is %s", f.Name(), f.Label(vc.value))
}

func (vc *ValueCriterion) String() string {
	return fmt.Sprintf("#%d is %d", vc.feature, vc.value)
}
