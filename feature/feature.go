package feature

import "fmt"

// UnknownValue is the reserved label appended to the available values of
// every non-label discrete feature. It is only ever matched explicitly.
const UnknownValue = "?"

/*
Feature represents a property that can be observed. Every value a feature
can take is identified by an index in [0, Size()).

Its Label method returns a human readable representation of the value with
the given index.
*/
type Feature interface {
	Name() string
	Size() int
	Label(value int) string
}

/*
DiscreteFeature represents a property that can be observed and that can only
take a value among a finite set of labels.
*/
type DiscreteFeature struct {
	name            string
	availableValues []string
}

/*
BucketedFeature represents a numeric property whose observed values are
floored into non-negative integer buckets. Its size is one more than the
largest bucket observed while loading data.
*/
type BucketedFeature struct {
	name string
	size int
}

/*
NewDiscreteFeature takes a name string and a slice of available value strings
and returns a discrete feature with the given names and available values.
*/
func NewDiscreteFeature(name string, availableValues []string) *DiscreteFeature {
	return &DiscreteFeature{name, availableValues}
}

/*
NewBucketedFeature takes a name string and a size and returns a bucketed
feature whose values are the buckets 0 to size-1.
*/
func NewBucketedFeature(name string, size int) *BucketedFeature {
	return &BucketedFeature{name, size}
}

/*
Name returns a string with the name of the feature
*/
func (df *DiscreteFeature) Name() string {
	return df.name
}

// Size returns the number of available values.
func (df *DiscreteFeature) Size() int {
	return len(df.availableValues)
}

// Label returns the available value at the given index.
func (df *DiscreteFeature) Label(value int) string {
	if value < 0 || value >= len(df.availableValues) {
		return fmt.Sprintf("#%d", value)
	}
	return df.availableValues[value]
}

/*
AvailableValues returns a string slice with the values available for the feature
*/
func (df *DiscreteFeature) AvailableValues() []string {
	return df.availableValues
}

/*
Index takes a label and returns its index among the available values of the
feature and true, or -1 and false if the label is not available.
*/
func (df *DiscreteFeature) Index(label string) (int, bool) {
	for i, av := range df.availableValues {
		if av == label {
			return i, true
		}
	}
	return -1, false
}

func (df *DiscreteFeature) String() string {
	return df.name
}

/*
Name returns a string with the name of the feature
*/
func (bf *BucketedFeature) Name() string {
	return bf.name
}

// Size returns the number of buckets.
func (bf *BucketedFeature) Size() int {
	return bf.size
}

// Label returns the bucket number as a string.
func (bf *BucketedFeature) Label(value int) string {
	return fmt.Sprintf("%d", value)
}

func (bf *BucketedFeature) String() string {
	return bf.name
}
