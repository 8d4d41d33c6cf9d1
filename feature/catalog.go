package feature

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Error is the type of the errors returned when
// declaring features or resolving their values.
type Error string

const (
	// ErrUnmatchedValue is returned when a discrete feature
	// value does not match any of its available values.
	ErrUnmatchedValue = Error("value does not match any available value")
	// ErrInvalidNumericValue is returned when a bucketed
	// feature value is not a finite non-negative number.
	ErrInvalidNumericValue = Error("invalid numeric value")
	// ErrBucketedClass is returned when building a catalog
	// whose label feature is not discrete.
	ErrBucketedClass = Error("label feature must be discrete")
	// ErrNoFeatures is returned when building a catalog
	// without any feature.
	ErrNoFeatures = Error("no features declared")
)

func (e Error) Error() string {
	return string(e)
}

/*
Catalog is the immutable description of the features of a dataset. The last
feature is always the label, the discrete feature that records are
classified into.
*/
type Catalog struct {
	features []Feature
}

/*
NewCatalog takes a slice of features whose last element is the label and
returns a Catalog with them or an error if the slice is empty or the label
is not a *DiscreteFeature.
*/
func NewCatalog(features []Feature) (*Catalog, error) {
	if len(features) == 0 {
		return nil, ErrNoFeatures
	}
	if _, ok := features[len(features)-1].(*DiscreteFeature); !ok {
		return nil, fmt.Errorf("feature %s: %w", features[len(features)-1].Name(), ErrBucketedClass)
	}
	return &Catalog{append([]Feature{}, features...)}, nil
}

// Len returns the number of features in the catalog, label included.
func (c *Catalog) Len() int {
	return len(c.features)
}

// Features returns the non-label features in declaration order.
func (c *Catalog) Features() []Feature {
	return c.features[:len(c.features)-1]
}

// Feature returns the feature at index i.
func (c *Catalog) Feature(i int) Feature {
	return c.features[i]
}

// Label returns the label feature.
func (c *Catalog) Label() *DiscreteFeature {
	return c.features[len(c.features)-1].(*DiscreteFeature)
}

// Classes returns the number of values of the label feature.
func (c *Catalog) Classes() int {
	return c.Label().Size()
}

/*
Builder accumulates feature declarations and the bucket sizes observed while
loading records. Once loading is over, Build freezes it into a Catalog. The
last declared feature is the label: it never gets the reserved unknown value.
*/
type Builder struct {
	names  []string
	labels [][]string
	sizes  []int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddDiscrete declares a discrete feature with the given available values.
func (b *Builder) AddDiscrete(name string, values []string) {
	b.names = append(b.names, name)
	b.labels = append(b.labels, append([]string{}, values...))
	b.sizes = append(b.sizes, 0)
}

// AddBucketed declares a bucketed feature with an initial size of 0.
func (b *Builder) AddBucketed(name string) {
	b.names = append(b.names, name)
	b.labels = append(b.labels, nil)
	b.sizes = append(b.sizes, 0)
}

// Len returns the number of declared features.
func (b *Builder) Len() int {
	return len(b.names)
}

// Names returns the names of the declared features in order.
func (b *Builder) Names() []string {
	return b.names
}

// Bucketed tells whether the feature at index i is bucketed.
func (b *Builder) Bucketed(i int) bool {
	return b.labels[i] == nil
}

/*
MoveToLabel takes the name of a declared feature and moves it to the last
position so that it becomes the label. It returns false if no feature has
that name.
*/
func (b *Builder) MoveToLabel(name string) bool {
	for i, n := range b.names {
		if n != name {
			continue
		}
		l, s := b.labels[i], b.sizes[i]
		b.names = append(append(b.names[:i:i], b.names[i+1:]...), n)
		b.labels = append(append(b.labels[:i:i], b.labels[i+1:]...), l)
		b.sizes = append(append(b.sizes[:i:i], b.sizes[i+1:]...), s)
		return true
	}
	return false
}

/*
Resolve takes the index of a declared feature and a raw textual value and
returns the index of the value in the feature's domain.

For discrete features the trimmed raw value must match one of the declared
labels exactly, or be the reserved UnknownValue on a non-label feature.
Otherwise ErrUnmatchedValue is returned.

For bucketed features the raw value is parsed as a float and floored into a
bucket, growing the feature's size if needed. Values ParseBucket rejects
return ErrInvalidNumericValue, and so does UnknownValue: bucketed features
have no unknown value.
*/
func (b *Builder) Resolve(i int, raw string) (int, error) {
	v := strings.TrimSpace(raw)
	if labels := b.labels[i]; labels != nil {
		for j, l := range labels {
			if l == v {
				return j, nil
			}
		}
		if v == UnknownValue && i != len(b.names)-1 {
			return len(labels), nil
		}
		return 0, fmt.Errorf("feature %s got %q: %w", b.names[i], v, ErrUnmatchedValue)
	}
	if v == UnknownValue {
		return 0, fmt.Errorf("feature %s is bucketed and cannot take the unknown value: %w", b.names[i], ErrInvalidNumericValue)
	}
	bucket, err := ParseBucket(v)
	if err != nil {
		return 0, fmt.Errorf("feature %s got %q: %w", b.names[i], v, err)
	}
	if bucket+1 > b.sizes[i] {
		b.sizes[i] = bucket + 1
	}
	return bucket, nil
}

// MaxBucket is the greatest bucket a bucketed feature value can be floored to.
const MaxBucket = math.MaxInt32 - 1

/*
ParseBucket takes a raw value and returns the bucket it is floored to, or
ErrInvalidNumericValue if it is not a number, is negative or non-finite, or
its bucket would exceed MaxBucket.
*/
func ParseBucket(raw string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f >= MaxBucket+1 {
		return 0, ErrInvalidNumericValue
	}
	return int(math.Floor(f)), nil
}

/*
Build freezes the declarations and observed bucket sizes into a Catalog.
Non-label discrete features get UnknownValue appended to their available
values.
*/
func (b *Builder) Build() (*Catalog, error) {
	features := make([]Feature, 0, len(b.names))
	for i, name := range b.names {
		labels := b.labels[i]
		switch {
		case labels == nil:
			features = append(features, NewBucketedFeature(name, b.sizes[i]))
		case i == len(b.names)-1:
			features = append(features, NewDiscreteFeature(name, append([]string{}, labels...)))
		default:
			features = append(features, NewDiscreteFeature(name, append(append([]string{}, labels...), UnknownValue)))
		}
	}
	return NewCatalog(features)
}
