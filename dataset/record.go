package dataset

import "fmt"

/*
Record represents a labeled sample: the index of its class in the label
feature's domain and, for every non-label feature of the catalog in order,
the index of the value it takes. Records are never modified once loaded.
*/
type Record struct {
	Class    int
	Features []int
}

// ValueFor returns the value index the record takes for the given feature.
func (r *Record) ValueFor(feature int) int {
	return r.Features[feature]
}

func (r *Record) String() string {
	return fmt.Sprintf("[%v -> %d]", r.Features, r.Class)
}
