package dataset

import (
	"math"
	"math/rand"

	"github.com/pbanos/seedling/feature"
)

/*
Dataset represents a collection of records along with the catalog that
describes their features.
*/
type Dataset struct {
	Catalog *feature.Catalog
	Records []Record
}

// Count returns the number of records in the dataset.
func (d *Dataset) Count() int {
	return len(d.Records)
}

/*
References takes a slice of records and returns a slice of pointers to them,
so that subsets can be built without copying records around.
*/
func References(records []Record) []*Record {
	result := make([]*Record, len(records))
	for i := range records {
		result[i] = &records[i]
	}
	return result
}

/*
Distribution takes a slice of records and the number of classes of the label
feature and returns the number of records for each class.
*/
func Distribution(records []*Record, classes int) []int {
	result := make([]int, classes)
	for _, r := range records {
		result[r.Class]++
	}
	return result
}

/*
Entropy takes a class distribution and returns its Shannon entropy in bits.
The entropy of an empty distribution or of one with a single non-zero count
is 0.
*/
func Entropy(distribution []int) float64 {
	var total int
	for _, c := range distribution {
		total += c
	}
	if total == 0 {
		return 0
	}
	var result float64
	for _, c := range distribution {
		if c == 0 || c == total {
			continue
		}
		probValue := float64(c) / float64(total)
		result -= probValue * math.Log2(probValue)
	}
	return result
}

/*
Majority takes a class distribution and returns the class with the highest
count, the lowest class index winning ties.
*/
func Majority(distribution []int) int {
	var result int
	for c, count := range distribution {
		if count > distribution[result] {
			result = c
		}
	}
	return result
}

/*
GroupBy takes a slice of records, the index of a feature and its size and
returns the records grouped by the value they take for the feature. Each
group keeps the original order.
*/
func GroupBy(records []*Record, f, size int) [][]*Record {
	result := make([][]*Record, size)
	for _, r := range records {
		v := r.Features[f]
		result[v] = append(result[v], r)
	}
	return result
}

/*
Shuffle takes a slice of records and a random source and shuffles the
records in place.
*/
func Shuffle(records []Record, rnd *rand.Rand) {
	rnd.Shuffle(len(records), func(i, j int) {
		records[i], records[j] = records[j], records[i]
	})
}

/*
Split takes a slice of records and an integer n and returns the first n
records and the rest. n is clamped to the [0, len(records)] range. No record
is copied.
*/
func Split(records []Record, n int) ([]Record, []Record) {
	if n < 0 {
		n = 0
	}
	if n > len(records) {
		n = len(records)
	}
	return records[:n:n], records[n:]
}

/*
Fold represents one of the contiguous slices a dataset is partitioned into
for cross-validation: the records in the slice make the testing set and the
rest make the training set.
*/
type Fold struct {
	Start, End int
	Training   []Record
	Testing    []Record
}

/*
Folds takes a slice of records and a number k of folds and partitions the
records into contiguous folds of ceil(len(records)/k) records, the last one
possibly shorter. Folds left without records by the rounding are omitted, so
fewer than k folds may be returned. The training set of each fold is a new
slice with the records before and after the fold, in their relative order.
*/
func Folds(records []Record, k int) []Fold {
	if k < 1 || len(records) == 0 {
		return nil
	}
	size := (len(records) + k - 1) / k
	var result []Fold
	for i := 0; i < k; i++ {
		start := i * size
		if start >= len(records) {
			break
		}
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		training := make([]Record, 0, len(records)-(end-start))
		training = append(training, records[:start]...)
		training = append(training, records[end:]...)
		result = append(result, Fold{
			Start:    start,
			End:      end,
			Training: training,
			Testing:  records[start:end:end],
		})
	}
	return result
}
