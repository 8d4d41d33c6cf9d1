/*
Package inputsample reads a single unlabeled record from an io.Reader,
typically a terminal, so that a tree can classify it.
*/
package inputsample

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pbanos/seedling/dataset"
	"github.com/pbanos/seedling/feature"
)

/*
FeatureValueRequester represents a way to ask
for feature values and reject the given values.
*/
type FeatureValueRequester interface {
	RequestValueFor(feature.Feature) error
	RejectValueFor(feature.Feature, string) error
}

/*
Read takes an io.Reader, a catalog and a FeatureValueRequester and returns a
record with a value for every non-label feature of the catalog or an error.

Values are read one per line, in catalog order, each one after requesting it
with the given FeatureValueRequester.

For a feature.DiscreteFeature, lines will be read from the reader until a
line with one of the available values of the feature is found, the unknown
value included.

For a feature.BucketedFeature, lines will be read from the reader until a
line containing a number accepted by feature.ParseBucket is found. The
number is floored into its bucket.

Non accepted values are rejected with the FeatureValueRequester's
RejectValueFor method. The returned record's class is -1.
*/
func Read(r io.Reader, c *feature.Catalog, featureValueRequester FeatureValueRequester) (*dataset.Record, error) {
	scanner := bufio.NewScanner(r)
	features := c.Features()
	record := &dataset.Record{Class: -1, Features: make([]int, len(features))}
	for i, f := range features {
		err := featureValueRequester.RequestValueFor(f)
		if err != nil {
			return nil, err
		}
		record.Features[i], err = readValue(scanner, f, featureValueRequester)
		if err != nil {
			return nil, err
		}
	}
	return record, nil
}

func readValue(scanner *bufio.Scanner, f feature.Feature, featureValueRequester FeatureValueRequester) (int, error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if v, ok := parseValue(f, line); ok {
			return v, nil
		}
		err := featureValueRequester.RejectValueFor(f, line)
		if err != nil {
			return 0, err
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("EOF when requesting value for %s", f.Name())
}

func parseValue(f feature.Feature, line string) (int, bool) {
	switch f := f.(type) {
	case *feature.DiscreteFeature:
		return f.Index(line)
	case *feature.BucketedFeature:
		v, err := feature.ParseBucket(line)
		return v, err == nil
	}
	return 0, false
}
