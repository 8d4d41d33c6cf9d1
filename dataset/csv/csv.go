package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/seedling/dataset"
	"github.com/pbanos/seedling/feature"
)

/*
Read takes an io.Reader for a CSV stream and a feature.Builder with the
declared features and returns the dataset parsed from the reader or an error.

The header or first row of the CSV content is expected to name every declared
feature, in any order; columns for undeclared features are ignored. The rest
of the rows should consist of valid values for the features and/or the '?'
string to indicate an unknown value on non-label discrete features.
*/
func Read(reader io.Reader, b *feature.Builder) (*dataset.Dataset, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	columns, err := parseColumnsFromCSVHeader(header, b.Names())
	if err != nil {
		return nil, err
	}
	var records []dataset.Record
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %v", err)
		}
		record, err := parseRecordFromCSVRow(row, columns, b)
		if err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", l, err)
		}
		records = append(records, record)
	}
	c, err := b.Build()
	if err != nil {
		return nil, err
	}
	return &dataset.Dataset{Catalog: c, Records: records}, nil
}

/*
ReadFile takes a filepath string and a feature.Builder, opens the file to
which the filepath points to and uses Read to return a dataset or an error
read from it. If the filepath is "" os.Stdin is read instead.
*/
func ReadFile(filepath string, b *feature.Builder) (*dataset.Dataset, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading CSV file: %v", err)
		}
		defer f.Close()
	}
	d, err := Read(f, b)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %w", filepath, err)
	}
	return d, err
}

// parseColumnsFromCSVHeader returns for each declared feature the index of
// the column holding its values.
func parseColumnsFromCSVHeader(header []string, names []string) ([]int, error) {
	byName := make(map[string]int)
	for i, name := range header {
		byName[name] = i
	}
	columns := make([]int, len(names))
	for i, name := range names {
		c, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("parsing header: missing column for feature %s", name)
		}
		columns[i] = c
	}
	return columns, nil
}

func parseRecordFromCSVRow(row []string, columns []int, b *feature.Builder) (dataset.Record, error) {
	indices := make([]int, len(columns))
	for i, c := range columns {
		if c >= len(row) {
			return dataset.Record{}, fmt.Errorf("row has no column %d", c+1)
		}
		v, err := b.Resolve(i, row[c])
		if err != nil {
			return dataset.Record{}, err
		}
		indices[i] = v
	}
	last := len(indices) - 1
	return dataset.Record{Class: indices[last], Features: indices[:last:last]}, nil
}
