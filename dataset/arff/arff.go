/*
Package arff reads datasets in the attribute-relation file format: a header
declaring one attribute per line followed by a data section with one
comma-separated record per line.

	% comment
	@attribute outlook {sunny, overcast, rain}
	@attribute temperature numeric
	@attribute play {yes, no}
	@data
	sunny,85,no

Attributes with a brace-delimited list of labels are discrete, any other
attribute is bucketed: its values are floored into non-negative integer
buckets. The last attribute is the label.
*/
package arff

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/pbanos/seedling/dataset"
	"github.com/pbanos/seedling/feature"
)

// Error is the type of the errors returned when a file cannot be parsed.
type Error string

const (
	// ErrMalformedAttributeLine is returned for an @attribute line
	// without a name or with an unbalanced label list.
	ErrMalformedAttributeLine = Error("malformed attribute line")
	// ErrEmptyDataRow is returned for a blank line between data
	// lines. Blank lines at the end of the document are ignored.
	ErrEmptyDataRow = Error("empty data row")
	// ErrWrongValueCount is returned for a data line whose number of
	// values differs from the number of declared attributes.
	ErrWrongValueCount = Error("wrong number of values")
	// ErrNoAttributes is returned when the data section starts
	// before any attribute has been declared.
	ErrNoAttributes = Error("no attributes declared")
)

func (e Error) Error() string {
	return string(e)
}

var (
	attributeRegexp = regexp.MustCompile(`(?i)^@attribute(\s+(\S+))?`)
	dataRegexp      = regexp.MustCompile(`(?i)^@data`)
	nominalRegexp   = regexp.MustCompile(`\{(.*)\}`)
)

/*
Read takes an io.Reader with an ARFF document and returns the dataset it
describes or an error. Features are declared first and their bucket sizes are
grown while records are parsed; the catalog is only built once the whole
document has been read. Errors wrap the package's Error values or
feature.ErrUnmatchedValue and feature.ErrInvalidNumericValue, and mention the
line they were found on.
*/
func Read(r io.Reader) (*dataset.Dataset, error) {
	b := feature.NewBuilder()
	var records []dataset.Record
	var dataSection bool
	var blankLine int
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for l := 1; scanner.Scan(); l++ {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "%") || (line == "" && !dataSection) {
			continue
		}
		if dataSection {
			if line == "" {
				if blankLine == 0 {
					blankLine = l
				}
				continue
			}
			if blankLine != 0 {
				return nil, fmt.Errorf("line %d: %w", blankLine, ErrEmptyDataRow)
			}
			record, err := parseRecord(line, b)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", l, err)
			}
			records = append(records, record)
			continue
		}
		if m := attributeRegexp.FindStringSubmatchIndex(line); m != nil {
			var name string
			if m[4] >= 0 {
				name = line[m[4]:m[5]]
			}
			err := declareAttribute(line, name, line[m[1]:], b)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", l, err)
			}
			continue
		}
		if dataRegexp.MatchString(line) {
			if b.Len() == 0 {
				return nil, fmt.Errorf("line %d: %w", l, ErrNoAttributes)
			}
			dataSection = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading arff: %v", err)
	}
	if b.Len() == 0 {
		return nil, ErrNoAttributes
	}
	c, err := b.Build()
	if err != nil {
		return nil, err
	}
	return &dataset.Dataset{Catalog: c, Records: records}, nil
}

/*
ReadFile takes a filepath string, opens the file it points to and uses Read
to return the dataset in it or an error.
*/
func ReadFile(filepath string) (*dataset.Dataset, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("opening arff file %s: %v", filepath, err)
	}
	defer f.Close()
	d, err := Read(f)
	if err != nil {
		err = fmt.Errorf("parsing arff file %s: %w", filepath, err)
	}
	return d, err
}

func declareAttribute(line, name, rest string, b *feature.Builder) error {
	if name == "" || strings.HasPrefix(name, "{") {
		return fmt.Errorf("%w: %q", ErrMalformedAttributeLine, line)
	}
	if m := nominalRegexp.FindStringSubmatch(rest); m != nil {
		var labels []string
		for _, l := range strings.Split(m[1], ",") {
			l = strings.TrimSpace(l)
			if l == "" {
				return fmt.Errorf("%w: empty label in %q", ErrMalformedAttributeLine, line)
			}
			labels = append(labels, l)
		}
		b.AddDiscrete(name, labels)
		return nil
	}
	if strings.ContainsAny(rest, "{}") {
		return fmt.Errorf("%w: unbalanced braces in %q", ErrMalformedAttributeLine, line)
	}
	b.AddBucketed(name)
	return nil
}

func parseRecord(line string, b *feature.Builder) (dataset.Record, error) {
	values := strings.Split(line, ",")
	if len(values) != b.Len() {
		return dataset.Record{}, fmt.Errorf("%w: expected %d, got %d", ErrWrongValueCount, b.Len(), len(values))
	}
	indices := make([]int, len(values))
	for i, v := range values {
		var err error
		indices[i], err = b.Resolve(i, v)
		if err != nil {
			return dataset.Record{}, err
		}
	}
	last := len(indices) - 1
	return dataset.Record{Class: indices[last], Features: indices[:last:last]}, nil
}
