/*
Package mongodataset reads datasets from a MongoDB collection: every
document is a record whose fields are named after the declared features.
*/
package mongodataset

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pbanos/seedling/dataset"
	"github.com/pbanos/seedling/feature"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

// DefaultCollection is the collection read when none is given.
const DefaultCollection = "samples"

/*
Dial takes a MongoDB connection URL and returns a session on it or an error
if the server cannot be reached.
*/
func Dial(url string) (*mgo.Session, error) {
	session, err := mgo.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb at %s: %v", url, err)
	}
	return session, nil
}

/*
Read takes a context, a MongoDB session, a collection name and a
feature.Builder with the declared features and returns the dataset made
of the documents in the collection of the session's default database or
an error. Missing or null fields are read as the unknown value, which only
non-label discrete features can take: documents missing a bucketed or label
field fail the read. Reading stops with the context's error if it is
cancelled.
*/
func Read(ctx context.Context, session *mgo.Session, collection string, b *feature.Builder) (*dataset.Dataset, error) {
	if err := validateNames(b.Names()); err != nil {
		return nil, err
	}
	if collection == "" {
		collection = DefaultCollection
	}
	iter := session.DB("").C(collection).Find(nil).Iter()
	defer iter.Close()
	var records []dataset.Record
	var doc bson.M
	for d := 1; iter.Next(&doc); d++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := NewRecord(doc, b)
		if err != nil {
			return nil, fmt.Errorf("document %d of collection %s: %w", d, collection, err)
		}
		records = append(records, record)
		doc = nil
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("reading collection %s: %v", collection, err)
	}
	c, err := b.Build()
	if err != nil {
		return nil, err
	}
	return &dataset.Dataset{Catalog: c, Records: records}, nil
}

/*
NewRecord takes a document and a feature.Builder and returns the record
with the values the document takes for the declared features or an error
if any value cannot be resolved.
*/
func NewRecord(doc bson.M, b *feature.Builder) (dataset.Record, error) {
	names := b.Names()
	indices := make([]int, len(names))
	for i, name := range names {
		v, err := b.Resolve(i, rawValue(doc[name]))
		if err != nil {
			return dataset.Record{}, err
		}
		indices[i] = v
	}
	last := len(indices) - 1
	return dataset.Record{Class: indices[last], Features: indices[:last:last]}, nil
}

func rawValue(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return feature.UnknownValue
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func validateNames(names []string) error {
	for _, fName := range names {
		if fName == "_id" {
			return fmt.Errorf("invalid feature name %q: reserved collection field", "_id")
		}
		if strings.ContainsAny(fName, ".$") {
			return fmt.Errorf("invalid feature name %q: contains reserved characters %q or %q", fName, ".", "$")
		}
	}
	return nil
}
