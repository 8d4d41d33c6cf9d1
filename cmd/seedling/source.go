package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pbanos/seedling/dataset"
	"github.com/pbanos/seedling/dataset/arff"
	"github.com/pbanos/seedling/dataset/csv"
	"github.com/pbanos/seedling/dataset/mongodataset"
	"github.com/pbanos/seedling/dataset/sqldataset"
	"github.com/pbanos/seedling/feature"
	featureyaml "github.com/pbanos/seedling/feature/yaml"
)

type sourceKind int

const (
	arffSource sourceKind = iota
	csvSource
	sqlSource
	mongoSource
)

type sourceCmdConfig struct {
	*rootCmdConfig
	dataInput     string
	metadataInput string
	table         string
	classFeature  string
	ctx           context.Context
	cancelFunc    context.CancelFunc
}

func (scc *sourceCmdConfig) kind() sourceKind {
	switch {
	case strings.HasPrefix(scc.dataInput, "mongodb://"):
		return mongoSource
	case sqldataset.IsPostgreSQLURL(scc.dataInput), filepath.Ext(scc.dataInput) == ".db":
		return sqlSource
	case filepath.Ext(scc.dataInput) == ".csv":
		return csvSource
	}
	return arffSource
}

func (scc *sourceCmdConfig) Validate() error {
	if scc.dataInput == "" {
		return fmt.Errorf("required file flag was not set")
	}
	switch scc.kind() {
	case arffSource:
		if scc.metadataInput != "" || scc.classFeature != "" {
			return fmt.Errorf("ARFF files declare their own features: metadata and class-feature flags cannot be set")
		}
	case sqlSource:
		if scc.table == "" {
			return fmt.Errorf("required table flag was not set for database %s", scc.dataInput)
		}
		fallthrough
	default:
		if scc.metadataInput == "" {
			return fmt.Errorf("required metadata flag was not set for %s", scc.dataInput)
		}
	}
	return nil
}

/*
Dataset reads the dataset from the configured source: an ARFF file, or a CSV
file, SQLite3 or PostgreSQL table or MongoDB collection whose features are
declared in the YAML metadata file.
*/
func (scc *sourceCmdConfig) Dataset() (*dataset.Dataset, error) {
	if scc.kind() == arffSource {
		scc.Logf("Reading ARFF file %s...", scc.dataInput)
		return arff.ReadFile(scc.dataInput)
	}
	b, err := scc.features()
	if err != nil {
		return nil, err
	}
	switch scc.kind() {
	case csvSource:
		scc.Logf("Reading CSV file %s...", scc.dataInput)
		return csv.ReadFile(scc.dataInput, b)
	case sqlSource:
		return scc.sqlDataset(b)
	default:
		return scc.mongoDataset(b)
	}
}

// Load reads the dataset with Dataset and cancels the context
// used to read it once done.
func (scc *sourceCmdConfig) Load() (*dataset.Dataset, error) {
	defer scc.ContextCancelFunc()()
	return scc.Dataset()
}

func (scc *sourceCmdConfig) features() (*feature.Builder, error) {
	scc.Logf("Reading features from %s...", scc.metadataInput)
	b, err := featureyaml.ReadFeaturesFromFile(scc.metadataInput)
	if err != nil {
		return nil, err
	}
	if scc.classFeature != "" && !b.MoveToLabel(scc.classFeature) {
		return nil, fmt.Errorf("class feature '%s' is not defined", scc.classFeature)
	}
	return b, nil
}

func (scc *sourceCmdConfig) sqlDataset(b *feature.Builder) (*dataset.Dataset, error) {
	scc.Logf("Opening database %s to read table %s...", scc.dataInput, scc.table)
	db, err := sqldataset.Open(scc.dataInput)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %v", scc.dataInput, err)
	}
	defer db.Close()
	return sqldataset.Read(scc.Context(), db, scc.table, b)
}

func (scc *sourceCmdConfig) mongoDataset(b *feature.Builder) (*dataset.Dataset, error) {
	scc.Logf("Connecting to %s to read collection %s...", scc.dataInput, scc.table)
	session, err := mongodataset.Dial(scc.dataInput)
	if err != nil {
		return nil, err
	}
	defer session.Close()
	return mongodataset.Read(scc.Context(), session, scc.table, b)
}

func (scc *sourceCmdConfig) Context() context.Context {
	scc.setContextAndCancelFunc()
	return scc.ctx
}

func (scc *sourceCmdConfig) ContextCancelFunc() context.CancelFunc {
	scc.setContextAndCancelFunc()
	return scc.cancelFunc
}

func (scc *sourceCmdConfig) setContextAndCancelFunc() {
	if scc.ctx == nil {
		scc.ctx, scc.cancelFunc = context.WithCancel(context.Background())
	}
}
