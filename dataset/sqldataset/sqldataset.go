package sqldataset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/seedling/dataset"
	"github.com/pbanos/seedling/feature"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

/*
Open takes a PostgreSQL database connection URL or a path to an SQLite3
database file and returns a *sql.DB to read datasets from or an error if
the database cannot be opened.
*/
func Open(url string) (*sql.DB, error) {
	if IsPostgreSQLURL(url) {
		return sql.Open("postgres", url)
	}
	return sql.Open("sqlite3", url)
}

// IsPostgreSQLURL tells whether the given data source is a PostgreSQL
// connection URL.
func IsPostgreSQLURL(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}

// ColumnName returns the quoted column name for the feature with the
// given name or an error if it cannot be used as a column name.
func ColumnName(featureName string) (string, error) {
	if featureName == "" {
		return "", fmt.Errorf("empty feature names cannot be used as column names")
	}
	if strings.ContainsAny(featureName, `"`) {
		return "", fmt.Errorf(`feature name '%s' contains invalid character '"'`, featureName)
	}
	return `"` + featureName + `"`, nil
}

/*
Read takes a context, a database, a table name and a feature.Builder with the
declared features and returns the dataset made of the rows of the table or an
error. Rows are read in the order the database returns them; callers that
need a stable order should shuffle with a fixed seed afterwards.
*/
func Read(ctx context.Context, db *sql.DB, table string, b *feature.Builder) (*dataset.Dataset, error) {
	query, err := selectQuery(table, b.Names())
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying table %s: %v", table, err)
	}
	defer rows.Close()
	var records []dataset.Record
	values := make([]sql.NullString, b.Len())
	dest := make([]interface{}, b.Len())
	for i := range values {
		dest[i] = &values[i]
	}
	for r := 1; rows.Next(); r++ {
		err = rows.Scan(dest...)
		if err != nil {
			return nil, fmt.Errorf("scanning row %d of table %s: %v", r, table, err)
		}
		indices := make([]int, len(values))
		for i, v := range values {
			raw := feature.UnknownValue
			if v.Valid {
				raw = v.String
			}
			indices[i], err = b.Resolve(i, raw)
			if err != nil {
				return nil, fmt.Errorf("row %d of table %s: %w", r, table, err)
			}
		}
		last := len(indices) - 1
		records = append(records, dataset.Record{Class: indices[last], Features: indices[:last:last]})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("reading table %s: %v", table, err)
	}
	c, err := b.Build()
	if err != nil {
		return nil, err
	}
	return &dataset.Dataset{Catalog: c, Records: records}, nil
}

func selectQuery(table string, names []string) (string, error) {
	quotedTable, err := ColumnName(table)
	if err != nil {
		return "", fmt.Errorf("invalid table name: %v", err)
	}
	var buf bytes.Buffer
	buf.WriteString("SELECT ")
	for i, name := range names {
		column, err := ColumnName(name)
		if err != nil {
			return "", err
		}
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(column)
	}
	buf.WriteString(" FROM ")
	buf.WriteString(quotedTable)
	return buf.String(), nil
}
