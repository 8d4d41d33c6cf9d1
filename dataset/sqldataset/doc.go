/*
Package sqldataset reads datasets from a table of an SQL database.

Every declared feature is expected to be a column of the table with the
feature name. Discrete features are read as text and matched against their
available values, bucketed features are read as numbers. NULL values are
read as the unknown value, which only non-label discrete features can take:
a NULL in a bucketed or label column fails the read.

SQLite3 database files and PostgreSQL connection URLs (postgres:// or
postgresql://) are supported.
*/
package sqldataset
