/*
Package sqldataset stores dataset tables on SQL databases and reads them
back.

A dataset table is stored as a database table with a TEXT column for every
feature, followed by one for the label and an "id" primary key column that
keeps the insertion order of the records. SQLite3 and PostgreSQL databases
are supported.
*/
package sqldataset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	// Import of postgres driver
	_ "github.com/lib/pq"
	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

const idColumn = "id"

/*
Dialect holds what changes between the supported databases: the name of the
database/sql driver, the definition of the id column and the placeholder
syntax for statement parameters.
*/
type Dialect struct {
	Driver      string
	idColumnDef string
	placeholder func(int) string
}

var (
	// SQLite3 is the dialect for SQLite3 databases
	SQLite3 = &Dialect{
		Driver:      "sqlite3",
		idColumnDef: `"id" INTEGER PRIMARY KEY AUTOINCREMENT`,
		placeholder: func(int) string { return "?" },
	}
	// Postgres is the dialect for PostgreSQL databases
	Postgres = &Dialect{
		Driver:      "postgres",
		idColumnDef: `"id" SERIAL PRIMARY KEY`,
		placeholder: func(i int) string { return fmt.Sprintf("$%d", i+1) },
	}
)

/*
DialectFor takes the name of a driver ("sqlite3" or "postgres") and returns
its Dialect or an error if it is not supported.
*/
func DialectFor(driver string) (*Dialect, error) {
	switch driver {
	case SQLite3.Driver:
		return SQLite3, nil
	case Postgres.Driver, "postgresql":
		return Postgres, nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", driver)
}

/*
Store gives access to dataset tables on a database.
*/
type Store struct {
	db      *sql.DB
	dialect *Dialect
}

/*
Open takes a driver name and a data source name and returns a Store on the
database or an error if the database cannot be opened.
*/
func Open(driver, dsn string) (*Store, error) {
	d, err := DialectFor(driver)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(d.Driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s database", d.Driver)
	}
	return New(db, d), nil
}

// New takes an open database and its dialect and returns a Store on it.
func New(db *sql.DB, d *Dialect) *Store {
	return &Store{db, d}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

/*
Create takes a context, the name of a database table and a dataset table and
creates the database table with the records of the dataset, or returns an
error. The records are inserted in a single transaction.
*/
func (s *Store) Create(ctx context.Context, name string, t *dataset.Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	columns := append(append([]string{}, t.Features...), t.Label)
	for _, c := range append([]string{name}, columns...) {
		if err := checkIdentifier(c); err != nil {
			return err
		}
	}
	var createStmt bytes.Buffer
	createStmt.WriteString(fmt.Sprintf(`CREATE TABLE "%s" (`, name))
	for _, c := range columns {
		createStmt.WriteString(fmt.Sprintf(`"%s" TEXT NOT NULL, `, c))
	}
	createStmt.WriteString(s.dialect.idColumnDef)
	createStmt.WriteString(")")
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	defer tx.Rollback()
	if _, err = tx.ExecContext(ctx, createStmt.String()); err != nil {
		return errors.Wrapf(err, "creating table %s", name)
	}
	placeholders := make([]string, 0, len(columns))
	for i := range columns {
		placeholders = append(placeholders, s.dialect.placeholder(i))
	}
	insertStmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`INSERT INTO "%s" ("%s") VALUES (%s)`,
		name, strings.Join(columns, `", "`), strings.Join(placeholders, ", ")))
	if err != nil {
		return errors.Wrap(err, "preparing insert statement")
	}
	defer insertStmt.Close()
	values := make([]interface{}, len(columns))
	for i, r := range t.Records {
		for j, v := range r {
			values[j] = fmt.Sprintf("%v", v)
		}
		if _, err = insertStmt.ExecContext(ctx, values...); err != nil {
			return errors.Wrapf(err, "inserting record %d", i)
		}
	}
	return errors.Wrap(tx.Commit(), "committing records")
}

/*
Read takes a context, the name of a database table and the name of its label
column and returns the dataset table stored on it, with the records in
insertion order. If label is empty, the last column before the id is taken
as the label.
*/
func (s *Store) Read(ctx context.Context, name string, label string) (*dataset.Table, error) {
	if err := checkIdentifier(name); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM "%s" ORDER BY "%s"`, name, idColumn))
	if err != nil {
		return nil, errors.Wrapf(err, "querying table %s", name)
	}
	defer rows.Close()
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	var valueColumns []int
	var names []string
	for i, c := range columns {
		if c != idColumn {
			valueColumns = append(valueColumns, i)
			names = append(names, c)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("table %s has no columns", name)
	}
	labelIndex := len(names) - 1
	if label != "" {
		labelIndex = -1
		for i, n := range names {
			if n == label {
				labelIndex = i
			}
		}
		if labelIndex < 0 {
			return nil, fmt.Errorf("table %s has no label column %q", name, label)
		}
	}
	t := &dataset.Table{
		Features: feature.New(names[:labelIndex]...),
		Label:    names[labelIndex],
	}
	t.Features = append(t.Features, names[labelIndex+1:]...)
	raw := make([]sql.NullString, len(columns))
	dest := make([]interface{}, len(columns))
	for i := range raw {
		dest[i] = &raw[i]
	}
	for j := 0; rows.Next(); j++ {
		if err = rows.Scan(dest...); err != nil {
			return nil, errors.Wrapf(err, "scanning record %d", j)
		}
		r := make(dataset.Record, 0, len(names))
		var l interface{}
		for i, c := range valueColumns {
			if !raw[c].Valid {
				return nil, dataset.NewPreconditionError("read", "record %d has no value for %s", j, names[i])
			}
			if i == labelIndex {
				l = raw[c].String
			} else {
				r = append(r, raw[c].String)
			}
		}
		t.Records = append(t.Records, append(r, l))
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if err = t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func checkIdentifier(name string) error {
	if name == idColumn {
		return fmt.Errorf(`'%s' is reserved and cannot be used as a column name`, name)
	}
	if name == "" || strings.ContainsAny(name, `"`) {
		return fmt.Errorf(`invalid name '%s'`, name)
	}
	return nil
}
