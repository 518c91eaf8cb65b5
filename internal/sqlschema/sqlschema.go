// Package sqlschema reads relation headings from the tables of a SQLite
// database, so that candidate keys can be found for an existing table.
package sqlschema

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	// pure go sqlite driver, registered as "sqlite"
	_ "modernc.org/sqlite"

	"github.com/jonlawlor/candkey/att"
)

// ErrNoTable is returned when the table does not exist.
var ErrNoTable = errors.New("sqlschema: no such table")

// Open opens the SQLite database at path read-only.  The file must exist.
func Open(path string) (*sql.DB, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("sqlschema: open %s: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("sqlschema: open %s: %w", path, err)
	}
	dsn := url.URL{Scheme: "file", Path: abs, RawQuery: "mode=ro"}
	db, err := sql.Open("sqlite", dsn.String())
	if err != nil {
		return nil, fmt.Errorf("sqlschema: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlschema: open %s: %w", path, err)
	}
	return db, nil
}

// Heading returns the column names of table as a set of attributes.
func Heading(ctx context.Context, db *sql.DB, table string) (att.Set, error) {
	cols, err := Columns(ctx, db, table)
	if err != nil {
		return nil, err
	}
	return att.NewSet(cols...), nil
}

// Columns returns the column names of table in the order they are declared.
func Columns(ctx context.Context, db *sql.DB, table string) ([]att.Attribute, error) {
	// table_info can't take a bound parameter as a table name, but the
	// table valued function form can.
	rows, err := db.QueryContext(ctx, "SELECT name FROM pragma_table_info(?) ORDER BY cid", table)
	if err != nil {
		return nil, fmt.Errorf("sqlschema: columns of %s: %w", table, err)
	}
	defer rows.Close()

	var cols []att.Attribute
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("sqlschema: columns of %s: %w", table, err)
		}
		cols = append(cols, att.Attribute(name))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlschema: columns of %s: %w", table, err)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoTable, table)
	}
	return cols, nil
}

// Tables returns the names of the tables in the database, in alphabetical
// order.
func Tables(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx, "SELECT name FROM sqlite_schema WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("sqlschema: tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("sqlschema: tables: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
