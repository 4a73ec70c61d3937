package dbexport

import (
	"context"
	"database/sql"
	"fmt"
	"io"
)

// ListTables writes the names of the tables in library to w, one per line.
func ListTables(ctx context.Context, db *sql.DB, dialect Dialect, library string, w io.Writer) error {
	query, args := dialect.tablesQuery(dialect, library)
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error querying tables: %w", err)
	}
	defer rows.Close()

	fmt.Fprintf(w, "Tables in library '%s':\n", library)
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return fmt.Errorf("error scanning table name: %w", err)
		}
		fmt.Fprintln(w, tableName)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("row error: %w", err)
	}
	return nil
}

// ListFields writes the schema table of library/file to w.
func ListFields(ctx context.Context, source *SQLSource, library, file string, w io.Writer) error {
	names, types, err := source.Fields(ctx, library, file)
	if err != nil {
		return err
	}
	return WriteSchema(w, names, types)
}
