package dbexport

import (
	"fmt"
	"strings"
)

// Dialect holds the SQL differences between the supported drivers.
type Dialect struct {
	Driver string

	quote       func(name string) string
	tablesQuery func(d Dialect, library string) (string, []interface{})
}

var dialects = map[string]Dialect{
	"sqlserver": {
		Driver: "sqlserver",
		quote: func(name string) string {
			return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
		},
		tablesQuery: func(_ Dialect, library string) (string, []interface{}) {
			if IsRootLibrary(library) {
				return `SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_TYPE = 'BASE TABLE' AND TABLE_SCHEMA = SCHEMA_NAME() ORDER BY TABLE_NAME`, nil
			}
			return `SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_TYPE = 'BASE TABLE' AND TABLE_SCHEMA = @p1 ORDER BY TABLE_NAME`, []interface{}{library}
		},
	},
	"sqlite3": {
		Driver: "sqlite3",
		quote:  doubleQuote,
		tablesQuery: func(d Dialect, library string) (string, []interface{}) {
			master := "sqlite_master"
			if !IsRootLibrary(library) {
				master = d.quote(library) + ".sqlite_master"
			}
			return fmt.Sprintf(`SELECT name FROM %s WHERE type = 'table' AND name NOT LIKE 'sqlite_%%' ORDER BY name`, master), nil
		},
	},
	"duckdb": {
		Driver: "duckdb",
		quote:  doubleQuote,
		tablesQuery: func(_ Dialect, library string) (string, []interface{}) {
			if IsRootLibrary(library) {
				return `SELECT table_name FROM information_schema.tables WHERE table_type = 'BASE TABLE' AND table_schema = current_schema() ORDER BY table_name`, nil
			}
			return `SELECT table_name FROM information_schema.tables WHERE table_type = 'BASE TABLE' AND table_schema = ? ORDER BY table_name`, []interface{}{library}
		},
	},
}

// DialectFor returns the dialect registered for a database/sql driver name.
func DialectFor(driver string) (Dialect, error) {
	name := strings.ToLower(strings.TrimSpace(driver))
	if name == "mssql" {
		name = "sqlserver"
	}
	d, ok := dialects[name]
	if !ok {
		return Dialect{}, fmt.Errorf("unsupported driver %q (supported: sqlserver, sqlite3, duckdb)", driver)
	}
	return d, nil
}

// QualifiedName returns the quoted table reference for file in library. The
// root library leaves the table unqualified.
func (d Dialect) QualifiedName(library, file string) string {
	if IsRootLibrary(library) || library == "" {
		return d.quote(file)
	}
	return d.quote(library) + "." + d.quote(file)
}

func doubleQuote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
