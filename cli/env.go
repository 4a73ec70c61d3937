package cli

import (
	"fmt"
	"os"
	"strings"
)

const defaultDriver = "sqlserver"

// ResolveConnection returns the driver name and data source name used to
// open database.
//
// A database listed in the config file uses its entry; ${VAR} references in
// the entry's DSN are expanded from the environment. Otherwise the driver
// comes from --driver or EXPORTTOCSV_DRIVER (default sqlserver). SQL Server
// connections are built from the MSSQL_* variables with the database name as
// the catalog; sqlite3 and duckdb open the file named by --dsn,
// EXPORTTOCSV_DSN or the database name, read-only.
func ResolveConnection(database string, opts ConnectionOptions, getenv func(string) string) (driver, dsn string, err error) {
	files, err := LoadDatabases(configPath(opts.ConfigPath, getenv))
	if err != nil {
		return "", "", err
	}
	if entry, ok := files.Lookup(database); ok {
		return entry.Driver, os.Expand(entry.DSN, getenv), nil
	}

	get := func(flagVal, envVar string) string {
		if flagVal != "" {
			return flagVal
		}
		return strings.TrimSpace(getenv(envVar))
	}
	driver = strings.ToLower(get(opts.Driver, "EXPORTTOCSV_DRIVER"))
	if driver == "" {
		driver = defaultDriver
	}
	if dsn = get(opts.DSN, "EXPORTTOCSV_DSN"); dsn != "" {
		return driver, dsn, nil
	}

	switch driver {
	case "sqlserver", "mssql":
		dsn, err = sqlServerDSN(database, opts, get)
		return driver, dsn, err
	case "sqlite3":
		return driver, "file:" + database + "?mode=ro", nil
	case "duckdb":
		return driver, database + "?access_mode=READ_ONLY", nil
	default:
		return "", "", fmt.Errorf("unsupported driver %q (supported: sqlserver, sqlite3, duckdb)", driver)
	}
}

func sqlServerDSN(database string, opts ConnectionOptions, get func(flagVal, envVar string) string) (string, error) {
	server := get(opts.Server, "MSSQL_SERVER")
	port := get(opts.Port, "MSSQL_PORT")
	user := get(opts.User, "MSSQL_USER")
	password := get(opts.Password, "MSSQL_PASSWORD")
	missingVars := []string{}
	if server == "" {
		missingVars = append(missingVars, "MSSQL_SERVER (or --server)")
	}
	if port == "" {
		missingVars = append(missingVars, "MSSQL_PORT (or --port)")
	}
	if user == "" {
		missingVars = append(missingVars, "MSSQL_USER (or --user)")
	}
	if password == "" {
		missingVars = append(missingVars, "MSSQL_PASSWORD (or --password)")
	}
	if len(missingVars) > 0 {
		example := `
Example .env file:
MSSQL_SERVER=localhost
MSSQL_PORT=1433
MSSQL_USER=youruser
MSSQL_PASSWORD=yourpassword
`
		return "", fmt.Errorf("missing required connection parameters: %s\nYou can set these via environment variables, CLI flags or a %s file.\n%s", strings.Join(missingVars, ", "), DefaultConfigFile, example)
	}
	return fmt.Sprintf("server=%s;user id=%s;password=%s;port=%s;database=%s;encrypt=disable", server, user, password, port, database), nil
}
