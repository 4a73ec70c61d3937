package cli

import (
	"fmt"
	"io"
)

// ShowUsage prints the export usage instructions to w.
func ShowUsage(w io.Writer) {
	fmt.Fprint(w, `Export a DataGate file to either a comma- or tab-separated file.

Usage:
    exporttocsv <databaseName> <library> <file> [outputPath] [flags]
    exporttocsv tables <databaseName> <library>
    exporttocsv fields <databaseName> <library> <file>
    exporttocsv version

  Required arguments, in this order:
    <databaseName>   Database name. Quote it if it contains blanks.
    <library>        Library name. Use / for the root library.
    <file>           File name.

  Optional arguments:
    <outputPath>     Existing directory the output files are written to.
                     Must be the fourth argument that is not a flag; flags
                     may come before or after it. Defaults to the current
                     user's Documents folder.

  Flags (any order; -flag and --flag are equivalent):
    -help                 Show this help.
    -noheadings           Do not write field names as the first line.
    -showprogress         Show progress while rows are exported.
    -tabdelimiter         Separate fields with a tab instead of a comma.
    -writeschemafile      Also write a schema file listing each field's type.
    -blockingfactor <n>   Rows read per block (default 500). Values between
                          500 and 1000 may help performance.
    -pause                Wait for Enter before exiting.

  Connection flags (can also be set via environment variables):
    --config <file>       Named database file (env: EXPORTTOCSV_CONFIG,
                          default: exporttocsv.yaml if present)
    --driver <name>       sqlserver, sqlite3 or duckdb (env: EXPORTTOCSV_DRIVER)
    --dsn <dsn>           Data source name (env: EXPORTTOCSV_DSN)
    --server             SQL Server hostname or IP (env: MSSQL_SERVER)
    --port               SQL Server port (env: MSSQL_PORT)
    --user               SQL Server username (env: MSSQL_USER)
    --password           SQL Server password (env: MSSQL_PASSWORD)

Output file:
    <outputPath>/<databaseName>_<library>_<file>.txt
Schema file:
    <outputPath>/<databaseName>_<library>_<file>.schema.txt

The database name is lowercased and stripped of characters that are not
valid in file names: '*PUBLIC/DG Net Local' becomes 'public_dg_net_local'.
`)
}
