// exporttocsv exports a DataGate file to a comma- or tab-separated text file.
//
// Usage:
//
//	exporttocsv <databaseName> <library> <file> [outputPath] [flags]
//	  Export every row of the file. Run with -help for the flags.
//	exporttocsv tables <databaseName> <library>
//	  List the files in a library
//	exporttocsv fields <databaseName> <library> <file>
//	  Print the field names and types of a file
package main

import (
	"os"

	_ "github.com/denisenkom/go-mssqldb"
	_ "github.com/marcboeker/go-duckdb"
	_ "github.com/mattn/go-sqlite3"

	"exporttocsv/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
