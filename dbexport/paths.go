package dbexport

import (
	"path/filepath"
	"strings"
)

const (
	tabDelimiter   = "\t"
	commaDelimiter = ","

	// rootLibraryName replaces a library given as a bare path separator, which
	// cannot be embedded in a file name.
	rootLibraryName = "#root"
)

var databaseNameReplacer = strings.NewReplacer(
	"*", "",
	"/", "_",
	`\`, "_",
	" ", "_",
	":", "",
	"?", "",
	`"`, "",
	"<", "",
	">", "",
	"|", "",
)

// NormalizeDatabaseName turns a database name into a token that is safe to
// use inside a file name: "*PUBLIC/DG Net Local" becomes "public_dg_net_local".
func NormalizeDatabaseName(name string) string {
	return databaseNameReplacer.Replace(strings.ToLower(strings.TrimSpace(name)))
}

// IsRootLibrary reports whether library names the root library ("/" or "\").
func IsRootLibrary(library string) bool {
	return library == "/" || library == `\`
}

// Derive returns a copy of c with the delimiter and output file names filled
// in. It has no side effects and gives the same result for the same input.
func (c ExportConfig) Derive() ExportConfig {
	if c.TabDelimiter {
		c.Delimiter = tabDelimiter
	} else {
		c.Delimiter = commaDelimiter
	}

	if IsRootLibrary(c.LibraryName) {
		c.LibraryNameForOutputFile = rootLibraryName
	} else {
		c.LibraryNameForOutputFile = c.LibraryName
	}

	stem := strings.Join([]string{
		NormalizeDatabaseName(c.DatabaseName),
		c.LibraryNameForOutputFile,
		c.FileName,
	}, "_")
	c.OutputFileName = filepath.Join(c.OutputDirectory, stem+".txt")
	c.OutputSchemaFileName = filepath.Join(c.OutputDirectory, stem+".schema.txt")
	return c
}
