package dbexport

const (
	// DefaultBlockingFactor is the number of rows read per block when no
	// -blockingfactor value is given.
	DefaultBlockingFactor = 500

	// ProgressInterval is the row cadence at which progress is reported.
	ProgressInterval = 500
)

// ExportConfig holds the resolved arguments of one export run.
//
// The first group of fields comes from the command line. The second group is
// filled in by Derive and must not be set by hand.
type ExportConfig struct {
	DatabaseName    string
	LibraryName     string
	FileName        string
	OutputDirectory string

	IncludeHeadings bool
	ShowProgress    bool
	TabDelimiter    bool
	WriteSchemaFile bool
	BlockingFactor  int

	Delimiter                string
	LibraryNameForOutputFile string
	OutputFileName           string
	OutputSchemaFileName     string
}

// NewExportConfig returns a config carrying the flag defaults.
func NewExportConfig() ExportConfig {
	return ExportConfig{
		IncludeHeadings: true,
		BlockingFactor:  DefaultBlockingFactor,
	}
}
