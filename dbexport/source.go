package dbexport

import "context"

// RowEvent describes one row read from a source table.
//
// FieldNames and FieldTypes are the same for every event of a run.
// CurrentRowCounter starts at 1 and grows by one with each event.
type RowEvent struct {
	FieldNames        []string
	FieldTypes        []string
	Values            map[string]string
	CurrentRowCounter int
	TotalRowsCounter  int64
}

// RowStream is a single-consumer iterator over the rows of one table,
// modelled on *sql.Rows. Callers must Close it when done.
type RowStream interface {
	Next() bool
	Event() RowEvent
	// Fields returns the field names and type tags, also when the table is
	// empty.
	Fields() (names, types []string)
	Err() error
	Close() error
}

// RowSource opens row streams for tables of one database.
type RowSource interface {
	Open(ctx context.Context, library, file string, blockingFactor int) (RowStream, error)
}
