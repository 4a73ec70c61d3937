package dbexport

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// SQLSource reads tables through database/sql. A library is a schema, and the
// root library means the connection's default schema.
type SQLSource struct {
	db      *sql.DB
	dialect Dialect
	logger  *slog.Logger
}

// NewSQLSource returns a source reading from db with the given dialect.
func NewSQLSource(db *sql.DB, dialect Dialect, logger *slog.Logger) *SQLSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLSource{db: db, dialect: dialect, logger: logger}
}

// Open counts the rows of the table and starts reading it. Rows are scanned
// in blocks of blockingFactor.
func (s *SQLSource) Open(ctx context.Context, library, file string, blockingFactor int) (RowStream, error) {
	if blockingFactor <= 0 {
		blockingFactor = DefaultBlockingFactor
	}
	table := s.dialect.QualifiedName(library, file)

	var totalRows int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&totalRows); err != nil {
		return nil, fmt.Errorf("could not get total row count: %w", err)
	}
	s.logger.Debug("opening table", "table", table, "total_rows", totalRows, "blocking_factor", blockingFactor)

	rows, err := s.db.QueryContext(ctx, "SELECT * FROM "+table)
	if err != nil {
		return nil, fmt.Errorf("error querying table rows: %w", err)
	}
	names, tags, dbTypes, err := describeColumns(rows)
	if err != nil {
		rows.Close()
		return nil, err
	}
	return &sqlRowStream{
		rows:           rows,
		names:          names,
		tags:           tags,
		dbTypes:        dbTypes,
		total:          totalRows,
		blockingFactor: blockingFactor,
	}, nil
}

// Fields returns the field names and type tags of a table without reading
// any rows.
func (s *SQLSource) Fields(ctx context.Context, library, file string) (names, types []string, err error) {
	table := s.dialect.QualifiedName(library, file)
	rows, err := s.db.QueryContext(ctx, "SELECT * FROM "+table+" WHERE 1 = 0")
	if err != nil {
		return nil, nil, fmt.Errorf("error querying fields: %w", err)
	}
	defer rows.Close()
	names, types, _, err = describeColumns(rows)
	return names, types, err
}

func describeColumns(rows *sql.Rows) (names, tags, dbTypes []string, err error) {
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error getting columns: %w", err)
	}
	names = make([]string, len(colTypes))
	tags = make([]string, len(colTypes))
	dbTypes = make([]string, len(colTypes))
	for i, ct := range colTypes {
		names[i] = ct.Name()
		dbTypes[i] = ct.DatabaseTypeName()
		tags[i] = TypeTag(dbTypes[i])
	}
	return names, tags, dbTypes, nil
}

type sqlRowStream struct {
	rows    Rows
	names   []string
	tags    []string
	dbTypes []string
	total   int64

	blockingFactor int
	block          []map[string]string
	exhausted      bool
	counter        int
	current        RowEvent
	err            error
}

func (s *sqlRowStream) Next() bool {
	if s.err != nil {
		return false
	}
	if len(s.block) == 0 && !s.readBlock() {
		return false
	}
	s.counter++
	s.current = RowEvent{
		FieldNames:        s.names,
		FieldTypes:        s.tags,
		Values:            s.block[0],
		CurrentRowCounter: s.counter,
		TotalRowsCounter:  s.total,
	}
	s.block[0] = nil
	s.block = s.block[1:]
	return true
}

// readBlock scans up to blockingFactor rows ahead and reports whether any
// were read.
func (s *sqlRowStream) readBlock() bool {
	if s.exhausted {
		return false
	}
	s.block = make([]map[string]string, 0, s.blockingFactor)
	for len(s.block) < s.blockingFactor {
		if !s.rows.Next() {
			s.exhausted = true
			if err := s.rows.Err(); err != nil {
				s.err = fmt.Errorf("row error: %w", err)
				return false
			}
			break
		}
		values, err := ScanRowStrings(s.rows, s.names, s.tags, s.dbTypes)
		if err != nil {
			s.err = err
			return false
		}
		s.block = append(s.block, values)
	}
	return len(s.block) > 0
}

func (s *sqlRowStream) Event() RowEvent { return s.current }

func (s *sqlRowStream) Fields() (names, types []string) { return s.names, s.tags }

func (s *sqlRowStream) Err() error { return s.err }

func (s *sqlRowStream) Close() error { return s.rows.Close() }
