package dbexport

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrSinkClosed is returned when a row arrives after the sink was closed.
	ErrSinkClosed = errors.New("row sink is closed")
	// ErrRowSequence is returned when row counters are not 1, 2, 3, ...
	ErrRowSequence = errors.New("row counter out of sequence")
)

type sinkState int

const (
	stateIdle sinkState = iota
	stateInitializing
	stateStreaming
	stateClosed
)

func (s sinkState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateInitializing:
		return "initializing"
	case stateStreaming:
		return "streaming"
	case stateClosed:
		return "closed"
	}
	return fmt.Sprintf("sinkState(%d)", int(s))
}

// RowEventSink writes row events to the delimited output file.
//
// The output file is created by the first row (or by Complete when there are
// no rows), together with the schema file and heading line when requested.
// A sink is used by one goroutine only.
type RowEventSink struct {
	cfg      ExportConfig
	reporter *Reporter

	state sinkState
	file  io.WriteCloser
	out   *bufio.Writer
	rows  int
}

// NewRowEventSink returns an idle sink for cfg, which must already be derived.
func NewRowEventSink(cfg ExportConfig, reporter *Reporter) *RowEventSink {
	if reporter == nil {
		reporter = NewReporter(io.Discard, false)
	}
	return &RowEventSink{cfg: cfg, reporter: reporter}
}

// OnRow writes one row.
func (s *RowEventSink) OnRow(e RowEvent) error {
	switch s.state {
	case stateClosed:
		return ErrSinkClosed
	case stateIdle:
		if e.CurrentRowCounter != 1 {
			return fmt.Errorf("%w: first row is %d", ErrRowSequence, e.CurrentRowCounter)
		}
		if err := s.initialize(e.FieldNames, e.FieldTypes); err != nil {
			return err
		}
	default:
		if e.CurrentRowCounter != s.rows+1 {
			return fmt.Errorf("%w: row %d after row %d", ErrRowSequence, e.CurrentRowCounter, s.rows)
		}
	}

	if _, err := s.out.WriteString(FormatRow(e, s.cfg.Delimiter) + "\n"); err != nil {
		return fmt.Errorf("error writing row %d: %w", e.CurrentRowCounter, err)
	}
	s.rows++

	if s.cfg.ShowProgress && e.CurrentRowCounter%ProgressInterval == 0 {
		s.reporter.Progress(e.CurrentRowCounter, e.TotalRowsCounter)
	}
	return nil
}

// Complete finishes the export. A sink that saw no rows still creates the
// output file from names and types before closing it.
func (s *RowEventSink) Complete(names, types []string) error {
	if s.state == stateIdle {
		if err := s.initialize(names, types); err != nil {
			return err
		}
	}
	return s.Close()
}

// Close flushes and closes the output file. Calling it again is a no-op.
func (s *RowEventSink) Close() error {
	if s.state == stateClosed {
		return nil
	}
	s.state = stateClosed
	if s.file == nil {
		return nil
	}
	s.reporter.EndProgress()
	flushErr := s.out.Flush()
	closeErr := s.file.Close()
	s.file, s.out = nil, nil
	if flushErr != nil {
		return fmt.Errorf("error writing output file: %w", flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("error closing output file: %w", closeErr)
	}
	return nil
}

// RowsWritten returns the number of data lines written, not counting the
// heading line.
func (s *RowEventSink) RowsWritten() int {
	return s.rows
}

func (s *RowEventSink) initialize(names, types []string) error {
	s.state = stateInitializing
	file, err := createFile(s.cfg.OutputFileName)
	if err != nil {
		s.state = stateClosed
		return fmt.Errorf("error creating output file: %w", err)
	}
	s.file = file
	s.out = bufio.NewWriter(file)

	if s.cfg.WriteSchemaFile {
		if err := WriteSchemaFile(s.cfg.OutputSchemaFileName, names, types); err != nil {
			return err
		}
	}
	if s.cfg.IncludeHeadings {
		if _, err := s.out.WriteString(strings.Join(names, s.cfg.Delimiter) + "\n"); err != nil {
			return fmt.Errorf("error writing column headings: %w", err)
		}
	}
	s.state = stateStreaming
	return nil
}

// FormatRow joins the values of e with delimiter in field order. String
// fields are trimmed and wrapped in double quotes; other fields are written
// as they are.
func FormatRow(e RowEvent, delimiter string) string {
	fields := make([]string, len(e.FieldNames))
	for i, name := range e.FieldNames {
		v := e.Values[name]
		if i < len(e.FieldTypes) && IsTextual(e.FieldTypes[i]) {
			fields[i] = `"` + strings.TrimSpace(v) + `"`
		} else {
			fields[i] = v
		}
	}
	return strings.Join(fields, delimiter)
}
