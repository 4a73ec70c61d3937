package dbexport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Runner drives one export: it opens the table on Source, feeds every row to
// a RowEventSink and reports the result.
type Runner struct {
	Source   RowSource
	Reporter *Reporter
	Logger   *slog.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

// Run exports the table named by cfg and returns the elapsed time in
// milliseconds. Open streams are closed before Run returns, also on error.
func (r *Runner) Run(ctx context.Context, cfg ExportConfig) (int64, error) {
	if r.Source == nil {
		return 0, errors.New("no row source configured")
	}
	now := r.Now
	if now == nil {
		now = time.Now
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	reporter := r.Reporter
	if reporter == nil {
		reporter = NewReporter(io.Discard, false)
	}

	cfg = cfg.Derive()
	start := now()
	logger.Debug("starting export",
		"database", cfg.DatabaseName,
		"library", cfg.LibraryName,
		"file", cfg.FileName,
		"output", cfg.OutputFileName,
		"blocking_factor", cfg.BlockingFactor)

	stream, err := r.Source.Open(ctx, cfg.LibraryName, cfg.FileName, cfg.BlockingFactor)
	if err != nil {
		return 0, err
	}
	defer stream.Close()

	sink := NewRowEventSink(cfg, reporter)
	defer sink.Close()

	for stream.Next() {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("export interrupted: %w", err)
		}
		if err := sink.OnRow(stream.Event()); err != nil {
			return 0, err
		}
	}
	if err := stream.Err(); err != nil {
		return 0, err
	}
	names, types := stream.Fields()
	if err := sink.Complete(names, types); err != nil {
		return 0, err
	}

	finished := now()
	elapsed := finished.Sub(start)
	reporter.Summary(Summary{
		DatabaseName:   cfg.DatabaseName,
		LibraryName:    cfg.LibraryName,
		FileName:       cfg.FileName,
		OutputFileName: cfg.OutputFileName,
		CompletedAt:    finished,
		Rows:           sink.RowsWritten(),
		Elapsed:        elapsed,
	})
	logger.Debug("export finished", "rows", sink.RowsWritten(), "elapsed", elapsed)
	return elapsed.Milliseconds(), nil
}
