package cmd

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

type wrapErr struct{ inner error }

func (w wrapErr) Error() string { return "wrap: " + w.inner.Error() }
func (w wrapErr) Unwrap() error { return w.inner }

type customErr struct{}

func (c customErr) Error() string { return "definitely not a table error" }

func TestIsInvalidTableError_UnwrapNoMatch(t *testing.T) {
	err := wrapErr{customErr{}}
	if isInvalidTableError(err, discardLogger) {
		t.Error("expected false for wrapped custom error")
	}
}

func TestIsInvalidTableError_Nil(t *testing.T) {
	if isInvalidTableError(nil, discardLogger) {
		t.Error("expected false for nil error")
	}
}

func TestIsInvalidTableError_MatchesPatterns(t *testing.T) {
	messages := []string{
		"mssql: Invalid object name 'examples.cmastnew'.",
		"'x' is not a valid object name",
		"object does not exist",
		"Table does not exist",
		"invalid table name",
		"could not find object",
		"no such table: cmastnew",
		"Catalog Error: Table with name cmastnew does not exist!",
	}
	for _, msg := range messages {
		err := fmt.Errorf("could not get total row count: %s", msg)
		if !isInvalidTableError(err, discardLogger) {
			t.Errorf("expected true for: %q", msg)
		}
	}
}

func TestIsInvalidTableError_Unwrap(t *testing.T) {
	base := errors.New("invalid object name")
	wrapped := wrapErr{fmt.Errorf("wrap1: %w", base)}
	if !isInvalidTableError(wrapped, discardLogger) {
		t.Error("expected true for wrapped error")
	}
}

func TestIsInvalidTableError_NoMatch(t *testing.T) {
	err := errors.New("some unrelated error")
	if isInvalidTableError(err, discardLogger) {
		t.Error("expected false for unrelated error")
	}
}

func TestWithTableHint(t *testing.T) {
	if withTableHint(nil, discardLogger) != nil {
		t.Error("nil error must stay nil")
	}
	other := errors.New("disk full")
	if got := withTableHint(other, discardLogger); got != other {
		t.Errorf("unrelated error changed: %v", got)
	}
	base := errors.New("no such table: nope")
	got := withTableHint(base, discardLogger)
	if !errors.Is(got, base) {
		t.Error("hinted error must wrap the original")
	}
	if !strings.Contains(got.Error(), "Check that the library and file exist") {
		t.Errorf("missing hint: %v", got)
	}
}
