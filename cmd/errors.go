package cmd

import (
	"fmt"
	"log/slog"
	"strings"
)

var invalidTablePatterns = []string{
	"is not a valid object name",
	"invalid object name",
	"object does not exist",
	"table does not exist",
	"does not exist",
	"invalid table name",
	"could not find object",
	"no such table",
	"catalog error: table with name",
}

// isInvalidTableError checks recursively for substrings indicating a
// missing or invalid table in any wrapped error.
func isInvalidTableError(err error, logger *slog.Logger) bool {
	origErr := err
	for err != nil {
		errStr := strings.ToLower(err.Error())
		for _, pat := range invalidTablePatterns {
			if strings.Contains(errStr, pat) {
				return true
			}
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	if origErr != nil {
		logger.Debug("not a missing table error", "error", origErr)
	}
	return false
}

// withTableHint adds a hint to errors caused by a missing table.
func withTableHint(err error, logger *slog.Logger) error {
	if err == nil || !isInvalidTableError(err, logger) {
		return err
	}
	return fmt.Errorf("%w.\n\nCheck that the library and file exist in the database and are spelled correctly. Use / as the library for files in the root library", err)
}
