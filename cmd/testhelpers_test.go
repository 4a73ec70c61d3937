package cmd

import (
	"bytes"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/pflag"

	"exporttocsv/cli"
)

// containsAll returns true if all substrings in subs are present in s.
func containsAll(s string, subs []string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

// executeArgs runs the root command with args and returns the exit code and
// what was written to stdout and stderr.
func executeArgs(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Setenv("EXPORTTOCSV_CONFIG", "")
	t.Setenv("EXPORTTOCSV_DRIVER", "")
	t.Setenv("EXPORTTOCSV_DSN", "")
	resetCommandFlags()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs([]string{})
		resetCommandFlags()
	})
	code = Execute()
	return code, out.String(), errOut.String()
}

// resetCommandFlags puts every subcommand flag, including --help, back to
// its default. pflag keeps parsed values between executions of the same
// command tree.
func resetCommandFlags() {
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	tablesConn = cli.ConnectionOptions{}
	fieldsConn = cli.ConnectionOptions{}
}

// newCustomersDB creates a sqlite database file holding a customers table.
func newCustomersDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "local.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()
	stmts := []string{
		`CREATE TABLE customers (id INTEGER, name VARCHAR(30), balance DECIMAL(9,2))`,
		`INSERT INTO customers VALUES (1, '  Alice ', 10.5), (2, 'Bob', NULL), (3, 'Carol', 0)`,
		`CREATE TABLE orders (id INTEGER)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("failed to run %q: %v", stmt, err)
		}
	}
	return path
}
