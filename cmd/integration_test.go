//go:build integration
// +build integration

package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Integration test: requires a running SQL Server instance, the MSSQL_*
// variables and a table named by MSSQL_TEST_TABLE in schema MSSQL_TEST_SCHEMA.
func TestIntegration_ExportFromSQLServer(t *testing.T) {
	database := os.Getenv("MSSQL_TEST_DATABASE")
	schema := os.Getenv("MSSQL_TEST_SCHEMA")
	table := os.Getenv("MSSQL_TEST_TABLE")
	if database == "" || schema == "" || table == "" {
		t.Skip("MSSQL_TEST_DATABASE, MSSQL_TEST_SCHEMA or MSSQL_TEST_TABLE not set; skipping integration test")
	}
	dir := t.TempDir()
	code, out, errOut := executeArgs(t, "", database, schema, table, dir, "--driver", "sqlserver", "-writeschemafile")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	if !strings.Contains(out, "rows written.") {
		t.Errorf("unexpected summary: %s", out)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "*.txt"))
	if len(matches) != 2 {
		t.Errorf("expected data and schema files, got %v", matches)
	}
}
