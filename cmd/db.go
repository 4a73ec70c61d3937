// Package cmd contains the command line of the exporttocsv tool.
//
// This file opens the source database for a command. The connection is
// chosen by cli.ResolveConnection from the named-database file, the
// connection flags and the environment:
//   - EXPORTTOCSV_CONFIG, EXPORTTOCSV_DRIVER, EXPORTTOCSV_DSN
//   - MSSQL_SERVER, MSSQL_PORT, MSSQL_USER, MSSQL_PASSWORD for sqlserver
//
// Optionally, a .env file can be used for local development.
package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"exporttocsv/cli"
	"exporttocsv/dbexport"
)

// connection is what a command gets from withDB.
type connection struct {
	ctx     context.Context
	db      *sql.DB
	dialect dbexport.Dialect
}

// sqlOpen and dbPing are package-level variables to allow test injection.
var sqlOpen = sql.Open
var dbPing = func(ctx context.Context, db *sql.DB) error { return db.PingContext(ctx) }

// withDB opens the database named database, cancels the context on SIGINT or
// SIGTERM and calls fn with the live connection. The database is closed when
// fn returns.
func withDB(ctx context.Context, database string, opts cli.ConnectionOptions, logger *slog.Logger, fn func(conn connection) error) error {
	_ = godotenv.Load()
	driver, dsn, err := cli.ResolveConnection(database, opts, os.Getenv)
	if err != nil {
		return err
	}
	dialect, err := dbexport.DialectFor(driver)
	if err != nil {
		return err
	}
	db, err := sqlOpen(dialect.Driver, dsn)
	if err != nil {
		return fmt.Errorf("error creating connection pool: %w", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := dbPing(ctx, db); err != nil {
		return fmt.Errorf("cannot connect to database: %w", err)
	}
	logger.Debug("connected", "driver", dialect.Driver, "database", database)
	return fn(connection{ctx: ctx, db: db, dialect: dialect})
}

// addConnectionFlags binds the connection flags of a subcommand to opts.
func addConnectionFlags(cmd *cobra.Command, opts *cli.ConnectionOptions) {
	f := cmd.Flags()
	f.StringVar(&opts.ConfigPath, "config", "", "Named database file (env: EXPORTTOCSV_CONFIG)")
	f.StringVar(&opts.Driver, "driver", "", "sqlserver, sqlite3 or duckdb (env: EXPORTTOCSV_DRIVER)")
	f.StringVar(&opts.DSN, "dsn", "", "Data source name (env: EXPORTTOCSV_DSN)")
	f.StringVar(&opts.Server, "server", "", "SQL Server hostname or IP (env: MSSQL_SERVER)")
	f.StringVar(&opts.Port, "port", "", "SQL Server port (env: MSSQL_PORT)")
	f.StringVar(&opts.User, "user", "", "SQL Server username (env: MSSQL_USER)")
	f.StringVar(&opts.Password, "password", "", "SQL Server password (env: MSSQL_PASSWORD)")
}
