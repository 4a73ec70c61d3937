package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"exporttocsv/cli"
	"exporttocsv/dbexport"
	"exporttocsv/logging"
)

var tablesConn cli.ConnectionOptions

var tablesCmd = &cobra.Command{
	Use:   "tables <databaseName> <library>",
	Short: "List all files in a library",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.FromEnv(os.Getenv)
		return withDB(cmd.Context(), args[0], tablesConn, logger, func(conn connection) error {
			return dbexport.ListTables(conn.ctx, conn.db, conn.dialect, args[1], cmd.OutOrStdout())
		})
	},
}

func init() {
	addConnectionFlags(tablesCmd, &tablesConn)
	rootCmd.AddCommand(tablesCmd)
}
