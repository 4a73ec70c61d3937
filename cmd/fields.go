package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"exporttocsv/cli"
	"exporttocsv/dbexport"
	"exporttocsv/logging"
)

var fieldsConn cli.ConnectionOptions

var fieldsCmd = &cobra.Command{
	Use:   "fields <databaseName> <library> <file>",
	Short: "Print the field names and types of a file",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.FromEnv(os.Getenv)
		return withDB(cmd.Context(), args[0], fieldsConn, logger, func(conn connection) error {
			source := dbexport.NewSQLSource(conn.db, conn.dialect, logger)
			err := dbexport.ListFields(conn.ctx, source, args[1], args[2], cmd.OutOrStdout())
			return withTableHint(err, logger)
		})
	},
}

func init() {
	addConnectionFlags(fieldsCmd, &fieldsConn)
	rootCmd.AddCommand(fieldsCmd)
}
