package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"exporttocsv/cli"
	"exporttocsv/dbexport"
	"exporttocsv/logging"
)

var rootCmd = &cobra.Command{
	Use:   "exporttocsv <databaseName> <library> <file> [outputPath] [flags]",
	Short: "Export a DataGate file to a comma- or tab-separated file",
	Long: `Export every row of a DataGate file to a delimited text file, optionally
with a schema file describing its fields. Run with -help for all flags.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	RunE:               runExport,
}

// pauseBeforeExit is set by a resolved -pause flag.
var pauseBeforeExit bool

// Execute runs the command line and returns the process exit code.
func Execute() int {
	pauseBeforeExit = false
	code := 0
	if err := rootCmd.Execute(); err != nil {
		errOut := rootCmd.ErrOrStderr()
		dbexport.NewReporter(errOut, logging.IsTerminal(errOut)).Error(err)
		code = 1
	}
	if pauseBeforeExit {
		waitForEnter(rootCmd.OutOrStdout(), rootCmd.InOrStdin())
	}
	return code
}

func runExport(cmd *cobra.Command, args []string) error {
	opts, err := cli.Resolve(args)
	if errors.Is(err, cli.ErrHelp) {
		cli.ShowUsage(cmd.OutOrStdout())
		return nil
	}
	if err != nil {
		return err
	}
	pauseBeforeExit = opts.PauseBeforeExit

	out := cmd.OutOrStdout()
	reporter := dbexport.NewReporter(out, logging.IsTerminal(out))
	logger := logging.FromEnv(os.Getenv)
	if opts.Export.BlockingFactor != dbexport.DefaultBlockingFactor {
		reporter.Infof("BlockingFactor overridden to %d", opts.Export.BlockingFactor)
	}

	return withDB(cmd.Context(), opts.Export.DatabaseName, opts.Connection, logger, func(conn connection) error {
		runner := &dbexport.Runner{
			Source:   dbexport.NewSQLSource(conn.db, conn.dialect, logger),
			Reporter: reporter,
			Logger:   logger,
		}
		_, err := runner.Run(conn.ctx, opts.Export)
		return withTableHint(err, logger)
	})
}

func waitForEnter(out io.Writer, in io.Reader) {
	fmt.Fprint(out, "Press Enter to continue...")
	_, _ = bufio.NewReader(in).ReadString('\n')
}
