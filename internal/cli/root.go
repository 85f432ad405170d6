package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sqlstage/internal/config"
	"github.com/vvka-141/sqlstage/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "sqlstage",
	Short: "Normalize database dump files and load them in order",
	Long: `sqlstage stages database dumps between an export step and a load step.

  clean   rewrites every dump in the input directory into plain statement
          text (<name>.sql) in the output directory
  load    replays the normalized files against the database through the
          external client, one process per file, in the order you choose
  run     clean, then load

A file that matches no known format aborts clean. The first file the client
rejects aborts load; files loaded before it stay applied.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Dump file has an invalid SQL format
  12 - Invalid execution order
  13 - Client failed to load a file`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, tui.Failure(err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("config", "./"+config.ConfigFileName,
		"Project file with directory, order and connection defaults\n"+
			"A missing file is ignored unless the flag is set explicitly")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
