package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sqlstage/internal/command"
	"github.com/vvka-141/sqlstage/internal/tui"
	"github.com/vvka-141/sqlstage/pkg/sqlstage"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Clean the input directory, then load the result",
	Long: `Run performs clean followed by load over the freshly written output
directory. It accepts the flags of both commands.

With --dry-run nothing is written, so load is only described.

Examples:
  sqlstage run -d shop -c db1
  sqlstage run --input ./exports --output ./staged --mode pure -d shop --order "2 1"`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

type runFlagValues struct {
	clean cleanFlagValues
	load  loadFlagValues
}

var runFlags runFlagValues

func init() {
	rootCmd.AddCommand(runCmd)

	addCleanFlags(runCmd, &runFlags.clean)
	addConnectionFlags(runCmd, &runFlags.load.conn)
	runCmd.Flags().StringVar(&runFlags.load.order, "order", "",
		"Execution order: \"0\" for discovery order, or 1-based file numbers such as \"3 1 2\"")
}

func runRun(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	projectCfg, err := loadProjectConfig(cmd)
	if err != nil {
		return err
	}

	inputDir, outputDir := resolveDirs(runFlags.clean.input, runFlags.clean.output, projectCfg)
	dryRun := runFlags.clean.dryRun

	// Resolve the connection before cleaning so configuration errors fail fast.
	conn, err := resolveConnection(runFlags.load.conn, projectCfg)
	if err != nil {
		return err
	}
	if err := conn.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cmdLine, err := command.Build(conn)
	if err != nil {
		return err
	}

	ctx, cancel := withInterrupt(context.Background(), "clean")
	cleaned, err := newCleanService(verbose).Clean(ctx, sqlstage.CleanConfig{
		InputDir:  inputDir,
		OutputDir: outputDir,
		DryRun:    dryRun,
		Verbose:   verbose,
	})
	cancel()
	if err != nil {
		return fmt.Errorf("clean failed: %w", err)
	}

	if dryRun {
		fmt.Fprintf(os.Stderr, "Dry run: load would run %s once per file for %d file(s) from %s\n",
			cmdLine.Redacted(), len(cleaned.Files), outputDir)
		return nil
	}

	cfg, err := buildLoadConfig(cmd, runFlags.load, outputDir, projectCfg, verbose)
	if err != nil {
		return err
	}

	if err := executeLoad(cfg, verbose); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, tui.Success(fmt.Sprintf("Staged %d file(s) from %s into %s", len(cleaned.Files), inputDir, conn.Database)))
	return nil
}
