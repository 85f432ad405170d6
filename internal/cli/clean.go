package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sqlstage/pkg/sqlstage"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Normalize dump files into plain statement text",
	Long: `Clean reads every file in the input directory and writes <name>.sql into
the output directory.

A file is recognized by its first line, or its second line when the first
is a header:
  INSERT ...      pure statements, copied unchanged
  "INSERT ..."    quoted statements, the surrounding quotes are stripped

The first file that matches neither format aborts the run. Files already
written stay in the output directory.

Examples:
  # Defaults: ./csv -> ./data
  sqlstage clean

  # Custom directories, show what would be written
  sqlstage clean --input ./exports --output ./staged --dry-run -v`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

type cleanFlagValues struct {
	input, output string
	dryRun        bool
}

var cleanFlags cleanFlagValues

func init() {
	rootCmd.AddCommand(cleanCmd)
	addCleanFlags(cleanCmd, &cleanFlags)
}

func addCleanFlags(cmd *cobra.Command, flags *cleanFlagValues) {
	cmd.Flags().StringVarP(&flags.input, "input", "i", "",
		"Directory holding the raw dump files (default: ./csv)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"Directory receiving the normalized .sql files, created if missing (default: ./data)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false,
		"Classify and report every file without writing anything")
}

func runClean(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	projectCfg, err := loadProjectConfig(cmd)
	if err != nil {
		return err
	}

	inputDir, outputDir := resolveDirs(cleanFlags.input, cleanFlags.output, projectCfg)
	config := sqlstage.CleanConfig{
		InputDir:  inputDir,
		OutputDir: outputDir,
		DryRun:    cleanFlags.dryRun,
		Verbose:   verbose,
	}

	ctx, cancel := withInterrupt(context.Background(), "clean")
	defer cancel()

	if _, err := newCleanService(verbose).Clean(ctx, config); err != nil {
		return fmt.Errorf("clean failed: %w", err)
	}
	return nil
}
