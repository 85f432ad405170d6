package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sqlstage/internal/config"
	"github.com/vvka-141/sqlstage/internal/tui"
	"github.com/vvka-141/sqlstage/pkg/sqlstage"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load normalized files into the database, in order",
	Long: `Load runs the database client once per file, feeding the file on stdin.

Execution modes:
  docker   <runtime> exec <container> <client> -u<user> -p<password> <db>
  pure     <client> -u<user> -p<password> <db>

Execution order:
  --order "0"       every file in discovery order (see 'sqlstage files')
  --order "3 1 2"   the listed files by number, in that order
  Without --order, $SQLSTAGE_ORDER or sqlstage.yaml, an interactive terminal
  shows a picker; otherwise the discovery order is used.

The first file the client rejects stops the run. Earlier files stay applied.

Password Authentication:
  For security, the password is NOT accepted as a CLI flag. Use one of:
    1. $SQLSTAGE_PASSWORD (a .env file in the working directory is read first)
    2. The interactive prompt shown when a terminal is attached

Examples:
  # Load ./data into the mysql client of container db1
  sqlstage load -d shop -c db1

  # Host client, explicit order, preview only
  sqlstage load --mode pure -d shop --order "2 1 3" --dry-run`,
	Args: cobra.NoArgs,
	RunE: runLoad,
}

type loadFlagValues struct {
	dir    string
	order  string
	dryRun bool
	conn   connectionFlags
}

var loadFlags loadFlagValues

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().StringVar(&loadFlags.dir, "dir", "",
		"Directory of normalized files (default: output_dir from sqlstage.yaml, or ./data)")
	addLoadFlags(loadCmd, &loadFlags)
}

func addLoadFlags(cmd *cobra.Command, flags *loadFlagValues) {
	addConnectionFlags(cmd, &flags.conn)
	cmd.Flags().StringVar(&flags.order, "order", "",
		"Execution order: \"0\" for discovery order, or 1-based file numbers such as \"3 1 2\"\n"+
			"Precedence: --order > $SQLSTAGE_ORDER > sqlstage.yaml > picker (interactive) > 0")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false,
		"Print the planned client invocations without running them")
}

// buildLoadConfig builds a LoadConfig from CLI flags, environment and the project file.
func buildLoadConfig(cmd *cobra.Command, flags loadFlagValues, dir string, projectCfg *config.ProjectConfig, verbose bool) (sqlstage.LoadConfig, error) {
	conn, err := resolveConnection(flags.conn, projectCfg)
	if err != nil {
		return sqlstage.LoadConfig{}, err
	}

	order, ok := resolveOrder(cmd, flags.order, projectCfg)
	if !ok && tui.IsInteractive() {
		order, err = pickOrder(dir)
		if err != nil {
			return sqlstage.LoadConfig{}, err
		}
	}

	if !flags.dryRun {
		conn.Password, err = resolvePassword(conn)
		if err != nil {
			return sqlstage.LoadConfig{}, err
		}
	}

	if verbose {
		logConnectionVerbose(conn)
	}

	return sqlstage.LoadConfig{
		Dir:        dir,
		Connection: conn,
		Order:      order,
		DryRun:     flags.dryRun,
		Verbose:    verbose,
	}, nil
}

func pickOrder(dir string) (string, error) {
	names, err := listFileNames(dir)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return sqlstage.NaturalOrder, nil
	}

	order, err := tui.PickOrder(names)
	if errors.Is(err, tui.ErrNotInteractive) {
		return sqlstage.NaturalOrder, nil
	}
	return order, err
}

func runLoad(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	projectCfg, err := loadProjectConfig(cmd)
	if err != nil {
		return err
	}

	_, dir := resolveDirs("", loadFlags.dir, projectCfg)
	cfg, err := buildLoadConfig(cmd, loadFlags, dir, projectCfg, verbose)
	if err != nil {
		return err
	}

	return executeLoad(cfg, verbose)
}

func executeLoad(cfg sqlstage.LoadConfig, verbose bool) error {
	loader, stop := newLoadService(verbose, cfg.DryRun)

	ctx, cancel := withInterrupt(context.Background(), "load")
	defer cancel()

	result, err := loader.Load(ctx, cfg)
	stop()
	if err != nil {
		reportLoadFailure(os.Stderr, err, len(result.Loaded))
		return fmt.Errorf("load failed: %w", err)
	}
	return nil
}

// reportLoadFailure writes the client's stderr unmodified, then notes how
// many files stay applied. The returned error only carries a preview.
func reportLoadFailure(w io.Writer, err error, loaded int) {
	var execErr *sqlstage.ExecutionError
	if errors.As(err, &execErr) && execErr.Stderr != "" {
		fmt.Fprintf(w, "client output for %s:\n", execErr.File)
		io.WriteString(w, execErr.Stderr)
		if execErr.Stderr[len(execErr.Stderr)-1] != '\n' {
			io.WriteString(w, "\n")
		}
	}
	if loaded > 0 {
		fmt.Fprintf(w, "%d file(s) were loaded before the failure and remain applied\n", loaded)
	}
}
