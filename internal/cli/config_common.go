package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/sqlstage/internal/config"
	"github.com/vvka-141/sqlstage/internal/tui"
	"github.com/vvka-141/sqlstage/pkg/sqlstage"
)

// Environment variables consulted between flags and the project file.
const (
	envMode      = "SQLSTAGE_MODE"
	envDatabase  = "SQLSTAGE_DATABASE"
	envUser      = "SQLSTAGE_USER"
	envContainer = "SQLSTAGE_CONTAINER"
	envOrder     = "SQLSTAGE_ORDER"
	envPassword  = "SQLSTAGE_PASSWORD"
)

// connectionFlags holds the common connection-related flag values.
type connectionFlags struct {
	mode      string
	database  string
	username  string
	container string
	client    string
	runtime   string
}

func addConnectionFlags(cmd *cobra.Command, flags *connectionFlags) {
	cmd.Flags().StringVarP(&flags.mode, "mode", "m", "",
		"Execution mode: docker (client inside a container) or pure (client on this host)\n"+
			"Precedence: --mode > $SQLSTAGE_MODE > sqlstage.yaml > docker")
	cmd.Flags().StringVarP(&flags.database, "database", "d", "",
		"Target database name (or $SQLSTAGE_DATABASE)")
	cmd.Flags().StringVarP(&flags.username, "username", "U", "",
		"Database user (default: $SQLSTAGE_USER or root)")
	cmd.Flags().StringVarP(&flags.container, "container", "c", "",
		"Container running the database client, required in docker mode (or $SQLSTAGE_CONTAINER)")
	cmd.Flags().StringVar(&flags.client, "client", "",
		"Client executable (default: mysql)")
	cmd.Flags().StringVar(&flags.runtime, "runtime", "",
		"Container runtime executable used in docker mode (default: docker)")
}

// loadProjectConfig loads godotenv and project configuration.
// A missing project file is not an error unless its path was given explicitly.
func loadProjectConfig(cmd *cobra.Command) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	path, err := cmd.Flags().GetString("config")
	if err != nil || path == "" {
		path = "./" + config.ConfigFileName
	}

	projectCfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !cmd.Flags().Changed("config") {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w: %w", path, sqlstage.ErrInvalidConfig, err)
	}
	return projectCfg, nil
}

// firstNonEmpty returns the first value that is not blank.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// resolveConnection merges flags, environment and the project file.
// Precedence: flag > environment > sqlstage.yaml > default.
// The password is resolved separately by resolvePassword.
func resolveConnection(flags connectionFlags, projectCfg *config.ProjectConfig) (sqlstage.ConnectionConfig, error) {
	var fileConn config.ConnectionConfig
	if projectCfg != nil {
		fileConn = projectCfg.Connection
	}

	modeName := firstNonEmpty(flags.mode, os.Getenv(envMode), fileConn.Mode, sqlstage.DefaultMode)
	mode, err := sqlstage.ParseExecutionMode(modeName)
	if err != nil {
		return sqlstage.ConnectionConfig{}, err
	}

	conn := sqlstage.ConnectionConfig{
		Mode:      mode,
		Database:  firstNonEmpty(flags.database, os.Getenv(envDatabase), fileConn.Database),
		Username:  firstNonEmpty(flags.username, os.Getenv(envUser), fileConn.Username),
		Container: firstNonEmpty(flags.container, os.Getenv(envContainer), fileConn.Container),
		Client:    firstNonEmpty(flags.client, fileConn.Client),
		Runtime:   firstNonEmpty(flags.runtime, fileConn.Runtime),
	}
	return conn.WithDefaults(), nil
}

// passwordPrompt reads a password interactively; replaced in tests.
var passwordPrompt = tui.PromptPassword

// resolvePassword returns $SQLSTAGE_PASSWORD when set (even empty), otherwise
// prompts when a terminal is attached, otherwise an empty password.
func resolvePassword(conn sqlstage.ConnectionConfig) (string, error) {
	if pw, ok := os.LookupEnv(envPassword); ok {
		return pw, nil
	}

	pw, err := passwordPrompt(fmt.Sprintf("Password for %s@%s", conn.Username, conn.Database))
	if errors.Is(err, tui.ErrNotInteractive) {
		return "", nil
	}
	return pw, err
}

// resolveOrder returns the execution order string and whether any source set it.
func resolveOrder(cmd *cobra.Command, flagValue string, projectCfg *config.ProjectConfig) (string, bool) {
	if cmd.Flags().Changed("order") {
		return flagValue, true
	}
	if env, ok := os.LookupEnv(envOrder); ok {
		return env, true
	}
	if projectCfg != nil && projectCfg.Order != "" {
		return projectCfg.Order, true
	}
	return sqlstage.NaturalOrder, false
}

// resolveDirs returns the input and output directories.
func resolveDirs(inputFlag, outputFlag string, projectCfg *config.ProjectConfig) (string, string) {
	var fileIn, fileOut string
	if projectCfg != nil {
		fileIn, fileOut = projectCfg.InputDir, projectCfg.OutputDir
	}
	return firstNonEmpty(inputFlag, fileIn, sqlstage.DefaultInputDir),
		firstNonEmpty(outputFlag, fileOut, sqlstage.DefaultOutputDir)
}

// logConnectionVerbose logs connection details when verbose mode is enabled.
func logConnectionVerbose(conn sqlstage.ConnectionConfig) {
	fmt.Fprintf(os.Stderr, "[VERBOSE] Connection resolved:\n")
	fmt.Fprintf(os.Stderr, "  Mode: %s\n", conn.Mode)
	fmt.Fprintf(os.Stderr, "  Database: %s\n", conn.Database)
	fmt.Fprintf(os.Stderr, "  User: %s\n", conn.Username)
	if conn.Mode == sqlstage.ModeContainerized {
		fmt.Fprintf(os.Stderr, "  Container: %s (%s)\n", conn.Container, conn.Runtime)
	}
	fmt.Fprintf(os.Stderr, "  Client: %s\n", conn.Client)
}
