package sqlstage

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Clean/load completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration (mode, container, database)
	ExitFormatError     = 11 // Dump file matched no known format
	ExitOrderError      = 12 // Execution order is malformed or out of range
	ExitExecutionFailed = 13 // External client exited non-zero
)

const (
	// DefaultInputDir is where raw dump files are read from.
	DefaultInputDir = "./csv"

	// DefaultOutputDir is where normalized files are written and loaded from.
	DefaultOutputDir = "./data"

	// DefaultUsername is the database user when none is configured.
	DefaultUsername = "root"

	// DefaultClient is the database command-line client invoked per file.
	DefaultClient = "mysql"

	// DefaultRuntime is the container runtime used in containerized mode.
	DefaultRuntime = "docker"

	// DefaultMode is the execution mode used when none is configured.
	DefaultMode = "docker"

	// NaturalOrder selects the discovery order of the normalized files.
	NaturalOrder = "0"

	// NormalizedExtension replaces the source extension of every cleaned file.
	NormalizedExtension = ".sql"

	// PureStatementPrefix marks a line holding a raw SQL statement.
	PureStatementPrefix = "INSERT"

	// QuoteChar wraps every line of a quoted dump.
	QuoteChar = `"`

	// MaxErrorPreviewLength caps the client stderr echoed in error messages.
	// The full text is still available on ExecutionError.Stderr.
	MaxErrorPreviewLength = 2000
)
