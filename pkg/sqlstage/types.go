package sqlstage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// FormatTag classifies a line (and by resolution a whole dump file).
type FormatTag int

const (
	FormatInvalid FormatTag = iota // Neither pattern recognized
	FormatPure                     // Raw statement starting with INSERT
	FormatQuoted                   // Statement wrapped in double quotes
)

// String returns a human-readable string representation of the FormatTag.
func (t FormatTag) String() string {
	switch t {
	case FormatInvalid:
		return "invalid"
	case FormatPure:
		return "pure"
	case FormatQuoted:
		return "quoted"
	default:
		return fmt.Sprintf("Unknown(%d)", t)
	}
}

// IsValid returns true for tags that can be normalized.
func (t FormatTag) IsValid() bool {
	return t == FormatPure || t == FormatQuoted
}

// ExecutionMode selects how the database client is reached.
type ExecutionMode int

const (
	ModeInvalid       ExecutionMode = iota
	ModeDirect                      // Client binary on the host
	ModeContainerized               // Client inside a running container
)

// String returns the canonical configuration name of the mode.
func (m ExecutionMode) String() string {
	switch m {
	case ModeDirect:
		return "pure"
	case ModeContainerized:
		return "docker"
	case ModeInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// ParseExecutionMode maps a configuration value to an ExecutionMode.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseExecutionMode(s string) (ExecutionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pure", "direct":
		return ModeDirect, nil
	case "docker", "container", "containerized":
		return ModeContainerized, nil
	default:
		return ModeInvalid, fmt.Errorf("unknown execution mode %q (expected docker or pure): %w", s, ErrInvalidConfig)
	}
}

// ConnectionConfig holds everything needed to build the client command line.
type ConnectionConfig struct {
	Mode     ExecutionMode
	Database string
	Username string
	Password string

	// Container is the running container the client is executed in.
	// Required when Mode is ModeContainerized, ignored otherwise.
	Container string

	// Client is the database client executable (default: mysql)
	Client string

	// Runtime is the container runtime executable (default: docker)
	Runtime string
}

// WithDefaults returns a copy with empty optional fields set to their defaults.
func (c ConnectionConfig) WithDefaults() ConnectionConfig {
	if c.Username == "" {
		c.Username = DefaultUsername
	}
	if c.Client == "" {
		c.Client = DefaultClient
	}
	if c.Runtime == "" {
		c.Runtime = DefaultRuntime
	}
	return c
}

// Validate checks if the ConnectionConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *ConnectionConfig) Validate() error {
	var errs []error

	switch c.Mode {
	case ModeDirect:
	case ModeContainerized:
		if c.Container == "" {
			errs = append(errs, fmt.Errorf("container name is required in %s mode: %w", c.Mode, ErrInvalidConfig))
		}
	default:
		errs = append(errs, fmt.Errorf("execution mode is invalid: %w", ErrInvalidConfig))
	}

	if c.Database == "" {
		errs = append(errs, fmt.Errorf("database name is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Command is an executable plus its ordered argument list.
type Command struct {
	Name string
	Args []string
}

// Argv returns the full token sequence, executable first.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// Redacted renders the command for display with the password masked.
// The credential always sits just before the database name.
func (c Command) Redacted() string {
	tokens := c.Argv()
	if i := len(tokens) - 2; len(c.Args) >= 2 && strings.HasPrefix(tokens[i], "-p") && len(tokens[i]) > 2 {
		tokens[i] = "-p****"
	}
	return strings.Join(tokens, " ")
}

// ExecutionOrder is a sequence of zero-based indices into the discovered file list.
type ExecutionOrder []int

// DumpFile is a file discovered in a directory of the file store.
type DumpFile struct {
	Path string // Full path within the file store
	Name string // Filename only: "users.csv"
	Stem string // Filename without extension: "users"
}

// NormalizedName is the name of the cleaned file derived from this dump.
func (f DumpFile) NormalizedName() string {
	return f.Stem + NormalizedExtension
}

// NormalizedFile is a cleaned file written to the output directory.
type NormalizedFile struct {
	SourcePath string
	Path       string
	Format     FormatTag
	SizeBytes  int64
	Checksum   string // SHA-256 of the written content
}

// CleanConfig contains all parameters needed for a clean operation.
type CleanConfig struct {
	// InputDir holds the raw dump files
	InputDir string

	// OutputDir receives one <stem>.sql file per input file
	OutputDir string

	// DryRun classifies and normalizes without writing anything
	DryRun bool

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the CleanConfig has all required fields.
func (c *CleanConfig) Validate() error {
	var errs []error

	if c.InputDir == "" {
		errs = append(errs, fmt.Errorf("InputDir is required: %w", ErrInvalidConfig))
	}
	if c.OutputDir == "" {
		errs = append(errs, fmt.Errorf("OutputDir is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// LoadConfig contains all parameters needed for a load operation.
type LoadConfig struct {
	// Dir holds the normalized files to load
	Dir string

	// Connection describes how the client is invoked
	Connection ConnectionConfig

	// Order is the raw operator ordering: "0" (or empty) for discovery order,
	// otherwise whitespace-separated 1-based file numbers
	Order string

	// DryRun plans the run and logs the command without starting any process
	DryRun bool

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the LoadConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *LoadConfig) Validate() error {
	var errs []error

	if c.Dir == "" {
		errs = append(errs, fmt.Errorf("Dir is required: %w", ErrInvalidConfig))
	}
	if err := c.Connection.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// CleanResult lists the files produced by a clean run, in processing order.
type CleanResult struct {
	Files []NormalizedFile
}

// LoadResult describes a load run. On failure Loaded holds the files
// applied before the failing one.
type LoadResult struct {
	RunID   uuid.UUID
	Command string   // Redacted command line
	Planned []string // File names in execution order
	Loaded  []string // File names applied successfully
}

// RunResult is the outcome of one client invocation.
type RunResult struct {
	ExitCode int
	Stderr   string
}
