package sqlstage

// Logger receives progress from the cleaner and the loader.
// Implementations must be safe for concurrent use.
type Logger interface {
	// Verbose reports per-file detail such as the redacted client command.
	// Implementations drop it unless verbose output was requested.
	Verbose(format string, args ...interface{})

	// Info reports one line per processed file and the final summary.
	Info(format string, args ...interface{})

	// Error reports failures that stop a run.
	Error(format string, args ...interface{})
}
