package sqlstage

import (
	"context"
	"io"
)

// ClientRunner executes the external database client.
type ClientRunner interface {
	// Run starts cmd, copies stdin to the process input and waits for it to exit.
	// A non-zero exit status is reported in RunResult, not as an error;
	// the error is reserved for processes that could not be run at all.
	Run(ctx context.Context, cmd Command, stdin io.Reader) (RunResult, error)
}
