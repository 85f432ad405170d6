// Package client runs the external database client as a child process.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/vvka-141/sqlstage/pkg/sqlstage"
)

// ExecRunner implements sqlstage.ClientRunner with os/exec.
// Each Run starts one process and reaps it before returning.
type ExecRunner struct {
	// stdout receives the client's standard output; nil discards it.
	stdout io.Writer
}

// NewExecRunner creates a runner that forwards client stdout to w (nil discards it).
func NewExecRunner(w io.Writer) *ExecRunner {
	return &ExecRunner{stdout: w}
}

// Run starts cmd with stdin as its standard input and waits for it to exit.
// The process is killed if ctx is cancelled; there is no timeout otherwise.
func (r *ExecRunner) Run(ctx context.Context, cmd sqlstage.Command, stdin io.Reader) (sqlstage.RunResult, error) {
	if cmd.Name == "" {
		return sqlstage.RunResult{}, fmt.Errorf("empty command: %w", sqlstage.ErrInvalidConfig)
	}

	proc := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	proc.Stdin = stdin
	if r.stdout != nil {
		proc.Stdout = r.stdout
	}

	var stderr bytes.Buffer
	proc.Stderr = &stderr

	err := proc.Run()
	result := sqlstage.RunResult{Stderr: stderr.String()}
	if err == nil {
		return result, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, fmt.Errorf("%s interrupted: %w", cmd.Name, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	return result, fmt.Errorf("failed to run %s: %w", cmd.Name, err)
}

// Verify ExecRunner implements the interface at compile time
var _ sqlstage.ClientRunner = (*ExecRunner)(nil)
