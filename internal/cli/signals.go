package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// withInterrupt returns a context cancelled on Ctrl+C or SIGTERM.
// Cancelling kills the running client process; there is no timeout.
func withInterrupt(parent context.Context, what string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintf(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling %s...\n", what)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}
