package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/sqlstage/internal/cli"
	"github.com/vvka-141/sqlstage/pkg/sqlstage"
)

func main() {
	// A panic still exits with its own status and a stack trace.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(sqlstage.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(sqlstage.ExitCodeForError(err))
	}
}
