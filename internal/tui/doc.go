// Package tui holds the terminal-facing pieces of the CLI: interactivity
// detection, styled status lines, the no-echo password prompt, the
// interactive load-order picker and the load progress bar.
//
// Everything degrades to plain output when DetectMode reports a
// non-interactive session.
package tui
