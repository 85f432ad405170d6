// Package format detects the quoting convention of a dump file and rewrites
// it into canonical, unquoted statement text.
//
// Only the first two lines of a file are inspected:
//
//	INSERT INTO t VALUES (1)      -> pure
//	"INSERT INTO t VALUES (1)"    -> quoted
//	anything else                 -> invalid
//
// A file resolves to its first line's tag, falling back to the second line
// when the first is invalid (some exporters emit a header or blank line).
package format
