package format

import (
	"strings"

	"github.com/vvka-141/sqlstage/pkg/sqlstage"
)

// Classify tags a single line.
func Classify(line string) sqlstage.FormatTag {
	switch {
	case strings.HasPrefix(line, sqlstage.PureStatementPrefix):
		return sqlstage.FormatPure
	case strings.HasPrefix(line, sqlstage.QuoteChar+sqlstage.PureStatementPrefix):
		return sqlstage.FormatQuoted
	default:
		return sqlstage.FormatInvalid
	}
}

// ClassifyPair tags the first and second line independently.
func ClassifyPair(first, second string) (sqlstage.FormatTag, sqlstage.FormatTag) {
	return Classify(first), Classify(second)
}

// Resolve returns the tag of the whole file: the first line's tag unless it
// is invalid, in which case the second line decides. FormatInvalid means the
// file must be rejected.
func Resolve(first, second string) sqlstage.FormatTag {
	t1, t2 := ClassifyPair(first, second)
	if t1 != sqlstage.FormatInvalid {
		return t1
	}
	return t2
}

// HeadLines returns the first two lines of content. A missing second line is "".
func HeadLines(lines []string) (string, string) {
	var first, second string
	if len(lines) > 0 {
		first = lines[0]
	}
	if len(lines) > 1 {
		second = lines[1]
	}
	return first, second
}
