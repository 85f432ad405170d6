package format

import (
	"fmt"
	"strings"

	"github.com/vvka-141/sqlstage/pkg/sqlstage"
)

// SplitLines splits content on "\n" only. A trailing newline yields a final
// empty line, so Join(SplitLines(s)) == s.
func SplitLines(content string) []string {
	return strings.Split(content, "\n")
}

// Join rejoins lines with "\n" separators.
func Join(lines []string) string {
	return strings.Join(lines, "\n")
}

// Normalize rewrites lines into canonical form for a resolved tag.
// Quoted lines have all leading and trailing double quotes stripped;
// pure content is returned unchanged.
func Normalize(lines []string, tag sqlstage.FormatTag) (string, error) {
	switch tag {
	case sqlstage.FormatPure:
		return Join(lines), nil
	case sqlstage.FormatQuoted:
		out := make([]string, len(lines))
		for i, line := range lines {
			out[i] = strings.Trim(line, sqlstage.QuoteChar)
		}
		return Join(out), nil
	default:
		return "", fmt.Errorf("cannot normalize %s content: %w", tag, sqlstage.ErrInvalidFormat)
	}
}

// NormalizeContent splits, resolves and normalizes a whole file.
// It returns a *sqlstage.FormatError when neither of the first two lines is recognized.
func NormalizeContent(path, content string) (string, sqlstage.FormatTag, error) {
	lines := SplitLines(content)
	tag := Resolve(HeadLines(lines))
	if tag == sqlstage.FormatInvalid {
		return "", tag, &sqlstage.FormatError{Path: path}
	}

	out, err := Normalize(lines, tag)
	if err != nil {
		return "", tag, err
	}
	return out, tag, nil
}
