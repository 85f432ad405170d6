package format

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/sqlstage/pkg/sqlstage"
)

func TestNormalize_PureIsIdentity(t *testing.T) {
	content := "INSERT INTO t VALUES (1);\nINSERT INTO t VALUES (\"x\");\n"

	out, err := Normalize(SplitLines(content), sqlstage.FormatPure)
	require.NoError(t, err)
	assert.Equal(t, content, out)
}

func TestNormalize_QuotedStripsBothEnds(t *testing.T) {
	lines := []string{
		`"INSERT INTO t VALUES (1)"`,
		`""INSERT INTO t VALUES (2)""`,
		`"INSERT INTO t VALUES ('a"b')"`,
		``,
	}

	out, err := Normalize(lines, sqlstage.FormatQuoted)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO t VALUES (1)\nINSERT INTO t VALUES (2)\nINSERT INTO t VALUES ('a\"b')\n", out)
}

func TestNormalize_QuotedResultClassifiesAsPure(t *testing.T) {
	out, err := Normalize([]string{`"INSERT INTO t VALUES (1)"`}, sqlstage.FormatQuoted)
	require.NoError(t, err)
	assert.Equal(t, sqlstage.FormatPure, Classify(out))
}

func TestNormalize_Idempotent(t *testing.T) {
	once, err := Normalize(SplitLines(`"INSERT INTO t VALUES (1)"`+"\n"+`"INSERT INTO t VALUES (2)"`), sqlstage.FormatQuoted)
	require.NoError(t, err)

	twice, err := Normalize(SplitLines(once), sqlstage.FormatQuoted)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestNormalize_InvalidTag(t *testing.T) {
	_, err := Normalize([]string{"x"}, sqlstage.FormatInvalid)
	assert.True(t, errors.Is(err, sqlstage.ErrInvalidFormat))
}

func TestNormalizeContent_EndToEnd(t *testing.T) {
	in := `"INSERT INTO t VALUES (1)"` + "\n" + `"INSERT INTO t VALUES (2)"`

	out, tag, err := NormalizeContent("t.csv", in)
	require.NoError(t, err)
	assert.Equal(t, sqlstage.FormatQuoted, tag)
	assert.Equal(t, []string{"INSERT INTO t VALUES (1)", "INSERT INTO t VALUES (2)"}, SplitLines(out))
}

func TestNormalizeContent_SecondLineFallback(t *testing.T) {
	in := "\n" + `"INSERT INTO t VALUES (1)"`

	out, tag, err := NormalizeContent("t.csv", in)
	require.NoError(t, err)
	assert.Equal(t, sqlstage.FormatQuoted, tag)
	assert.Equal(t, "\nINSERT INTO t VALUES (1)", out)
}

func TestNormalizeContent_Rejected(t *testing.T) {
	for _, in := range []string{"", "id,name\n1,alice", "-- header\n-- another"} {
		_, tag, err := NormalizeContent("/in/bad.csv", in)
		assert.Equal(t, sqlstage.FormatInvalid, tag)

		var formatErr *sqlstage.FormatError
		require.True(t, errors.As(err, &formatErr), "input %q: expected FormatError, got %v", in, err)
		assert.Equal(t, "/in/bad.csv", formatErr.Path)
	}
}

func TestSplitJoinRoundTrip(t *testing.T) {
	for _, s := range []string{"", "a", "a\nb", "a\nb\n", "\n\n"} {
		assert.Equal(t, s, Join(SplitLines(s)))
	}
}
