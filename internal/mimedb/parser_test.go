package mimedb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLinesBasic(t *testing.T) {
	t.Parallel()

	parsed, err := ParseLines(strings.NewReader("text/plain=Editor1;Editor2;\n"))
	require.NoError(t, err)
	require.Equal(t, map[string][]string{"text/plain": {"Editor1", "Editor2"}}, parsed)
}

func TestParseLinesSkipsMalformedLines(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"[Default Applications]",       // section header, no '='
		"# a comment",                  // no '='
		"",                             // blank
		"text/plain=Editor1;",          // valid
		"image/png=Viewer1",            // missing trailing ';'
		"application/pdf=Reader1;Reader2;", // valid
	}, "\n")

	parsed, err := ParseLines(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, parsed, 2, "only well-formed lines should parse")
	require.Equal(t, []string{"Editor1"}, parsed["text/plain"])
	require.Equal(t, []string{"Reader1", "Reader2"}, parsed["application/pdf"])
	require.NotContains(t, parsed, "image/png", "line without trailing ; must be skipped")
}

func TestParseLinesTrimsKeysAndTokens(t *testing.T) {
	t.Parallel()

	parsed, err := ParseLines(strings.NewReader("  text/plain  = Editor1 ; Editor2 ;\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"Editor1", "Editor2"}, parsed["text/plain"])
}

func TestParseLinesDropsEmptyTokens(t *testing.T) {
	t.Parallel()

	parsed, err := ParseLines(strings.NewReader("text/plain=Editor1;;;Editor2;\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"Editor1", "Editor2"}, parsed["text/plain"])
}

func TestParseLinesRepeatedKeyIsAdditive(t *testing.T) {
	t.Parallel()

	input := "text/plain=Editor1;\ntext/plain=Editor2;\n"
	parsed, err := ParseLines(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []string{"Editor1", "Editor2"}, parsed["text/plain"])
}

func TestParseLinesValueMayContainEquals(t *testing.T) {
	t.Parallel()

	parsed, err := ParseLines(strings.NewReader("text/html=org.app=browser.desktop;\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"org.app=browser.desktop"}, parsed["text/html"])
}
