package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCLIDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateCLIDocs(dir))

	index, err := os.ReadFile(filepath.Join(dir, "index.md"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "# CLI Reference")
	assert.Contains(t, string(index), "[`check`](/cli/check)")
	assert.Contains(t, string(index), "`--words`")

	check, err := os.ReadFile(filepath.Join(dir, "check.md"))
	require.NoError(t, err)
	assert.Contains(t, string(check), "wordseq check")
	assert.Contains(t, string(check), "## Global Options")

	assert.NoFileExists(t, filepath.Join(dir, "help.md"))
}

func TestGenerateConfigDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateConfigDocs(dir))

	data, err := os.ReadFile(filepath.Join(dir, "configuration.md"))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "`WORDSEQ_WORDS_FILES`")
	assert.Contains(t, content, "`normalize`")
	assert.Contains(t, content, "nfkd")
}

func TestMarkdownWriterTable(t *testing.T) {
	w := NewMarkdownWriter()
	w.Table([]string{"A", "B"}, nil)
	assert.Empty(t, w.Bytes())

	w.Table([]string{"A", "B"}, [][]string{{"x|y", "z"}})
	assert.Equal(t, "| A | B |\n| --- | --- |\n| x\\|y | z |\n\n", string(w.Bytes()))
}

func TestCleanExample(t *testing.T) {
	in := "\n    wordseq check cat-dog\n      wordseq explain cat\n"
	assert.Equal(t, "wordseq check cat-dog\n  wordseq explain cat", cleanExample(in))
}

func TestCleanDescription(t *testing.T) {
	assert.Equal(t, "Check inputs now", cleanDescription("check   inputs\nnow"))
	assert.Equal(t, "", cleanDescription("  "))
}
