package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabJSON(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "animals.yaml")
	require.NoError(t, os.WriteFile(doc, []byte("words: [cat, and]\njoiners: [\"-\", and]\n"), 0600))

	loadTestConfig(t, "output: json\nwords: [horse]\nvocab_files: ["+doc+"]\n")

	out, _, err := execute(t, NewVocabCommand(), "")
	require.NoError(t, err)

	var got VocabOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"horse", "and", "cat"}, got.Words)
	assert.Equal(t, []string{"and", "-"}, got.Joiners)
	assert.Equal(t, []string{"and"}, got.Overlap)
	assert.Equal(t, []string{doc}, got.Files)
}

func TestVocabMarkdown(t *testing.T) {
	loadTestConfig(t, "words: [cat, dog]\njoiners: [\"-\", cat]\n")

	out, errOut, err := execute(t, NewVocabCommand(), "")
	require.NoError(t, err)

	assert.Contains(t, out, "# Vocabulary")
	assert.Contains(t, out, "- **Words:** 2")
	assert.Contains(t, out, "- **Joiners:** 2")
	assert.Contains(t, out, "| word | \"cat\" | 3 |")
	assert.Contains(t, out, "| joiner | \"-\" | 1 |")
	assert.Contains(t, errOut, `configured as both word and joiner: "cat"`)
}

func TestVocabSummary(t *testing.T) {
	loadTestConfig(t, animalsConfig)

	out, _, err := execute(t, NewVocabCommand(), "", "--summary")
	require.NoError(t, err)

	assert.Contains(t, out, "- **Words:** 2")
	assert.NotContains(t, out, "| Kind |")
}
