package vocab

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/wordseq/pkg/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr string
	}{
		{
			name:  "plain tokens",
			input: "cat\ndog\n",
			want:  []string{"cat", "dog"},
		},
		{
			name:  "comments and blanks skipped",
			input: "# animals\n\ncat\n   \n  dog  \n",
			want:  []string{"cat", "dog"},
		},
		{
			name:  "quoted whitespace",
			input: "\" \"\n\"\\t\"\n-\n",
			want:  []string{" ", "\t", "-"},
		},
		{
			name:  "quoted hash is a token",
			input: "\"#\"\n",
			want:  []string{"#"},
		},
		{
			name:  "explicit empty token kept",
			input: "\"\"\n",
			want:  []string{""},
		},
		{
			name:    "bad quoting",
			input:   "cat\n\"unterminated\n",
			wantErr: "list.txt:2: invalid quoted token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseList("list.txt", strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				var perr *ParseError
				assert.ErrorAs(t, err, &perr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDocument(t *testing.T) {
	src, err := ParseDocument("vocab.yaml", []byte("words: [cat, dog]\njoiners: [\"-\", \" \"]\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"cat", "dog"}, src.Words)
	assert.Equal(t, []string{"-", " "}, src.Joiners)
	assert.Equal(t, []string{"vocab.yaml"}, src.Files)
}

func TestParseDocumentErrors(t *testing.T) {
	_, err := ParseDocument("vocab.yaml", []byte("words: [cat]\nseparators: [\"-\"]\n"))
	var unknown *UnknownFieldError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "separators", unknown.Field)

	_, err = ParseDocument("vocab.yaml", []byte("words: [cat\n"))
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, err.Error(), "invalid YAML")

	_, err = ParseDocument("vocab.yaml", []byte("words:\n  nested: true\n"))
	require.ErrorAs(t, err, &perr)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "vocab.yaml", "words: [cat]\njoiners: [\"-\"]\n")
	words := writeFile(t, dir, "words.txt", "dog\nbird\n")
	joiners := writeFile(t, dir, "joiners.txt", "\"_\"\n")

	src, err := Load(Spec{
		Words:        []string{"cow"},
		WordsFiles:   []string{words},
		JoinersFiles: []string{joiners},
		Documents:    []string{doc},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"cow", "cat", "dog", "bird"}, src.Words)
	assert.Equal(t, []string{"-", "_"}, src.Joiners)
	assert.Equal(t, []string{doc, words, joiners}, src.Files)
	assert.False(t, src.Empty())

	vocab, err := src.Build()
	require.NoError(t, err)
	assert.Equal(t, seq.Valid, seq.New(vocab).Validate("cow_bird-cat"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(Spec{WordsFiles: []string{filepath.Join(t.TempDir(), "missing.txt")}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestBuildEmptyToken(t *testing.T) {
	dir := t.TempDir()
	joiners := writeFile(t, dir, "joiners.txt", "-\n\"\"\n")

	src, err := Load(Spec{Words: []string{"cat"}, JoinersFiles: []string{joiners}})
	require.NoError(t, err)

	_, err = src.Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, seq.ErrEmptyToken))
	assert.Contains(t, err.Error(), joiners)
}

func TestSourceEmpty(t *testing.T) {
	src := &Source{}
	assert.True(t, src.Empty())
	src.Merge(nil)
	assert.True(t, src.Empty())
}
