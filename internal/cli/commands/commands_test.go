package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/wordseq/internal/cli/config"
	"github.com/leapstack-labs/wordseq/internal/cli/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadTestConfig writes content as wordseq.yaml in a temp dir and loads it
// as the current config.
func loadTestConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "wordseq.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	_, err := config.LoadConfig(path, nil)
	require.NoError(t, err)
	return dir
}

// execute runs cmd with args and returns stdout and stderr.
func execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestNewCheckCommand(t *testing.T) {
	cmd := NewCheckCommand()

	assert.Equal(t, "check [input...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	for _, flag := range []string{"file", "quiet"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewExplainCommand(t *testing.T) {
	cmd := NewExplainCommand()

	assert.Equal(t, "explain <input>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
}

func TestNewVocabCommand(t *testing.T) {
	cmd := NewVocabCommand()

	assert.Equal(t, "vocab", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("summary"))
}

func TestNewWatchCommand(t *testing.T) {
	cmd := NewWatchCommand()

	assert.Equal(t, "watch <file...>", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("debounce"))
}

func TestNewREPLCommand(t *testing.T) {
	cmd := NewREPLCommand()

	assert.Equal(t, "repl", cmd.Use)
	assert.NotEmpty(t, cmd.Long, "Long should not be empty")
}

func TestValidatorOptions(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		want    int
		wantErr bool
	}{
		{"defaults", config.Config{Normalize: "none"}, 0, false},
		{"empty normalize", config.Config{}, 0, false},
		{"strict", config.Config{Strict: true}, 1, false},
		{"everything", config.Config{Strict: true, FoldCase: true, Normalize: "nfkc"}, 3, false},
		{"unknown form", config.Config{Normalize: "nfx"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ValidatorOptions(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, opts, tt.want)
		})
	}
}

func TestLoadVocabularyRequiresSource(t *testing.T) {
	loadTestConfig(t, "output: json\n")

	_, _, err := execute(t, NewCheckCommand(), "", "cat")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoVocabulary)
}

func TestLoadVocabularyMissingFile(t *testing.T) {
	loadTestConfig(t, "words_files: [missing.txt]\n")

	_, _, err := execute(t, NewCheckCommand(), "", "cat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vocabulary file does not exist")
}

func TestCommandContextUsesRootValues(t *testing.T) {
	// The last loaded config says strict; the context config does not.
	loadTestConfig(t, animalsConfig+"strict: true\n")

	cfg := &config.Config{
		Words:         []string{"cat", "dog"},
		Joiners:       []string{"-"},
		Normalize:     config.DefaultNormalize,
		OutputFormat:  "json",
		Concurrency:   1,
		WatchDebounce: config.DefaultWatchDebounce,
	}
	tr := testutil.NewTestRendererJSON()
	ctx := context.WithValue(context.Background(), config.ConfigKey(), cfg)
	ctx = context.WithValue(ctx, config.RendererKey(), tr.Renderer)

	cmd := NewCheckCommand()
	cmd.SetContext(ctx)
	out, _, err := execute(t, cmd, "", "cat--dog")
	require.NoError(t, err)

	assert.Empty(t, out, "output should go through the context renderer")
	assert.Contains(t, tr.Output(), `"verdict": "valid"`)
}

func TestCommandContextFallback(t *testing.T) {
	loadTestConfig(t, animalsConfig+"output: json\n")

	cmd := NewCheckCommand()
	out, _, err := execute(t, cmd, "", "cat-dog")
	require.NoError(t, err)
	assert.Contains(t, out, `"verdict": "valid"`)
}
