package commands

import (
	"encoding/json"
	"testing"

	"github.com/leapstack-labs/wordseq/internal/cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBuild = BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-02", GoVersion: "go1.24.0"}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand(testBuild)

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotNil(t, cmd.Flags().Lookup("short"))
}

func TestVersionShort(t *testing.T) {
	out, _, err := execute(t, NewVersionCommand(testBuild), "", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)
}

func TestVersionRejectsArgs(t *testing.T) {
	_, _, err := execute(t, NewVersionCommand(testBuild), "", "extra")
	assert.Error(t, err)
}

func TestRenderVersion(t *testing.T) {
	tests := []struct {
		name     string
		renderer *testutil.TestRenderer
		want     []string
	}{
		{
			name:     "markdown",
			renderer: testutil.NewTestRendererMarkdown(),
			want:     []string{"wordseq v1.2.3", "- **Commit:** abc123", "- **Go:** go1.24.0"},
		},
		{
			name:     "text",
			renderer: testutil.NewTestRendererText(),
			want:     []string{"wordseq v1.2.3", "Commit: abc123", "Built:  2026-01-02"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, renderVersion(tt.renderer.Renderer, testBuild))
			for _, want := range tt.want {
				assert.Contains(t, tt.renderer.Output(), want)
			}
		})
	}
}

func TestRenderVersionJSON(t *testing.T) {
	tr := testutil.NewTestRendererJSON()
	require.NoError(t, renderVersion(tr.Renderer, testBuild))

	var got BuildInfo
	require.NoError(t, json.Unmarshal(tr.Out.Bytes(), &got))
	assert.Equal(t, testBuild, got)
}
