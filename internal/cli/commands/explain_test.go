package commands

import (
	"encoding/json"
	"testing"

	"github.com/leapstack-labs/wordseq/pkg/seq"
	"github.com/leapstack-labs/wordseq/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplainMarkdown(t *testing.T) {
	loadTestConfig(t, animalsConfig)

	out, _, err := execute(t, NewExplainCommand(), "", "cat--dog")
	require.NoError(t, err)

	assert.Contains(t, out, `# Explain "cat--dog"`)
	assert.Contains(t, out, "| # | Kind | Token | Offset | Column | Bytes |")
	assert.Contains(t, out, "| 4 | word | \"dog\" | 5 | 6 | 3 |")
}

func TestExplainJSON(t *testing.T) {
	loadTestConfig(t, animalsConfig+"output: json\n")

	out, _, err := execute(t, NewExplainCommand(), "", "cat-dog")
	require.NoError(t, err)

	var got ExplainOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, seq.Valid, got.Verdict)
	require.Len(t, got.Segmentation.Tokens, 3)
	assert.Equal(t, "-", got.Segmentation.Tokens[1].Text)
	assert.Contains(t, out, `"kind": "joiner"`)
	assert.Equal(t, token.Word, got.Segmentation.Tokens[2].Kind)
	assert.Equal(t, 4, got.Segmentation.Tokens[2].Span.Start.Offset)
}

func TestExplainInvalid(t *testing.T) {
	loadTestConfig(t, animalsConfig)

	out, _, err := execute(t, NewExplainCommand(), "", "-cat")
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, out, "No decomposition")
}

func TestExplainEmpty(t *testing.T) {
	loadTestConfig(t, animalsConfig)

	out, _, err := execute(t, NewExplainCommand(), "", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Empty input is always valid")
}

func TestExplainRequiresOneArg(t *testing.T) {
	loadTestConfig(t, animalsConfig)

	_, _, err := execute(t, NewExplainCommand(), "")
	assert.Error(t, err)
}
