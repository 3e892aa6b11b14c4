package token

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "word", Word.String())
	assert.Equal(t, "joiner", Joiner.String())
	assert.Equal(t, "kind(7)", Kind(7).String())
}

func TestSpanLen(t *testing.T) {
	start := Position{Line: 1, Column: 5, Offset: 4}
	s := Span{Start: start, End: Advance(start, "dog")}

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 2, Span{End: Advance(Position{Line: 1, Column: 1}, "é")}.Len())
}

func TestTokenJSON(t *testing.T) {
	start := Position{Line: 1, Column: 4, Offset: 3}
	tok := Token{Kind: Joiner, Text: "-", Span: Span{Start: start, End: Advance(start, "-")}}

	data, err := json.Marshal(tok)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"joiner"`)
	assert.Contains(t, string(data), `"text":"-"`)
	assert.Equal(t, `joiner("-")@3`, tok.String())

	var back Token
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, tok, back)

	var k Kind
	assert.Error(t, k.UnmarshalText([]byte("space")))
}

func TestAdvance(t *testing.T) {
	start := Position{Line: 1, Column: 1}

	p := Advance(start, "cat")
	assert.Equal(t, Position{Line: 1, Column: 4, Offset: 3}, p)

	p = Advance(p, "\né")
	assert.Equal(t, Position{Line: 2, Column: 2, Offset: 6}, p)
}
