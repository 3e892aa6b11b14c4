// Package token defines the pieces a validated input is split into.
//
// A segmentation is an ordered list of tokens whose texts concatenate back
// to the original input. Each token records which vocabulary it came from
// and where in the input it was matched.
package token

import "fmt"

// Kind identifies which vocabulary a token was drawn from.
type Kind int32

const (
	// Word is a token drawn from the word set.
	Word Kind = iota
	// Joiner is a token drawn from the joiner set.
	Joiner
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Joiner:
		return "joiner"
	default:
		return fmt.Sprintf("kind(%d)", int32(k))
	}
}

// MarshalText implements encoding.TextMarshaler so kinds render as names in JSON.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "word":
		*k = Word
	case "joiner":
		*k = Joiner
	default:
		return fmt.Errorf("unknown token kind %q", string(text))
	}
	return nil
}

// Token is a vocabulary entry matched at a specific place in the input.
type Token struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
	Span Span   `json:"span"`
}

// String returns a debug representation such as word("cat")@0.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Kind, t.Text, t.Span.Start.Offset)
}
