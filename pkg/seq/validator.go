package seq

import (
	"strings"

	"github.com/leapstack-labs/wordseq/pkg/token"
)

// Validator checks inputs against a vocabulary.
type Validator struct {
	source    *Vocabulary
	opts      options
	transform func(string) string

	// Tokens bucketed by first byte, longest first within a bucket.
	words   map[byte][]string
	joiners map[byte][]string
}

// New creates a Validator for vocab.
func New(vocab *Vocabulary, opts ...Option) *Validator {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	matchVocab := vocab
	transform := o.transform()
	if transform != nil {
		matchVocab = vocab.mapTokens(transform)
	}

	return &Validator{
		source:    vocab,
		opts:      o,
		transform: transform,
		words:     indexByFirstByte(matchVocab.words),
		joiners:   indexByFirstByte(matchVocab.joiners),
	}
}

// Validate is the one-shot form: it builds a vocabulary from words and
// joiners and classifies input. The only possible error is an
// *EmptyTokenError.
func Validate(input string, words, joiners []string) (Verdict, error) {
	vocab, err := NewVocabulary(words, joiners)
	if err != nil {
		return Invalid, err
	}
	return New(vocab).Validate(input), nil
}

// Vocabulary returns the vocabulary the validator was built from.
func (v *Validator) Vocabulary() *Vocabulary {
	return v.source
}

// Strict reports whether WithStrictJoiners was applied.
func (v *Validator) Strict() bool {
	return v.opts.strict
}

// Validate classifies input.
func (v *Validator) Validate(input string) Verdict {
	input = v.prepare(input)
	if input == "" {
		return Valid
	}
	return verdictOf(newSearch(v, input, false).run())
}

// Segment classifies input and, when it is valid, returns the accepted
// decomposition. Token spans refer to the input after normalization and
// case folding, which is returned as Segmentation.Input.
func (v *Validator) Segment(input string) (Segmentation, Verdict) {
	input = v.prepare(input)
	seg := Segmentation{Input: input}
	if input == "" {
		return seg, Valid
	}

	s := newSearch(v, input, true)
	if !s.run() {
		return seg, Invalid
	}
	seg.Tokens = s.path()
	return seg, Valid
}

func (v *Validator) prepare(input string) string {
	if v.transform == nil {
		return input
	}
	return v.transform(input)
}

// Segmentation is one accepted decomposition of an input.
type Segmentation struct {
	Input  string        `json:"input"`
	Tokens []token.Token `json:"tokens"`
}

// Words returns the texts of the word tokens in order.
func (s Segmentation) Words() []string {
	var out []string
	for _, t := range s.Tokens {
		if t.Kind == token.Word {
			out = append(out, t.Text)
		}
	}
	return out
}

// String renders the tokens separated by '|', e.g. "cat|-|dog".
func (s Segmentation) String() string {
	parts := make([]string, len(s.Tokens))
	for i, t := range s.Tokens {
		parts[i] = t.Text
	}
	return strings.Join(parts, "|")
}

func indexByFirstByte(tokens []string) map[byte][]string {
	idx := make(map[byte][]string)
	for _, t := range tokens {
		idx[t[0]] = append(idx[t[0]], t)
	}
	return idx
}
