package seq

import (
	"sort"
)

// Vocabulary holds the word and joiner token sets.
//
// Tokens are deduplicated and ordered longest first, then lexically, so
// the search tries candidates in a deterministic order and Segment prefers
// longer tokens. A Vocabulary is immutable once built.
type Vocabulary struct {
	words   []string
	joiners []string
}

// NewVocabulary builds a vocabulary from the two token sets.
// It returns an *EmptyTokenError if either set contains "".
func NewVocabulary(words, joiners []string) (*Vocabulary, error) {
	if containsEmpty(words) {
		return nil, &EmptyTokenError{Set: SetWords}
	}
	if containsEmpty(joiners) {
		return nil, &EmptyTokenError{Set: SetJoiners}
	}
	return &Vocabulary{
		words:   normalizeSet(words),
		joiners: normalizeSet(joiners),
	}, nil
}

// Words returns a copy of the word tokens in match order.
func (v *Vocabulary) Words() []string {
	return append([]string(nil), v.words...)
}

// Joiners returns a copy of the joiner tokens in match order.
func (v *Vocabulary) Joiners() []string {
	return append([]string(nil), v.joiners...)
}

// Size returns the number of distinct words and joiners.
func (v *Vocabulary) Size() (words, joiners int) {
	return len(v.words), len(v.joiners)
}

// HasWord reports whether s is a configured word.
func (v *Vocabulary) HasWord(s string) bool {
	return contains(v.words, s)
}

// HasJoiner reports whether s is a configured joiner.
func (v *Vocabulary) HasJoiner(s string) bool {
	return contains(v.joiners, s)
}

// Overlap returns the tokens present in both sets, sorted lexically.
// The sets are expected to be disjoint; overlap is allowed but makes
// decompositions ambiguous.
func (v *Vocabulary) Overlap() []string {
	joiners := make(map[string]struct{}, len(v.joiners))
	for _, j := range v.joiners {
		joiners[j] = struct{}{}
	}
	var out []string
	for _, w := range v.words {
		if _, ok := joiners[w]; ok {
			out = append(out, w)
		}
	}
	sort.Strings(out)
	return out
}

// mapTokens returns a new vocabulary with fn applied to every token.
func (v *Vocabulary) mapTokens(fn func(string) string) *Vocabulary {
	apply := func(in []string) []string {
		out := make([]string, 0, len(in))
		for _, s := range in {
			if m := fn(s); m != "" {
				out = append(out, m)
			}
		}
		return normalizeSet(out)
	}
	return &Vocabulary{words: apply(v.words), joiners: apply(v.joiners)}
}

func containsEmpty(set []string) bool {
	for _, s := range set {
		if s == "" {
			return true
		}
	}
	return false
}

func contains(set []string, s string) bool {
	for _, t := range set {
		if t == s {
			return true
		}
	}
	return false
}

// normalizeSet deduplicates tokens and orders them longest first.
func normalizeSet(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}
