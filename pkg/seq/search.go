package seq

import (
	"strings"

	"github.com/leapstack-labs/wordseq/pkg/token"
)

type state uint8

const (
	expectWord state = iota
	expectJoiner
	// requireWord follows a joiner in strict mode: like expectWord, but the
	// input may not end here.
	requireWord
)

// search holds the acceptance tables for one input. It is never shared.
//
// The tables are filled from the end of the input towards the start, so
// every entry only reads entries at larger offsets and the stack stays
// flat whatever the input length.
type search struct {
	v      *Validator
	input  string
	record bool

	// word[pos] reports whether input[pos:] is accepted from a word state,
	// joiner[pos] from expectJoiner. Both are only meaningful for pos < len.
	word   []bool
	joiner []bool

	// Accepting transitions, kept when record is set. A word step always
	// moves to expectJoiner; a joiner step stores its target state.
	wordLen    []int32
	joinerLen  []int32
	joinerNext []state
}

func newSearch(v *Validator, input string, record bool) *search {
	n := len(input)
	s := &search{
		v:      v,
		input:  input,
		record: record,
		word:   make([]bool, n),
		joiner: make([]bool, n),
	}
	if record {
		s.wordLen = make([]int32, n)
		s.joinerLen = make([]int32, n)
		s.joinerNext = make([]state, n)
	}
	return s
}

// run fills the tables and reports whether the whole input is accepted
// from expectWord.
func (s *search) run() bool {
	for pos := len(s.input) - 1; pos >= 0; pos-- {
		s.fillWord(pos)
		s.fillJoiner(pos)
	}
	return s.accepts(expectWord, 0)
}

// accepts reads the table for (st, pos). Entries past pos must be filled.
func (s *search) accepts(st state, pos int) bool {
	if pos == len(s.input) {
		return st != requireWord
	}
	if st == expectJoiner {
		return s.joiner[pos]
	}
	return s.word[pos]
}

func (s *search) fillWord(pos int) {
	rest := s.input[pos:]
	for _, w := range s.v.words[rest[0]] {
		if !strings.HasPrefix(rest, w) {
			continue
		}
		if s.accepts(expectJoiner, pos+len(w)) {
			s.word[pos] = true
			if s.record {
				s.wordLen[pos] = int32(len(w))
			}
			return
		}
	}
}

func (s *search) fillJoiner(pos int) {
	rest := s.input[pos:]
	for _, j := range s.v.joiners[rest[0]] {
		if !strings.HasPrefix(rest, j) {
			continue
		}
		next := pos + len(j)

		var targets []state
		if s.v.opts.strict {
			targets = strictTargets
		} else {
			targets = joinerTargets
		}
		for _, st := range targets {
			if s.accepts(st, next) {
				s.joiner[pos] = true
				if s.record {
					s.joinerLen[pos] = int32(len(j))
					s.joinerNext[pos] = st
				}
				return
			}
		}
	}
}

// States reachable after a joiner, in preference order.
var (
	joinerTargets = []state{expectWord, expectJoiner}
	strictTargets = []state{requireWord}
)

// path replays recorded steps from the start state. It must only be
// called after run returned true.
func (s *search) path() []token.Token {
	var tokens []token.Token
	st, pos := expectWord, 0
	at := token.Position{Line: 1, Column: 1}
	for pos < len(s.input) {
		kind, size, next := token.Word, int(s.wordLen[pos]), expectJoiner
		if st == expectJoiner {
			kind, size, next = token.Joiner, int(s.joinerLen[pos]), s.joinerNext[pos]
		}
		text := s.input[pos : pos+size]
		end := token.Advance(at, text)
		tokens = append(tokens, token.Token{
			Kind: kind,
			Text: text,
			Span: token.Span{Start: at, End: end},
		})
		st, pos, at = next, end.Offset, end
	}
	return tokens
}
