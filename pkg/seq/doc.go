// Package seq decides whether a string is a sequence of word tokens
// separated by joiner tokens.
//
// # Grammar
//
// A non-empty input is accepted when it decomposes as
//
//	word (joiner+ word?)*
//
// using tokens from two configured sets. Matching runs as two mutually
// recursive states, expect-word and expect-joiner, that try every token
// prefixing the remaining input. A joiner may be followed by another
// joiner, and a sequence may end after a joiner. The empty string is
// always accepted. WithStrictJoiners narrows this to word (joiner word)*.
//
// # Termination
//
// Every transition consumes a non-empty token, so the remaining input
// shrinks strictly on each step. Empty tokens are rejected when a
// Vocabulary is built, with an *EmptyTokenError. The states are evaluated
// as a table over (state, offset), filled from the end of the input
// backwards, so work is bounded by the input length times the number of
// candidate tokens at each offset and stack use does not grow with input
// length.
//
// # Usage
//
//	vocab, err := seq.NewVocabulary([]string{"cat", "dog"}, []string{"-"})
//	if err != nil {
//		return err
//	}
//	v := seq.New(vocab)
//	v.Validate("cat-dog") // seq.Valid
//	v.Validate("-cat")    // seq.Invalid
//
// A Validator holds no mutable state and is safe for concurrent use.
package seq
