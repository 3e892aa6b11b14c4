// Package vocab loads word and joiner token sets from files.
//
// Two formats are supported. Token lists are plain text with one token per
// line; blank lines and lines starting with '#' are skipped, and a line
// wrapped in double quotes is unquoted with Go string syntax so that
// whitespace and escape sequences can be tokens:
//
//	# joiners
//	-
//	"_"
//	" "
//
// Vocabulary documents are YAML with a words and a joiners key:
//
//	words: [cat, dog]
//	joiners: ["-", " "]
package vocab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/leapstack-labs/wordseq/pkg/seq"
	"gopkg.in/yaml.v3"
)

// Source accumulates tokens from one or more files before the vocabulary
// is built.
type Source struct {
	Words   []string
	Joiners []string
	Files   []string // files the tokens were read from, in load order
}

// Merge appends the tokens and files of other to s.
func (s *Source) Merge(other *Source) {
	if other == nil {
		return
	}
	s.Words = append(s.Words, other.Words...)
	s.Joiners = append(s.Joiners, other.Joiners...)
	s.Files = append(s.Files, other.Files...)
}

// Empty reports whether no tokens have been collected.
func (s *Source) Empty() bool {
	return len(s.Words) == 0 && len(s.Joiners) == 0
}

// Build validates the collected tokens and returns the vocabulary.
func (s *Source) Build() (*seq.Vocabulary, error) {
	v, err := seq.NewVocabulary(s.Words, s.Joiners)
	if err != nil {
		if len(s.Files) > 0 {
			return nil, fmt.Errorf("vocabulary from %s: %w", strings.Join(s.Files, ", "), err)
		}
		return nil, err
	}
	return v, nil
}

// ParseError reports a malformed line in a token list or an invalid
// vocabulary document.
type ParseError struct {
	Path    string
	Line    int // 0 when the error is not tied to a line
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// UnknownFieldError indicates a vocabulary document used a key other than
// words or joiners.
type UnknownFieldError struct {
	Path  string
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%s: unknown field %q (expected words or joiners)", e.Path, e.Field)
}

// ParseList reads a token list. name is used in error messages.
func ParseList(name string, r io.Reader) ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, `"`) {
			unquoted, err := strconv.Unquote(line)
			if err != nil {
				return nil, &ParseError{Path: name, Line: lineNo, Message: fmt.Sprintf("invalid quoted token %s", line)}
			}
			line = unquoted
		}
		tokens = append(tokens, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return tokens, nil
}

// LoadList reads a token list from path.
func LoadList(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from user configuration
	if err != nil {
		return nil, fmt.Errorf("failed to open token list: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ParseList(path, f)
}

// ParseDocument parses a YAML vocabulary document.
func ParseDocument(name string, data []byte) (*Source, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Path: name, Message: fmt.Sprintf("invalid YAML: %v", err)}
	}
	for field := range raw {
		if field != "words" && field != "joiners" {
			return nil, &UnknownFieldError{Path: name, Field: field}
		}
	}

	var doc struct {
		Words   []string `yaml:"words"`
		Joiners []string `yaml:"joiners"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: name, Message: fmt.Sprintf("words and joiners must be string lists: %v", err)}
	}

	return &Source{Words: doc.Words, Joiners: doc.Joiners, Files: []string{name}}, nil
}

// LoadDocument reads a YAML vocabulary document from path.
func LoadDocument(path string) (*Source, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from user configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary document: %w", err)
	}
	return ParseDocument(path, data)
}

// Spec names the inline tokens and files that make up a vocabulary.
type Spec struct {
	Words        []string
	Joiners      []string
	WordsFiles   []string
	JoinersFiles []string
	Documents    []string
}

// Load collects every token named by spec. Inline tokens come first, then
// documents, then the per-kind lists.
func Load(spec Spec) (*Source, error) {
	src := &Source{
		Words:   append([]string(nil), spec.Words...),
		Joiners: append([]string(nil), spec.Joiners...),
	}

	for _, path := range spec.Documents {
		doc, err := LoadDocument(path)
		if err != nil {
			return nil, err
		}
		src.Merge(doc)
	}
	for _, path := range spec.WordsFiles {
		words, err := LoadList(path)
		if err != nil {
			return nil, err
		}
		src.Merge(&Source{Words: words, Files: []string{path}})
	}
	for _, path := range spec.JoinersFiles {
		joiners, err := LoadList(path)
		if err != nil {
			return nil, err
		}
		src.Merge(&Source{Joiners: joiners, Files: []string{path}})
	}

	return src, nil
}
