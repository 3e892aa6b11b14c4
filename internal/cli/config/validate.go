package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !slices.Contains(NormalizationForms, strings.ToLower(c.Normalize)) {
		return fmt.Errorf("unknown normalization form %q (available: %s)", c.Normalize, strings.Join(NormalizationForms, ", "))
	}
	if !slices.Contains(OutputFormats, strings.ToLower(c.OutputFormat)) {
		return fmt.Errorf("unknown output format %q (available: %s)", c.OutputFormat, strings.Join(OutputFormats, ", "))
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.WatchDebounce <= 0 {
		return fmt.Errorf("watch_debounce must be positive, got %s", c.WatchDebounce)
	}
	return nil
}

// HasVocabulary reports whether any token source is configured.
func (c *Config) HasVocabulary() bool {
	return len(c.Words)+len(c.Joiners)+len(c.WordsFiles)+len(c.JoinersFiles)+len(c.VocabFiles) > 0
}

// ValidateFiles checks that every configured vocabulary file exists.
func (c *Config) ValidateFiles() error {
	for _, group := range [][]string{c.VocabFiles, c.WordsFiles, c.JoinersFiles} {
		for _, path := range group {
			if _, err := os.Stat(path); os.IsNotExist(err) {
				return fmt.Errorf("vocabulary file does not exist: %s\nHint: paths in wordseq.yaml are relative to the project root (%s)", path, c.ProjectRoot)
			}
		}
	}
	return nil
}
