// Package config provides configuration management for the wordseq CLI.
//
// Values are layered with koanf: built-in defaults, then wordseq.yaml,
// then WORDSEQ_* environment variables, then explicitly set flags.
package config

import "time"

// Config holds all CLI configuration options.
type Config struct {
	Words        []string `koanf:"words"`
	Joiners      []string `koanf:"joiners"`
	WordsFiles   []string `koanf:"words_files"`
	JoinersFiles []string `koanf:"joiners_files"`
	VocabFiles   []string `koanf:"vocab_files"`
	Strict       bool     `koanf:"strict"`
	Normalize    string   `koanf:"normalize"`
	FoldCase     bool     `koanf:"fold_case"`
	OutputFormat string   `koanf:"output"`
	Verbose      bool     `koanf:"verbose"`
	Concurrency  int      `koanf:"concurrency"`

	// WatchDebounce is how long watch waits after the last change before
	// checking again. Accepts Go duration strings such as "250ms".
	WatchDebounce time.Duration `koanf:"watch_debounce"`

	// ProjectRoot is the directory relative file paths are resolved against.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultNormalize   = "none"
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultConcurrency = 4

	DefaultWatchDebounce = 100 * time.Millisecond
)

// Normalization form names accepted by the normalize key.
var NormalizationForms = []string{"none", "nfc", "nfd", "nfkc", "nfkd"}

// OutputFormats lists the accepted values of the output key.
var OutputFormats = []string{"auto", "text", "markdown", "json"}
