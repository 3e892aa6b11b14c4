package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/wordseq/internal/cli/config"
)

// ConfigField describes one key of wordseq.yaml.
type ConfigField struct {
	Key         string
	Type        string
	Default     string
	Description string
}

func getConfigSchema() []ConfigField {
	return []ConfigField{
		{"words", "list", "", "Inline word tokens"},
		{"joiners", "list", "", "Inline joiner tokens"},
		{"words_files", "list", "", "Plain text files with one word per line"},
		{"joiners_files", "list", "", "Plain text files with one joiner per line"},
		{"vocab_files", "list", "", "YAML documents with words and joiners keys"},
		{"strict", "bool", "false", "Require a word after every joiner"},
		{"normalize", "string", config.DefaultNormalize, "Unicode normalization: " + strings.Join(config.NormalizationForms, ", ")},
		{"fold_case", "bool", "false", "Match case-insensitively"},
		{"output", "string", config.DefaultOutput, "Output format: " + strings.Join(config.OutputFormats, ", ")},
		{"verbose", "bool", "false", "Enable debug logging"},
		{"concurrency", "int", fmt.Sprint(config.DefaultConcurrency), "Files checked in parallel"},
		{"watch_debounce", "duration", config.DefaultWatchDebounce.String(), "Delay before watch re-checks after a change"},
	}
}

// generateConfigDocs writes the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Configuration", "wordseq.yaml keys and environment variables")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph("wordseq reads `wordseq.yaml` (or `wordseq.yml`) from the current directory or the nearest parent. " +
		"Relative file paths resolve against the directory holding the config file.")
	w.Paragraph("Values are layered in this order, later layers winning: defaults, config file, environment, flags.")

	headers := []string{"Key", "Environment", "Type", "Default", "Description"}
	var rows [][]string
	for _, f := range getConfigSchema() {
		def := f.Default
		if def != "" {
			def = InlineCode(def)
		}
		rows = append(rows, []string{
			InlineCode(f.Key),
			InlineCode(config.EnvPrefix + strings.ToUpper(f.Key)),
			f.Type,
			def,
			f.Description,
		})
	}
	w.Table(headers, rows)

	w.Header(2, "Example")
	w.CodeBlock("yaml", `vocab_files:
  - vocab/animals.yaml
words_files:
  - vocab/extra-words.txt
joiners:
  - "-"
  - "_"
normalize: nfc
strict: false`)

	return os.WriteFile(filepath.Join(outDir, "configuration.md"), w.Bytes(), 0600)
}
