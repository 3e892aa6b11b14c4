package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/leapstack-labs/wordseq/internal/cli/config"
	"github.com/leapstack-labs/wordseq/internal/cli/output"
	"github.com/leapstack-labs/wordseq/internal/vocab"
	"github.com/leapstack-labs/wordseq/pkg/seq"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidInput is returned by commands when at least one input was
// rejected, so the process exits non-zero.
var ErrInvalidInput = errors.New("invalid input found")

// ErrRepeatedStdin is returned when "-" is passed more than once as an input file.
var ErrRepeatedStdin = errors.New("stdin can only be read once")

// ErrNoVocabulary is returned when no word or joiner source is configured.
var ErrNoVocabulary = errors.New("no vocabulary configured\nHint: set words/joiners in wordseq.yaml or pass --words, --joiners, --words-file, --joiners-file or --vocab")

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext collects the config and renderer the root command
// stored in the context. Commands run on their own (as in tests) fall back
// to the last loaded config and a renderer on the command's writers.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.FromContext(ctx)
	if cfg == nil {
		cfg = getConfig()
	}
	logger := config.GetLogger(ctx)
	r, ok := ctx.Value(config.RendererKey()).(*output.Renderer)
	if !ok {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// LoadVocabulary reads every configured token source.
func (c *CommandContext) LoadVocabulary() (*vocab.Source, *seq.Vocabulary, error) {
	if !c.Cfg.HasVocabulary() {
		return nil, nil, ErrNoVocabulary
	}
	if err := c.Cfg.ValidateFiles(); err != nil {
		return nil, nil, err
	}

	src, err := vocab.Load(vocab.Spec{
		Words:        c.Cfg.Words,
		Joiners:      c.Cfg.Joiners,
		WordsFiles:   c.Cfg.WordsFiles,
		JoinersFiles: c.Cfg.JoinersFiles,
		Documents:    c.Cfg.VocabFiles,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}

	v, err := src.Build()
	if err != nil {
		return nil, nil, err
	}

	words, joiners := v.Size()
	c.Logger.Debug("vocabulary loaded", "words", words, "joiners", joiners, "files", len(src.Files))
	if overlap := v.Overlap(); len(overlap) > 0 {
		c.Logger.Warn("tokens configured as both word and joiner", "tokens", overlap)
	}
	return src, v, nil
}

// NewValidator loads the vocabulary and applies the configured options.
func (c *CommandContext) NewValidator() (*seq.Validator, error) {
	_, v, err := c.LoadVocabulary()
	if err != nil {
		return nil, err
	}
	opts, err := ValidatorOptions(c.Cfg)
	if err != nil {
		return nil, err
	}
	return seq.New(v, opts...), nil
}

// ValidatorOptions translates configuration into seq options.
func ValidatorOptions(cfg *config.Config) ([]seq.Option, error) {
	var opts []seq.Option
	if cfg.Strict {
		opts = append(opts, seq.WithStrictJoiners())
	}
	if cfg.FoldCase {
		opts = append(opts, seq.WithFoldCase())
	}

	switch cfg.Normalize {
	case "", "none":
	case "nfc":
		opts = append(opts, seq.WithNormalization(norm.NFC))
	case "nfd":
		opts = append(opts, seq.WithNormalization(norm.NFD))
	case "nfkc":
		opts = append(opts, seq.WithNormalization(norm.NFKC))
	case "nfkd":
		opts = append(opts, seq.WithNormalization(norm.NFKD))
	default:
		return nil, fmt.Errorf("unknown normalization form %q", cfg.Normalize)
	}
	return opts, nil
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	concurrency := config.DefaultConcurrency
	if v, err := strconv.Atoi(os.Getenv("WORDSEQ_CONCURRENCY")); err == nil && v > 0 {
		concurrency = v
	}

	return &config.Config{
		Normalize:    getEnvOrDefault("WORDSEQ_NORMALIZE", config.DefaultNormalize),
		OutputFormat: getEnvOrDefault("WORDSEQ_OUTPUT", config.DefaultOutput),
		Verbose:      os.Getenv("WORDSEQ_VERBOSE") == "true",
		Strict:       os.Getenv("WORDSEQ_STRICT") == "true",
		Concurrency:  concurrency,

		WatchDebounce: config.DefaultWatchDebounce,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
