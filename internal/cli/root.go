// Package cli provides the command-line interface for wordseq.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/leapstack-labs/wordseq/internal/cli/commands"
	"github.com/leapstack-labs/wordseq/internal/cli/config"
	"github.com/leapstack-labs/wordseq/internal/cli/output"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordseq",
		Short: "wordseq - word and joiner sequence validator",
		Long: `wordseq checks whether strings are sequences of known words separated
by known joiners.

Words and joiners come from inline lists, plain token lists or YAML
vocabulary documents, configured in wordseq.yaml, WORDSEQ_* environment
variables or flags.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			var err error
			cfg, err = config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = context.WithValue(ctx, config.ConfigKey(), cfg)
			ctx = context.WithValue(ctx, config.LoggerKey(), newLogger(cmd, cfg.Verbose))

			// Create and store renderer based on output mode
			mode := output.Mode(cfg.OutputFormat)
			renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)
			ctx = context.WithValue(ctx, config.RendererKey(), renderer)
			cmd.SetContext(ctx)

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Using config file: %s\n", configFile)
				}
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./wordseq.yaml, searched upward)")
	rootCmd.PersistentFlags().StringSlice("words", nil, "Inline word tokens (comma separated)")
	rootCmd.PersistentFlags().StringSlice("joiners", nil, "Inline joiner tokens (comma separated)")
	rootCmd.PersistentFlags().StringSlice("words-file", nil, "Token list file with one word per line")
	rootCmd.PersistentFlags().StringSlice("joiners-file", nil, "Token list file with one joiner per line")
	rootCmd.PersistentFlags().StringSlice("vocab", nil, "YAML vocabulary document with words and joiners keys")
	rootCmd.PersistentFlags().Bool("strict", false, "Require a word after every joiner")
	rootCmd.PersistentFlags().String("normalize", "", "Unicode normalization (none|nfc|nfd|nfkc|nfkd)")
	rootCmd.PersistentFlags().Bool("fold-case", false, "Match case-insensitively")
	rootCmd.PersistentFlags().Int("concurrency", 0, "Files checked in parallel")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|markdown|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.OutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("normalize", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.NormalizationForms, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(commands.BuildInfo{
		Version: Version,
		Commit:  GitCommit,
		Date:    BuildDate,
	}))
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewExplainCommand())
	rootCmd.AddCommand(commands.NewVocabCommand())
	rootCmd.AddCommand(commands.NewWatchCommand())
	rootCmd.AddCommand(commands.NewREPLCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c := config.FromContext(ctx); c != nil {
		return c
	}
	// Return default config if none in context
	return &config.Config{
		Normalize:    config.DefaultNormalize,
		OutputFormat: config.DefaultOutput,
		Concurrency:  config.DefaultConcurrency,

		WatchDebounce: config.DefaultWatchDebounce,
	}
}

// GetRenderer retrieves the renderer from the command context.
func GetRenderer(ctx context.Context) *output.Renderer {
	if r, ok := ctx.Value(config.RendererKey()).(*output.Renderer); ok {
		return r
	}
	// Return default renderer if none in context
	return output.NewRenderer(os.Stdout, os.Stderr, output.ModeAuto)
}

func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for wordseq.

To load completions:

Bash:
  $ source <(wordseq completion bash)
  
  # To load completions for each session, execute once:
  # Linux:
  $ wordseq completion bash > /etc/bash_completion.d/wordseq
  # macOS:
  $ wordseq completion bash > $(brew --prefix)/etc/bash_completion.d/wordseq

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  
  # To load completions for each session, execute once:
  $ wordseq completion zsh > "${fpath[1]}/_wordseq"
  
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ wordseq completion fish | source
  
  # To load completions for each session, execute once:
  $ wordseq completion fish > ~/.config/fish/completions/wordseq.fish

PowerShell:
  PS> wordseq completion powershell | Out-String | Invoke-Expression
  
  # To load completions for every new session, run:
  PS> wordseq completion powershell > wordseq.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
	return cmd
}
