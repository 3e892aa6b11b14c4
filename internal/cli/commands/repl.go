package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/wordseq/internal/cli/config"
	"github.com/leapstack-labs/wordseq/pkg/seq"
	"github.com/spf13/cobra"
)

const replPrompt = "wordseq> "

// maxCompletionWords caps the words offered for tab completion.
const maxCompletionWords = 500

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Check inputs interactively",
		Long: `Start an interactive session. Each line is checked against the
vocabulary and the accepted decomposition is printed.

Type .help for commands, .quit to exit.`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
	return cmd
}

func runREPL(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)

	_, vocab, err := cmdCtx.LoadVocabulary()
	if err != nil {
		return err
	}
	session, err := newREPLSession(vocab, *cmdCtx.Cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".wordseq_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     historyFile,
		AutoComplete:    newWordCompleter(vocab),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "wordseq REPL")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if session.handle(line) {
			return nil
		}
	}
}

// replSession evaluates REPL lines. It is separate from readline so the
// evaluation can be driven directly.
type replSession struct {
	vocab  *seq.Vocabulary
	cfg    config.Config
	v      *seq.Validator
	out    io.Writer
	errOut io.Writer
}

func newREPLSession(vocab *seq.Vocabulary, cfg config.Config, out, errOut io.Writer) (*replSession, error) {
	s := &replSession{vocab: vocab, cfg: cfg, out: out, errOut: errOut}
	if err := s.rebuild(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *replSession) rebuild() error {
	opts, err := ValidatorOptions(&s.cfg)
	if err != nil {
		return err
	}
	s.v = seq.New(s.vocab, opts...)
	return nil
}

// handle evaluates one line and reports whether the session should end.
func (s *replSession) handle(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, ".") {
		return s.handleDotCommand(trimmed)
	}

	seg, verdict := s.v.Segment(line)
	if verdict.OK() {
		_, _ = fmt.Fprintf(s.out, "valid    %s\n", seg.String())
	} else {
		_, _ = fmt.Fprintln(s.out, "invalid")
	}
	return false
}

func (s *replSession) handleDotCommand(line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(s.out)

	case ".strict":
		s.cfg.Strict = !s.cfg.Strict
		if err := s.rebuild(); err != nil {
			_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
			return false
		}
		state := "off"
		if s.cfg.Strict {
			state = "on"
		}
		_, _ = fmt.Fprintf(s.out, "strict joiners %s\n", state)

	case ".vocab":
		words, joiners := s.vocab.Size()
		_, _ = fmt.Fprintf(s.out, "%d words, %d joiners\n", words, joiners)

	case ".check":
		// Validates the rest of the line verbatim, for inputs starting with '.'
		rest := strings.TrimPrefix(line, parts[0])
		rest = strings.TrimPrefix(rest, " ")
		_, _ = fmt.Fprintln(s.out, s.v.Validate(rest).String())

	default:
		_, _ = fmt.Fprintf(s.errOut, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .strict         Toggle strict joiners (a word must follow every joiner)
  .vocab          Show vocabulary size
  .check <input>  Check an input that starts with '.'
  .quit / .exit   Exit the REPL

Tips:
  - Any other line is checked as-is, including surrounding spaces
  - Use arrow keys to navigate history
  - Tab completion works for words
`
	_, _ = fmt.Fprintln(w, help)
}

// newWordCompleter creates a readline completer for dot-commands and words.
func newWordCompleter(vocab *seq.Vocabulary) *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem(".help"),
		readline.PcItem(".strict"),
		readline.PcItem(".vocab"),
		readline.PcItem(".check"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	}
	for i, w := range vocab.Words() {
		if i >= maxCompletionWords {
			break
		}
		items = append(items, readline.PcItem(w))
	}
	return readline.NewPrefixCompleter(items...)
}
