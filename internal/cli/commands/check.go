package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/leapstack-labs/wordseq/internal/cli/output"
	"github.com/leapstack-labs/wordseq/pkg/seq"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// stdinName is the --file value that reads inputs from stdin.
const stdinName = "-"

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Files []string // Files with one input per line, "-" for stdin
	Quiet bool     // Only report invalid inputs
}

// CheckResult is the verdict for one input.
type CheckResult struct {
	Source  string      `json:"source"`
	Line    int         `json:"line"`
	Input   string      `json:"input"`
	Verdict seq.Verdict `json:"verdict"`
}

// CheckSummary counts verdicts.
type CheckSummary struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
}

// CheckOutput is the JSON shape of the check command.
type CheckOutput struct {
	Results []CheckResult `json:"results"`
	Summary CheckSummary  `json:"summary"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [input...]",
		Short: "Validate inputs against the vocabulary",
		Long: `Check whether each input is a sequence of words separated by joiners.

Inputs come from arguments and from --file, which reads one input per line
("-" reads stdin). Files are checked in parallel, bounded by concurrency.
The command exits non-zero if any input is invalid.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Check a single string
  wordseq check --words cat,dog --joiners - cat-dog

  # Check every line of a file
  wordseq check --file names.txt

  # Check lines from stdin, reporting only failures
  cat names.txt | wordseq check --file - --quiet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Files, "file", nil, "File with one input per line (\"-\" for stdin)")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Only report invalid inputs")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)

	if len(args) == 0 && len(opts.Files) == 0 {
		return fmt.Errorf("nothing to check\nHint: pass inputs as arguments or use --file")
	}

	v, err := cmdCtx.NewValidator()
	if err != nil {
		return err
	}

	results, err := checkInputs(cmd, v, args, opts.Files, cmdCtx.Cfg.Concurrency)
	if err != nil {
		return err
	}

	out := summarize(results)
	cmdCtx.Logger.Debug("check finished", "total", out.Summary.Total, "invalid", out.Summary.Invalid)

	if err := renderCheck(cmdCtx.Renderer, out, opts.Quiet); err != nil {
		return err
	}
	if out.Summary.Invalid > 0 {
		return ErrInvalidInput
	}
	return nil
}

// checkInputs validates arguments in order, then each file in parallel.
// Results keep argument order followed by file order.
func checkInputs(cmd *cobra.Command, v *seq.Validator, args, files []string, concurrency int) ([]CheckResult, error) {
	// Stdin can only be consumed by one reader.
	if n := countStdin(files); n > 1 {
		return nil, fmt.Errorf("%w: stdin (%q) given %d times to --file", ErrRepeatedStdin, stdinName, n)
	}

	results := make([]CheckResult, 0, len(args))
	for i, in := range args {
		results = append(results, CheckResult{Source: "args", Line: i + 1, Input: in, Verdict: v.Validate(in)})
	}

	perFile := make([][]CheckResult, len(files))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(concurrency, 1))
	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var res []CheckResult
			var err error
			if name == stdinName {
				res, err = checkReader(v, "stdin", cmd.InOrStdin())
			} else {
				res, err = checkFile(v, name)
			}
			perFile[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, res := range perFile {
		results = append(results, res...)
	}
	return results, nil
}

func countStdin(files []string) int {
	n := 0
	for _, f := range files {
		if f == stdinName {
			n++
		}
	}
	return n
}

func checkFile(v *seq.Validator, path string) ([]CheckResult, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return checkReader(v, path, f)
}

func checkReader(v *seq.Validator, source string, r io.Reader) ([]CheckResult, error) {
	var results []CheckResult
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		in := strings.TrimSuffix(scanner.Text(), "\r")
		results = append(results, CheckResult{Source: source, Line: line, Input: in, Verdict: v.Validate(in)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	return results, nil
}

func summarize(results []CheckResult) CheckOutput {
	out := CheckOutput{Results: results}
	if out.Results == nil {
		out.Results = []CheckResult{}
	}
	for _, res := range results {
		out.Summary.Total++
		if res.Verdict.OK() {
			out.Summary.Valid++
		} else {
			out.Summary.Invalid++
		}
	}
	return out
}

func renderCheck(r *output.Renderer, out CheckOutput, quiet bool) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(out)
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Header(1, "Check Results")
	}
	for _, res := range out.Results {
		if quiet && res.Verdict.OK() {
			continue
		}
		detail := ""
		if res.Source != "args" {
			detail = fmt.Sprintf("%s:%d", res.Source, res.Line)
		}
		r.StatusLine(output.Quote(res.Input), res.Verdict.String(), detail)
	}

	summary := fmt.Sprintf("%d checked, %d valid, %d invalid", out.Summary.Total, out.Summary.Valid, out.Summary.Invalid)
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println()
		r.Println(output.FormatKeyValue("Summary", summary))
		return nil
	}
	if out.Summary.Invalid == 0 {
		r.Success(summary)
	} else {
		r.Println(r.Styles().Error.Render(summary))
	}
	return nil
}
