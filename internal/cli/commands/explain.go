package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/wordseq/internal/cli/output"
	"github.com/leapstack-labs/wordseq/pkg/seq"
	"github.com/leapstack-labs/wordseq/pkg/token"
	"github.com/spf13/cobra"
)

// ExplainOutput is the JSON shape of the explain command.
type ExplainOutput struct {
	Input        string           `json:"input"`
	Verdict      seq.Verdict      `json:"verdict"`
	Strict       bool             `json:"strict"`
	Segmentation seq.Segmentation `json:"segmentation"`
}

// NewExplainCommand creates the explain command.
func NewExplainCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain <input>",
		Short: "Show how an input splits into words and joiners",
		Long: `Explain prints one accepted decomposition of the input: each word and
joiner with its byte offset and column. Longer tokens are preferred when
several decompositions exist.

Exits non-zero when the input is invalid.`,
		Example: `  # Show the tokens of a valid input
  wordseq explain --words cat,dog --joiners - cat--dog

  # Machine-readable output
  wordseq explain -o json cat-dog`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(cmd, args[0])
		},
	}
	return cmd
}

func runExplain(cmd *cobra.Command, input string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	v, err := cmdCtx.NewValidator()
	if err != nil {
		return err
	}

	seg, verdict := v.Segment(input)
	out := ExplainOutput{Input: input, Verdict: verdict, Strict: v.Strict(), Segmentation: seg}
	if out.Segmentation.Tokens == nil {
		out.Segmentation.Tokens = []token.Token{}
	}

	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(out); err != nil {
			return err
		}
	} else {
		renderExplain(r, out)
	}

	if !verdict.OK() {
		return ErrInvalidInput
	}
	return nil
}

func renderExplain(r *output.Renderer, out ExplainOutput) {
	r.Header(1, fmt.Sprintf("Explain %s", output.Quote(out.Input)))
	r.StatusLine(output.Quote(out.Input), out.Verdict.String(), "")

	if !out.Verdict.OK() {
		r.Println("No decomposition into words and joiners exists.")
		return
	}
	if len(out.Segmentation.Tokens) == 0 {
		r.Println("Empty input is always valid.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Kind", "Token", "Offset", "Column", "Bytes"})
	for i, tok := range out.Segmentation.Tokens {
		kind := tok.Kind.String()
		if r.EffectiveMode() == output.ModeText {
			if tok.Kind == token.Word {
				kind = r.Styles().Word.Render(kind)
			} else {
				kind = r.Styles().Joiner.Render(kind)
			}
		}
		t.AppendRow(table.Row{i + 1, kind, output.Quote(tok.Text), tok.Span.Start.Offset, tok.Span.Start.Column, tok.Span.Len()})
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println()
		t.RenderMarkdown()
		return
	}
	t.Render()
}
