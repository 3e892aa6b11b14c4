package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/wordseq/internal/cli/output"
	"github.com/spf13/cobra"
)

// VocabOutput is the JSON shape of the vocab command.
type VocabOutput struct {
	Words   []string `json:"words"`
	Joiners []string `json:"joiners"`
	Overlap []string `json:"overlap"`
	Files   []string `json:"files"`
}

// NewVocabCommand creates the vocab command.
func NewVocabCommand() *cobra.Command {
	var summaryOnly bool
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "List the loaded words and joiners",
		Long: `List the vocabulary after merging every configured source.

Tokens are shown in match order: longest first, then lexically. Tokens
configured as both word and joiner are reported as a warning because they
make decompositions ambiguous.`,
		Example: `  # List tokens from a vocabulary document
  wordseq vocab --vocab animals.yaml

  # Only show counts
  wordseq vocab --summary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVocab(cmd, summaryOnly)
		},
	}
	cmd.Flags().BoolVar(&summaryOnly, "summary", false, "Only show token counts")
	return cmd
}

func runVocab(cmd *cobra.Command, summaryOnly bool) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	src, v, err := cmdCtx.LoadVocabulary()
	if err != nil {
		return err
	}

	out := VocabOutput{
		Words:   v.Words(),
		Joiners: v.Joiners(),
		Overlap: v.Overlap(),
		Files:   src.Files,
	}
	if out.Overlap == nil {
		out.Overlap = []string{}
	}
	if out.Files == nil {
		out.Files = []string{}
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(out)
	}

	r.Header(1, "Vocabulary")
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatKeyValue("Words", fmt.Sprintf("%d", len(out.Words))))
		r.Println(output.FormatKeyValue("Joiners", fmt.Sprintf("%d", len(out.Joiners))))
		if len(out.Files) > 0 {
			r.Println(output.FormatKeyValue("Files", strings.Join(out.Files, ", ")))
		}
	} else {
		r.Printf("%d words, %d joiners\n", len(out.Words), len(out.Joiners))
		for _, f := range out.Files {
			r.Println(r.Muted("  from " + f))
		}
	}

	if len(out.Overlap) > 0 {
		quoted := make([]string, len(out.Overlap))
		for i, tok := range out.Overlap {
			quoted[i] = output.Quote(tok)
		}
		r.Warning("configured as both word and joiner: " + strings.Join(quoted, ", "))
	}

	if summaryOnly {
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Kind", "Token", "Bytes"})
	for _, w := range out.Words {
		t.AppendRow(table.Row{"word", output.Quote(w), len(w)})
	}
	for _, j := range out.Joiners {
		t.AppendRow(table.Row{"joiner", output.Quote(j), len(j)})
	}

	r.Println()
	if r.EffectiveMode() == output.ModeMarkdown {
		t.RenderMarkdown()
		return nil
	}
	t.Render()
	return nil
}
