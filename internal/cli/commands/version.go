package commands

import (
	"fmt"
	"runtime"

	"github.com/leapstack-labs/wordseq/internal/cli/output"
	"github.com/spf13/cobra"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(info BuildInfo) *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the wordseq version together with the commit and date it was built from.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if info.GoVersion == "" {
				info.GoVersion = runtime.Version()
			}
			if short {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), info.Version)
				return err
			}
			return renderVersion(NewCommandContext(cmd).Renderer, info)
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	return cmd
}

func renderVersion(r *output.Renderer, info BuildInfo) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(info)
	}

	r.Println(fmt.Sprintf("wordseq v%s", info.Version))
	r.Println(r.Muted("Word and joiner sequence validator"))

	fields := [][2]string{{"Commit", info.Commit}, {"Built", info.Date}, {"Go", info.GoVersion}}
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println()
		for _, f := range fields {
			r.Println(output.FormatKeyValue(f[0], f[1]))
		}
		return nil
	}
	for _, f := range fields {
		r.Printf("%-7s %s\n", f[0]+":", f[1])
	}
	return nil
}
