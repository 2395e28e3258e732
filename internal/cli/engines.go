package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/talefold/talefold/internal/dialect"
)

// EngineInfo describes one supported engine for the engines command.
type EngineInfo struct {
	Engine   string `json:"engine"`
	RefStyle string `json:"ref_style"`
	And      string `json:"and"`
	Or       string `json:"or"`
	Null     string `json:"null"`
}

// NewEnginesCommand creates the engines command.
func NewEnginesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "engines",
		Short: "List supported target engines",
		Long:  "List the supported target engines with their reference style, boolean joiners and null keyword.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:    rootOpts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   rootOpts.Verbose,
			}

			dialects := dialect.Dialects()
			infos := make([]EngineInfo, 0, len(dialects))
			for _, d := range dialects {
				infos = append(infos, EngineInfo{
					Engine:   string(d.Engine),
					RefStyle: d.Ref.String(),
					And:      d.And,
					Or:       d.Or,
					Null:     d.Null,
				})
			}

			if formatter.Format == "json" {
				return formatter.Success(infos, "")
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ENGINE\tREF STYLE\tAND\tOR\tNULL")
			for _, info := range infos {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", info.Engine, info.RefStyle, info.And, info.Or, info.Null)
			}
			return w.Flush()
		},
	}

	return cmd
}
