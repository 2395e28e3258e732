package cli

import (
	"github.com/spf13/cobra"

	"github.com/talefold/talefold/internal/transpile"
)

// NewInstructionCommand creates the instruction command.
func NewInstructionCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompileOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "instruction <file>",
		Short: "Compile an assignment list to engine script statements",
		Long: `Compile an instruction file (a list of assignments) to the target
engine's script statements, one per line.

The file may be JSON (as exported by the editor), YAML, or CUE; pass "-" to
read JSON from stdin. Assignments missing a target variable are skipped.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(opts, args[0], cmd, transpile.Instruction)
		},
	}

	cmd.Flags().StringVarP(&opts.Engine, "engine", "e", "", "target engine (native|ink|yarn|unity|godot|unreal|articy)")
	_ = cmd.MarkFlagRequired("engine")

	return cmd
}
