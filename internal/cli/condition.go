package cli

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/talefold/talefold/internal/dialect"
	"github.com/talefold/talefold/internal/expr"
	"github.com/talefold/talefold/internal/transpile"
)

// CompileOptions holds flags shared by the condition and instruction
// commands.
type CompileOptions struct {
	*RootOptions
	Engine string
}

// CompileResult is the success payload for compile commands.
type CompileResult struct {
	Engine   string         `json:"engine"`
	Text     string         `json:"text"`
	Warnings []expr.Warning `json:"warnings,omitempty"`
}

// NewConditionCommand creates the condition command.
func NewConditionCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompileOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "condition <file>",
		Short: "Compile a condition to engine script syntax",
		Long: `Compile a condition file to the target engine's script syntax.

The file may be JSON (as exported by the editor), YAML, or CUE; pass "-" to
read JSON from stdin. The compiled expression is printed to stdout; warnings
about operators the engine cannot express go to stderr.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Errors get our own formatting
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(opts, args[0], cmd, transpile.Condition)
		},
	}

	cmd.Flags().StringVarP(&opts.Engine, "engine", "e", "", "target engine (native|ink|yarn|unity|godot|unreal|articy)")
	_ = cmd.MarkFlagRequired("engine")

	return cmd
}

// compileFunc is the shared shape of transpile.Condition and
// transpile.Instruction.
type compileFunc func(input any, engine string) (string, []expr.Warning, error)

func runCompile(opts *CompileOptions, path string, cmd *cobra.Command, compile compileFunc) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	jobID := uuid.NewString()
	formatter.VerboseLog("export job %s: compiling %s for %s", jobID, path, opts.Engine)

	input, err := LoadInput(path, cmd.InOrStdin())
	if err != nil {
		return compileError(formatter, err)
	}

	text, warnings, err := compile(input, opts.Engine)
	if err != nil {
		return compileError(formatter, err)
	}

	result := &CompileResult{
		Engine:   opts.Engine,
		Text:     text,
		Warnings: warnings,
	}

	if formatter.Format == "json" {
		return formatter.Success(result, jobID)
	}

	// Text mode: warnings go to stderr so the compiled script stays pipeable.
	for _, w := range warnings {
		fmt.Fprintf(formatter.GetErrWriter(), "warning: %s\n", w.Message)
	}
	return formatter.Success(text, jobID)
}

// compileError maps compile/load failures to formatted output plus the
// right exit code.
func compileError(formatter *OutputFormatter, err error) error {
	var unknownErr *dialect.UnknownEngineError
	if errors.As(err, &unknownErr) {
		_ = formatter.Error(ErrCodeUnknownEngine, err.Error(), nil)
		return NewExitError(ExitFailure, err.Error())
	}

	var legacyErr *expr.LegacyConditionError
	if errors.As(err, &legacyErr) {
		_ = formatter.Error(ErrCodeLegacy, "condition uses a legacy format and must be re-authored in the editor", legacyErr.Original)
		return NewExitError(ExitFailure, err.Error())
	}

	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		_ = formatter.Error(loadErr.Code, loadErr.Message, loadErr.Path)
		return NewExitError(ExitCommandError, err.Error())
	}

	_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
	return NewExitError(ExitFailure, err.Error())
}
