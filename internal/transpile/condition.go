package transpile

import (
	"strings"

	"github.com/talefold/talefold/internal/dialect"
	"github.com/talefold/talefold/internal/expr"
)

// Condition compiles raw condition input into one expression in the target
// engine's syntax.
//
// input may be nil, a decoded condition map, or a JSON string; engine must
// name one of the supported targets. An unknown engine is checked first and
// is fatal; legacy condition input propagates as expr.LegacyConditionError.
// An absent condition compiles to the empty string. Warnings never suppress
// output.
func Condition(input any, engine string) (string, []expr.Warning, error) {
	d, err := dialect.Parse(engine)
	if err != nil {
		return "", nil, err
	}

	cond, err := expr.DecodeCondition(input)
	if err != nil {
		return "", nil, err
	}

	text, warnings := compileNode(expr.Extract(cond), d, true)
	return text, warnings, nil
}

// compileNode compiles one node of the condition tree. root marks the
// outermost call: the root's result is returned unwrapped no matter how many
// children survive.
func compileNode(n expr.Node, d *dialect.Dialect, root bool) (string, []expr.Warning) {
	var (
		logic    expr.Logic
		parts    []string
		warnings []expr.Warning
	)

	switch node := n.(type) {
	case expr.RuleSet:
		logic = node.Logic
		for _, r := range node.Rules {
			text, w := d.CompileRule(r)
			warnings = append(warnings, w...)
			if text != "" {
				parts = append(parts, text)
			}
		}
	case expr.Group:
		logic = node.Logic
		for _, child := range node.Children {
			text, w := compileNode(child, d, false)
			warnings = append(warnings, w...)
			if text != "" {
				parts = append(parts, text)
			}
		}
	}

	return join(parts, logic, d, root), warnings
}

// join combines compiled fragments with the logic keyword and applies the
// parenthesization rule: a multi-fragment result is wrapped exactly once,
// except at the root. Zero or one fragment passes through untouched.
func join(parts []string, logic expr.Logic, d *dialect.Dialect, root bool) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}

	if logic == expr.LogicAny && d.WrapOrOperands {
		wrapped := make([]string, len(parts))
		for i, p := range parts {
			wrapped[i] = "(" + p + ")"
		}
		parts = wrapped
	}

	joined := strings.Join(parts, " "+d.Joiner(logic)+" ")
	if root {
		return joined
	}
	return "(" + joined + ")"
}
