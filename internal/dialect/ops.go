package dialect

import (
	"fmt"

	"github.com/talefold/talefold/internal/expr"
)

// comparisons maps the relational operator keys shared by every engine to
// their conventional tokens. not_equals is handled separately because one
// engine deviates (Unity's ~=).
var comparisons = map[string]string{
	"equals":                "==",
	"greater_than":          ">",
	"less_than":             "<",
	"greater_than_or_equal": ">=",
	"less_than_or_equal":    "<=",
}

// comparison resolves a relational operator to its token, with the dialect's
// not-equal spelling.
func comparison(op, notEqual string) (string, bool) {
	if op == "not_equals" {
		return notEqual, true
	}
	tok, ok := comparisons[op]
	return tok, ok
}

// unsupportedWarning describes an operator the engine cannot express
// faithfully. The formatted reference is included so the editor can point
// the writer at the variable involved.
func unsupportedWarning(d *Dialect, op, ref string) expr.Warning {
	return expr.Warning{
		Type:    expr.WarningUnsupportedOperator,
		Message: fmt.Sprintf("operator %q has no %s equivalent", op, d.Engine),
		Details: expr.WarningDetails{
			Operator: op,
			Engine:   string(d.Engine),
			Variable: ref,
		},
	}
}

// placeholder emits a commented stand-in for operators the engine cannot
// express at all. The placeholder participates in joins so surrounding output
// keeps its shape; the warning tells the writer to rework the rule.
func placeholder(d *Dialect, op, ref string) (string, []expr.Warning) {
	text := fmt.Sprintf("/* unsupported %s: %s */", op, ref)
	return text, []expr.Warning{unsupportedWarning(d, op, ref)}
}

// genericCond renders an operator outside the dialect's table as
// "ref OP literal" with a warning. Unknown semantics never fail a compile.
func genericCond(d *Dialect, r expr.Rule, ref, lit string) (string, []expr.Warning) {
	text := fmt.Sprintf("%s %s %s", ref, r.Operator, lit)
	return text, []expr.Warning{unsupportedWarning(d, r.Operator, ref)}
}

// genericAssign is genericCond's statement counterpart.
func genericAssign(d *Dialect, a expr.Assignment, ref, value string) (string, []expr.Warning) {
	text := fmt.Sprintf("%s %s %s", ref, a.Operator, value)
	return text, []expr.Warning{unsupportedWarning(d, a.Operator, ref)}
}
