package dialect

import (
	"fmt"

	"github.com/talefold/talefold/internal/expr"
)

// Ink targets inkle's Ink. References flatten to underscore identifiers and
// statements carry the `~ ` logic prefix.
//
// Ink has no null: unset numeric variables read 0, so 0 stands in as the
// null keyword for is_nil and clear. Ink also lacks string predicates and
// date comparison entirely; those emit placeholders plus warnings.
var Ink = &Dialect{
	Engine: EngineInk,
	Ref:    RefUnderscore,
	And:    "and",
	Or:     "or",
	Null:   "0",
	cond:   inkCond,
	assign: inkAssign,
}

func inkCond(d *Dialect, r expr.Rule) (string, []expr.Warning) {
	ref := d.ref(r)
	lit := d.FormatLiteral(r.Value)

	if tok, ok := comparison(r.Operator, "!="); ok {
		return fmt.Sprintf("%s %s %s", ref, tok, lit), nil
	}

	switch r.Operator {
	case "is_true":
		return ref, nil
	case "is_false":
		return "not " + ref, nil
	case "is_nil":
		return ref + " == " + d.Null, nil
	case "is_empty":
		return ref + ` == ""`, nil
	case "contains", "not_contains", "starts_with", "ends_with":
		return placeholder(d, r.Operator, ref)
	case "before", "after":
		return placeholder(d, r.Operator, ref)
	default:
		return genericCond(d, r, ref, lit)
	}
}

func inkAssign(d *Dialect, a expr.Assignment, value string) (string, []expr.Warning) {
	ref := d.FormatRef(a.Sheet, a.Variable)

	switch a.Operator {
	case "set":
		return fmt.Sprintf("~ %s = %s", ref, value), nil
	case "add":
		// Ink has no compound assignment.
		return fmt.Sprintf("~ %s = %s + %s", ref, ref, value), nil
	case "subtract":
		return fmt.Sprintf("~ %s = %s - %s", ref, ref, value), nil
	case "set_true":
		return fmt.Sprintf("~ %s = true", ref), nil
	case "set_false":
		return fmt.Sprintf("~ %s = false", ref), nil
	case "toggle":
		return fmt.Sprintf("~ %s = not %s", ref, ref), nil
	case "clear":
		return fmt.Sprintf("~ %s = %s", ref, d.Null), nil
	case "set_if_unset":
		text := fmt.Sprintf("~ %s = %s", ref, value)
		return text, []expr.Warning{unsupportedWarning(d, a.Operator, ref)}
	default:
		text := fmt.Sprintf("~ %s %s %s", ref, a.Operator, value)
		return text, []expr.Warning{unsupportedWarning(d, a.Operator, ref)}
	}
}
