package dialect

import (
	"fmt"

	"github.com/talefold/talefold/internal/expr"
)

// Yarn targets Yarn Spinner: $-prefixed underscore variables, keyword
// joiners, and <<set>> commands for statements. String predicates compile to
// the helper functions the exporter registers alongside the script.
var Yarn = &Dialect{
	Engine: EngineYarn,
	Ref:    RefDollarUnderscore,
	And:    "and",
	Or:     "or",
	Null:   "null",
	cond:   yarnCond,
	assign: yarnAssign,
}

func yarnCond(d *Dialect, r expr.Rule) (string, []expr.Warning) {
	ref := d.ref(r)
	lit := d.FormatLiteral(r.Value)

	if tok, ok := comparison(r.Operator, "!="); ok {
		return fmt.Sprintf("%s %s %s", ref, tok, lit), nil
	}

	switch r.Operator {
	case "is_true":
		return ref, nil
	case "is_false":
		return "!" + ref, nil
	case "is_nil":
		return ref + " == " + d.Null, nil
	case "is_empty":
		return ref + ` == ""`, nil
	case "contains":
		return fmt.Sprintf("contains(%s, %s)", ref, lit), nil
	case "not_contains":
		return fmt.Sprintf("!contains(%s, %s)", ref, lit), nil
	case "starts_with":
		return fmt.Sprintf("startsWith(%s, %s)", ref, lit), nil
	case "ends_with":
		return fmt.Sprintf("endsWith(%s, %s)", ref, lit), nil
	case "before":
		return fmt.Sprintf("%s < %s", ref, lit), nil
	case "after":
		return fmt.Sprintf("%s > %s", ref, lit), nil
	default:
		return genericCond(d, r, ref, lit)
	}
}

func yarnAssign(d *Dialect, a expr.Assignment, value string) (string, []expr.Warning) {
	ref := d.FormatRef(a.Sheet, a.Variable)

	switch a.Operator {
	case "set":
		return fmt.Sprintf("<<set %s to %s>>", ref, value), nil
	case "add":
		return fmt.Sprintf("<<set %s to %s + %s>>", ref, ref, value), nil
	case "subtract":
		return fmt.Sprintf("<<set %s to %s - %s>>", ref, ref, value), nil
	case "set_true":
		return fmt.Sprintf("<<set %s to true>>", ref), nil
	case "set_false":
		return fmt.Sprintf("<<set %s to false>>", ref), nil
	case "toggle":
		return fmt.Sprintf("<<set %s to !%s>>", ref, ref), nil
	case "clear":
		return fmt.Sprintf("<<set %s to %s>>", ref, d.Null), nil
	case "set_if_unset":
		text := fmt.Sprintf("<<set %s to %s>>", ref, value)
		return text, []expr.Warning{unsupportedWarning(d, a.Operator, ref)}
	default:
		return genericAssign(d, a, ref, value)
	}
}
