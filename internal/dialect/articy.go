package dialect

import (
	"fmt"

	"github.com/talefold/talefold/internal/expr"
)

// Articy targets articy:draft expresso. Syntax is close to the native
// dialect (C-style operators, dotted references); string predicates compile
// to the same capitalized script methods as Unreal, which the exporter
// registers in the project template.
var Articy = &Dialect{
	Engine: EngineArticy,
	Ref:    RefDot,
	And:    "&&",
	Or:     "||",
	Null:   "null",
	cond:   articyCond,
	assign: articyAssign,
}

func articyCond(d *Dialect, r expr.Rule) (string, []expr.Warning) {
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
		return fmt.Sprintf("Contains(%s, %s)", ref, lit), nil
	case "not_contains":
		return fmt.Sprintf("!Contains(%s, %s)", ref, lit), nil
	case "starts_with":
		return fmt.Sprintf("StartsWith(%s, %s)", ref, lit), nil
	case "ends_with":
		return fmt.Sprintf("EndsWith(%s, %s)", ref, lit), nil
	case "before":
		return fmt.Sprintf("%s < %s", ref, lit), nil
	case "after":
		return fmt.Sprintf("%s > %s", ref, lit), nil
	default:
		return genericCond(d, r, ref, lit)
	}
}

func articyAssign(d *Dialect, a expr.Assignment, value string) (string, []expr.Warning) {
	ref := d.FormatRef(a.Sheet, a.Variable)

	switch a.Operator {
	case "set":
		return fmt.Sprintf("%s = %s", ref, value), nil
	case "add":
		return fmt.Sprintf("%s += %s", ref, value), nil
	case "subtract":
		return fmt.Sprintf("%s -= %s", ref, value), nil
	case "set_true":
		return ref + " = true", nil
	case "set_false":
		return ref + " = false", nil
	case "toggle":
		return fmt.Sprintf("%s = !%s", ref, ref), nil
	case "clear":
		return ref + " = " + d.Null, nil
	case "set_if_unset":
		text := fmt.Sprintf("%s = %s", ref, value)
		return text, []expr.Warning{unsupportedWarning(d, a.Operator, ref)}
	default:
		return genericAssign(d, a, ref, value)
	}
}
