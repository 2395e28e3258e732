package dialect

import (
	"fmt"

	"github.com/talefold/talefold/internal/expr"
)

// Godot targets GDScript embedded in dialogue resources: underscore
// identifiers, pythonic keywords, `in`/`not in` membership, and single-line
// `if cond: stmt` guards.
var Godot = &Dialect{
	Engine: EngineGodot,
	Ref:    RefUnderscore,
	And:    "and",
	Or:     "or",
	Null:   "null",
	cond:   godotCond,
	assign: godotAssign,
}

func godotCond(d *Dialect, r expr.Rule) (string, []expr.Warning) {
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
	case "contains":
		return fmt.Sprintf("%s in %s", lit, ref), nil
	case "not_contains":
		return fmt.Sprintf("%s not in %s", lit, ref), nil
	case "starts_with":
		return fmt.Sprintf("%s.begins_with(%s)", ref, lit), nil
	case "ends_with":
		return fmt.Sprintf("%s.ends_with(%s)", ref, lit), nil
	case "before":
		return fmt.Sprintf("%s < %s", ref, lit), nil
	case "after":
		return fmt.Sprintf("%s > %s", ref, lit), nil
	default:
		return genericCond(d, r, ref, lit)
	}
}

func godotAssign(d *Dialect, a expr.Assignment, value string) (string, []expr.Warning) {
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
		return fmt.Sprintf("%s = not %s", ref, ref), nil
	case "clear":
		return ref + " = " + d.Null, nil
	case "set_if_unset":
		return fmt.Sprintf("if %s == null: %s = %s", ref, ref, value), nil
	default:
		return genericAssign(d, a, ref, value)
	}
}
