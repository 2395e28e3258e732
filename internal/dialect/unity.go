package dialect

import (
	"fmt"

	"github.com/talefold/talefold/internal/expr"
)

// Unity targets the Lua dialect used by Unity dialogue databases.
// References index the Variable table with the dotted path intact, not-equal
// is ~=, and OR joins wrap every operand: Lua's and/or precedence plus the
// truthiness of bare table reads make `(a) or (b)` the only safe form.
var Unity = &Dialect{
	Engine:         EngineUnity,
	Ref:            RefLuaDict,
	And:            "and",
	Or:             "or",
	WrapOrOperands: true,
	Null:           "nil",
	cond:           unityCond,
	assign:         unityAssign,
}

func unityCond(d *Dialect, r expr.Rule) (string, []expr.Warning) {
	ref := d.ref(r)
	lit := d.FormatLiteral(r.Value)

	if tok, ok := comparison(r.Operator, "~="); ok {
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
		return fmt.Sprintf("string.find(%s, %s, 1, true) ~= nil", ref, lit), nil
	case "not_contains":
		return fmt.Sprintf("string.find(%s, %s, 1, true) == nil", ref, lit), nil
	case "starts_with":
		return fmt.Sprintf("string.sub(%s, 1, string.len(%s)) == %s", ref, lit, lit), nil
	case "ends_with":
		return fmt.Sprintf("string.sub(%s, -string.len(%s)) == %s", ref, lit, lit), nil
	case "before":
		return fmt.Sprintf("%s < %s", ref, lit), nil
	case "after":
		return fmt.Sprintf("%s > %s", ref, lit), nil
	default:
		return genericCond(d, r, ref, lit)
	}
}

func unityAssign(d *Dialect, a expr.Assignment, value string) (string, []expr.Warning) {
	ref := d.FormatRef(a.Sheet, a.Variable)

	switch a.Operator {
	case "set":
		return fmt.Sprintf("%s = %s", ref, value), nil
	case "add":
		// Lua has no compound assignment.
		return fmt.Sprintf("%s = %s + %s", ref, ref, value), nil
	case "subtract":
		return fmt.Sprintf("%s = %s - %s", ref, ref, value), nil
	case "set_true":
		return ref + " = true", nil
	case "set_false":
		return ref + " = false", nil
	case "toggle":
		return fmt.Sprintf("%s = not %s", ref, ref), nil
	case "clear":
		return ref + " = " + d.Null, nil
	case "set_if_unset":
		return fmt.Sprintf("if %s == nil then %s = %s end", ref, ref, value), nil
	default:
		return genericAssign(d, a, ref, value)
	}
}
