package dialect

import (
	"fmt"

	"github.com/talefold/talefold/internal/expr"
)

// Native is the tool's own runtime syntax: C-style operators over dotted
// references. String and date predicates exist in the runtime, but the
// scripting surface predates them; string predicates emit placeholders.
var Native = &Dialect{
	Engine: EngineNative,
	Ref:    RefDot,
	And:    "&&",
	Or:     "||",
	Null:   "null",
	cond:   nativeCond,
	assign: nativeAssign,
}

func nativeCond(d *Dialect, r expr.Rule) (string, []expr.Warning) {
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
	case "contains", "not_contains", "starts_with", "ends_with":
		return placeholder(d, r.Operator, ref)
	case "before":
		return fmt.Sprintf("%s < %s", ref, lit), nil
	case "after":
		return fmt.Sprintf("%s > %s", ref, lit), nil
	default:
		return genericCond(d, r, ref, lit)
	}
}

func nativeAssign(d *Dialect, a expr.Assignment, value string) (string, []expr.Warning) {
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
		// No null-guard idiom in the runtime's statement syntax.
		text := fmt.Sprintf("%s = %s", ref, value)
		return text, []expr.Warning{unsupportedWarning(d, a.Operator, ref)}
	default:
		return genericAssign(d, a, ref, value)
	}
}
