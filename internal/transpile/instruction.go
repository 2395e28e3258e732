package transpile

import (
	"strings"

	"github.com/talefold/talefold/internal/dialect"
	"github.com/talefold/talefold/internal/expr"
)

// Instruction compiles an ordered assignment list into statements in the
// target engine's syntax, one per line, preserving input order.
//
// nil or non-list input compiles to the empty string: instruction fields are
// optional on every node. Invalid assignments are dropped silently.
func Instruction(input any, engine string) (string, []expr.Warning, error) {
	d, err := dialect.Parse(engine)
	if err != nil {
		return "", nil, err
	}

	var (
		lines    []string
		warnings []expr.Warning
	)
	for _, entry := range assignmentMaps(input) {
		a := expr.AssignmentFromMap(entry)
		if !a.Valid() {
			continue
		}
		text, w := d.CompileAssignment(a)
		warnings = append(warnings, w...)
		if text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n"), warnings, nil
}

// assignmentMaps normalizes instruction input to a list of entry maps.
// JSON decoding hands us []any; programmatic callers may hold typed slices.
// Anything else is treated as absent.
func assignmentMaps(input any) []map[string]any {
	switch list := input.(type) {
	case []map[string]any:
		return list
	case []any:
		var out []map[string]any
		for _, entry := range list {
			if m, ok := entry.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}
