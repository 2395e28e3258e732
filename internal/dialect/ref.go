package dialect

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// FormatRef renders an (owner, name) pair as a variable token in the given
// style. Both segments are sanitized first; a single-segment identifier
// (empty name, or empty owner) renders without a separator.
func FormatRef(owner, name string, style RefStyle) string {
	owner = sanitizeIdent(owner)
	name = sanitizeIdent(name)

	path := owner
	switch {
	case path == "":
		path = name
	case name != "":
		path = owner + "." + name
	}

	switch style {
	case RefUnderscore:
		return flatten(path)
	case RefDollarUnderscore:
		return "$" + flatten(path)
	case RefLuaDict:
		return `Variable["` + path + `"]`
	default:
		return path
	}
}

var flattener = strings.NewReplacer(".", "_", "-", "_")

// flatten rewrites dots and hyphens to underscores for engines whose
// identifiers cannot carry them.
func flatten(path string) string {
	return flattener.Replace(path)
}

// sanitizeIdent strips any character outside [A-Za-z0-9._-].
//
// Identifiers are NFC-normalized first: authoring UIs on different platforms
// produce composed and decomposed Unicode for the same visible text, and both
// must sanitize to the same token.
func sanitizeIdent(s string) string {
	s = norm.NFC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}
