package expr

// Logic selects how the entries of a block or group are joined.
type Logic string

const (
	// LogicAll joins entries with the dialect's AND keyword.
	LogicAll Logic = "all"
	// LogicAny joins entries with the dialect's OR keyword.
	LogicAny Logic = "any"
)

// ParseLogic normalizes a raw logic value. Anything other than "any"
// (including the empty string) is treated as "all", matching how the editor
// defaults new blocks.
func ParseLogic(raw string) Logic {
	if raw == string(LogicAny) {
		return LogicAny
	}
	return LogicAll
}

// Rule is one atomic comparison authored in the visual condition builder:
// sheet.variable OP value.
//
// Sheet and Variable are opaque dotted identifiers owned by the character
// sheet system; the compiler formats them but never resolves them. Value is
// whatever JSON carried (typically a string, because the editor stores
// numbers and booleans as strings).
type Rule struct {
	ID       string
	Sheet    string
	Variable string
	Operator string
	Value    any

	// HasOperator records whether the operator key was present at all.
	// Valueless operators (is_true, is_empty, ...) make the value irrelevant,
	// but a rule without an operator key is malformed.
	HasOperator bool
}

// Valid reports whether the rule carries enough to compile.
// Invalid rules are dropped silently, never errored.
func (r Rule) Valid() bool {
	return r.Sheet != "" && r.Variable != "" && r.HasOperator
}

// ValueType values for Assignment.
const (
	ValueLiteral     = "literal"
	ValueVariableRef = "variable_ref"
)

// Assignment is one statement authored in the instruction builder:
// sheet.variable OP value.
//
// When ValueType is "variable_ref" and ValueSheet is non-empty, Value names a
// variable on ValueSheet instead of a literal.
type Assignment struct {
	ID         string
	Sheet      string
	Variable   string
	Operator   string
	Value      any
	ValueType  string
	ValueSheet string
}

// Valid reports whether the assignment carries enough to compile.
// A missing value key is not an error: it defaults to the literal 0 during
// decoding. Invalid assignments are dropped silently.
func (a Assignment) Valid() bool {
	return a.Sheet != "" && a.Variable != ""
}

// Node is the normalized shape of a condition tree.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern prevents external implementations and enables
// exhaustive type switches in the compiler.
//
// Node types:
//   - RuleSet: a flat AND/OR list of rules (a "block")
//   - Group: an AND/OR list of nested nodes, unbounded depth
type Node interface {
	node() // Marker method - seals interface to this package
}

// RuleSet is a flat list of rules joined by one logic keyword.
type RuleSet struct {
	Logic Logic
	Rules []Rule
}

func (RuleSet) node() {}

// Group is a list of nested nodes joined by one logic keyword.
// Children may be RuleSets or further Groups.
type Group struct {
	Logic    Logic
	Children []Node
}

func (Group) node() {}
