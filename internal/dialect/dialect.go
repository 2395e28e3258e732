package dialect

import (
	"fmt"

	"github.com/talefold/talefold/internal/expr"
)

// Engine names one of the supported export targets.
type Engine string

const (
	// EngineNative is the tool's own JSON-adjacent runtime syntax.
	EngineNative Engine = "native"
	// EngineInk targets inkle's Ink.
	EngineInk Engine = "ink"
	// EngineYarn targets Yarn Spinner.
	EngineYarn Engine = "yarn"
	// EngineUnity targets the Lua dialect used by Unity dialogue databases.
	EngineUnity Engine = "unity"
	// EngineGodot targets GDScript.
	EngineGodot Engine = "godot"
	// EngineUnreal targets Unreal expression text.
	EngineUnreal Engine = "unreal"
	// EngineArticy targets articy:draft expresso.
	EngineArticy Engine = "articy"
)

// UnknownEngineError reports an engine name outside the closed set.
// This is the only fatal dialect-level error.
type UnknownEngineError struct {
	Engine string
}

// Error implements the error interface.
func (e *UnknownEngineError) Error() string {
	return fmt.Sprintf("unknown engine: %q", e.Engine)
}

// RefStyle selects how an (owner, name) pair renders as a variable token.
type RefStyle int

const (
	// RefUnderscore flattens dots and hyphens to underscores (Ink, Godot).
	RefUnderscore RefStyle = iota
	// RefDollarUnderscore is the underscore form with a $ prefix (Yarn).
	RefDollarUnderscore
	// RefLuaDict renders Variable["owner.name"] with dots intact (Unity).
	RefLuaDict
	// RefDot keeps the dotted path verbatim (native, Unreal, articy).
	RefDot
)

// String names the style for diagnostics and the engines listing.
func (s RefStyle) String() string {
	switch s {
	case RefUnderscore:
		return "underscore"
	case RefDollarUnderscore:
		return "dollar_underscore"
	case RefLuaDict:
		return "lua_dict"
	case RefDot:
		return "dot"
	}
	return "unknown"
}

// CondFunc emits one rule as a condition fragment in the target syntax.
type CondFunc func(d *Dialect, r expr.Rule) (string, []expr.Warning)

// AssignFunc emits one assignment as a statement in the target syntax.
// value is already resolved: either a formatted literal or a formatted
// variable reference.
type AssignFunc func(d *Dialect, a expr.Assignment, value string) (string, []expr.Warning)

// Dialect is the immutable configuration for one target syntax.
type Dialect struct {
	Engine Engine
	Ref    RefStyle

	// And and Or are the logic join keywords.
	And string
	Or  string

	// WrapOrOperands individually parenthesizes every operand of an OR join,
	// not just multi-child groups. Needed where bare `a or b` is precedence-
	// hazardous in the target runtime (the Lua-based Unity dialect).
	WrapOrOperands bool

	// Null is the engine's null literal keyword.
	Null string

	cond   CondFunc
	assign AssignFunc
}

// engines holds the closed set in declaration order.
var engines = []*Dialect{Native, Ink, Yarn, Unity, Godot, Unreal, Articy}

// Parse resolves an engine name to its Dialect. The engine set is closed;
// anything unrecognized is UnknownEngineError.
func Parse(name string) (*Dialect, error) {
	for _, d := range engines {
		if string(d.Engine) == name {
			return d, nil
		}
	}
	return nil, &UnknownEngineError{Engine: name}
}

// Engines returns the supported engine names in stable order.
func Engines() []Engine {
	names := make([]Engine, len(engines))
	for i, d := range engines {
		names[i] = d.Engine
	}
	return names
}

// Dialects returns the supported dialects in stable order. The returned
// slice is a copy; the dialects themselves are shared and immutable.
func Dialects() []*Dialect {
	out := make([]*Dialect, len(engines))
	copy(out, engines)
	return out
}

// Joiner returns the join keyword for a logic value.
func (d *Dialect) Joiner(logic expr.Logic) string {
	if logic == expr.LogicAny {
		return d.Or
	}
	return d.And
}

// CompileRule emits one rule as a condition fragment. Invalid rules compile
// to the empty string with no warnings; the joiner drops them.
func (d *Dialect) CompileRule(r expr.Rule) (string, []expr.Warning) {
	if !r.Valid() {
		return "", nil
	}
	return d.cond(d, r)
}

// CompileAssignment emits one assignment as a statement. Invalid assignments
// compile to the empty string. The assigned value resolves to a variable
// reference when the editor stored one, otherwise to a literal.
func (d *Dialect) CompileAssignment(a expr.Assignment) (string, []expr.Warning) {
	if !a.Valid() {
		return "", nil
	}

	var value string
	if a.ValueType == expr.ValueVariableRef && a.ValueSheet != "" {
		value = FormatRef(a.ValueSheet, stringify(a.Value), d.Ref)
	} else {
		value = FormatLiteral(a.Value, d.Null)
	}
	return d.assign(d, a, value)
}

// FormatRef renders an (owner, name) pair in this dialect's style.
func (d *Dialect) FormatRef(owner, name string) string {
	return FormatRef(owner, name, d.Ref)
}

// FormatLiteral renders a value with this dialect's null keyword.
func (d *Dialect) FormatLiteral(v any) string {
	return FormatLiteral(v, d.Null)
}

// ref is the formatted reference for a rule's target variable.
func (d *Dialect) ref(r expr.Rule) string {
	return FormatRef(r.Sheet, r.Variable, d.Ref)
}

// stringify renders a variable_ref value (the referenced variable name).
func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
