// Package dialect defines the seven target scripting syntaxes a project can
// be exported to, and the formatting rules for each.
//
// A Dialect is an immutable configuration record: a variable-reference style,
// logic join keywords, a null literal, and two callbacks that emit condition
// and assignment operators. The shared compiler in internal/transpile is
// parameterized by a Dialect value; nothing here dispatches dynamically
// beyond those two callbacks.
//
// The engine set is closed. Unrecognized names are rejected once, at the API
// boundary, with UnknownEngineError; past that point every operator compiles
// to something - operators an engine cannot express degrade to a best-effort
// approximation or a commented placeholder plus a warning, never an error.
package dialect
