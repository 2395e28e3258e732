// Package transpile turns engine-agnostic conditions and instruction lists
// into exact source text for one of the seven target engines.
//
// The compiler is a single generic tree walk parameterized by a
// dialect.Dialect: rules compile through the dialect's condition emitter,
// nested blocks recurse, surviving fragments join on the node's logic
// keyword. A group with two or more surviving children is wrapped in
// parentheses before being handed to its parent; the root's own result is
// never wrapped. One dialect-level override exists: when the dialect asks,
// every OR operand is parenthesized individually.
//
// Everything here is synchronous, stateless, and pure: repeated calls with
// the same input yield byte-identical output, and calls are independently
// parallelizable by the exporter without synchronization.
package transpile
