// Package expr provides the engine-agnostic representation of authored
// branching logic and variable assignments.
//
// This package contains type definitions plus the two normalization steps
// that every compilation starts with: decoding raw editor input (nil, a map,
// or a JSON string) into a condition map, and extracting that map into a
// Node tree. All other internal packages import expr; expr imports nothing
// internal. This keeps it the foundational layer with no circular
// dependencies.
//
// Key design constraints:
//   - Every value is transient: built from JSON at call time, consumed once,
//     discarded. No identity beyond the call.
//   - Malformed rules, blocks, and assignments are dropped silently, never
//     surfaced as errors. Partial authoring states must still compile.
//   - Only two inputs are fatal: an unrecognized engine name (reported by the
//     dialect package) and a legacy plain-text condition that predates the
//     structured schema (LegacyConditionError).
package expr
