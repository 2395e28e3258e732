// Package harness provides the conformance test harness for export
// scenarios.
//
// A scenario is a YAML file describing one authored condition and/or
// instruction together with the engines it should be exported to. The
// harness compiles every engine's output, checks any inline expectations,
// and can snapshot the full export set against a golden file.
//
// Scenarios live in testdata/scenarios/ and golden snapshots in
// testdata/golden/. Regenerate goldens with:
//
//	go test ./internal/harness -update
package harness
