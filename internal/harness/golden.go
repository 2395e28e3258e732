package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden runs a scenario and compares the full export set against
// testdata/golden/{scenario.Name}.golden. Inline expectation mismatches are
// reported as test errors before the snapshot comparison.
//
// The snapshot is plain text rather than JSON: compiled output contains
// `<<set>>` and `&&`, which Go's JSON encoder escapes into unreadable
// golden files.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	for _, msg := range result.Errors {
		t.Errorf("scenario %s: %s", scenario.Name, msg)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, Snapshot(scenario.Name, result.Exports))
	return nil
}

// Snapshot renders an export set as a deterministic plain-text snapshot.
// One block per engine, separated by "---"; instruction lines and warnings
// are indexed so line-level diffs stay readable.
func Snapshot(name string, exports []Export) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario: %s\n", name)

	for _, e := range exports {
		b.WriteString("---\n")
		fmt.Fprintf(&b, "engine: %s\n", e.Engine)
		if e.Condition != "" {
			fmt.Fprintf(&b, "condition: %s\n", e.Condition)
		}
		if e.Instruction != "" {
			for i, line := range strings.Split(e.Instruction, "\n") {
				fmt.Fprintf(&b, "instruction[%d]: %s\n", i, line)
			}
		}
		for i, w := range e.Warnings {
			fmt.Fprintf(&b, "warning[%d]: %s\n", i, w.Message)
		}
	}
	return []byte(b.String())
}
