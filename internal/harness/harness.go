package harness

import (
	"fmt"

	"github.com/talefold/talefold/internal/transpile"
)

// Run compiles the scenario for every target engine and checks its inline
// expectations. Compile errors abort the run; expectation mismatches
// accumulate on the result.
func Run(scenario *Scenario) (*Result, error) {
	result := NewResult()

	for _, engine := range scenario.TargetEngines() {
		export := Export{Engine: engine}

		if scenario.Condition != nil {
			text, warnings, err := transpile.Condition(scenario.Condition, engine)
			if err != nil {
				return nil, fmt.Errorf("scenario %q: condition for %s: %w", scenario.Name, engine, err)
			}
			export.Condition = text
			export.Warnings = append(export.Warnings, warnings...)
		}

		if len(scenario.Instruction) > 0 {
			text, warnings, err := transpile.Instruction(scenario.Instruction, engine)
			if err != nil {
				return nil, fmt.Errorf("scenario %q: instruction for %s: %w", scenario.Name, engine, err)
			}
			export.Instruction = text
			export.Warnings = append(export.Warnings, warnings...)
		}

		result.Exports = append(result.Exports, export)
	}

	checkExpectations(scenario, result)
	return result, nil
}

// checkExpectations compares each inline expectation against the compiled
// export for its engine.
func checkExpectations(scenario *Scenario, result *Result) {
	for _, e := range scenario.Expect {
		export := result.ExportFor(e.Engine)
		if export == nil {
			result.AddError(fmt.Sprintf("no export for engine %q", e.Engine))
			continue
		}

		if e.Condition != nil && export.Condition != *e.Condition {
			result.AddError(fmt.Sprintf("%s condition: got %q, want %q", e.Engine, export.Condition, *e.Condition))
		}
		if e.Instruction != nil && export.Instruction != *e.Instruction {
			result.AddError(fmt.Sprintf("%s instruction: got %q, want %q", e.Engine, export.Instruction, *e.Instruction))
		}
		if e.Warnings != nil && len(export.Warnings) != *e.Warnings {
			result.AddError(fmt.Sprintf("%s warnings: got %d, want %d", e.Engine, len(export.Warnings), *e.Warnings))
		}
	}
}
