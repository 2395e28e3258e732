package harness

import "github.com/talefold/talefold/internal/expr"

// Export is the compiled output for one engine.
type Export struct {
	Engine      string         `json:"engine"`
	Condition   string         `json:"condition"`
	Instruction string         `json:"instruction"`
	Warnings    []expr.Warning `json:"warnings,omitempty"`
}

// Result is the outcome of running one scenario.
type Result struct {
	// Pass is true when every expectation matched.
	Pass bool `json:"pass"`

	// Exports holds one entry per engine, in the scenario's engine order.
	Exports []Export `json:"exports"`

	// Errors lists expectation mismatches. Empty when Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a passing result to accumulate into.
func NewResult() *Result {
	return &Result{Pass: true}
}

// AddError records an expectation mismatch and fails the result.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}

// ExportFor returns the export for an engine, or nil if the scenario did not
// target it.
func (r *Result) ExportFor(engine string) *Export {
	for i := range r.Exports {
		if r.Exports[i].Engine == engine {
			return &r.Exports[i]
		}
	}
	return nil
}
