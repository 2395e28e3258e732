package expr

// WarningType categorizes compile warnings.
type WarningType string

const (
	// WarningUnsupportedOperator indicates an operator with no faithful
	// translation in the target engine. The output contains a best-effort
	// approximation or a commented placeholder.
	WarningUnsupportedOperator WarningType = "unsupported_operator"
)

// Warning is a non-fatal diagnostic produced during compilation.
// Warnings never suppress output: the exporter surfaces them to the writer
// but still emits the best-effort text.
type Warning struct {
	Type    WarningType    `json:"type"`
	Message string         `json:"message"`
	Details WarningDetails `json:"details"`
}

// WarningDetails carries the context the editor needs to point the writer at
// the offending rule.
type WarningDetails struct {
	// Operator is the authored operator key (e.g. "contains").
	Operator string `json:"operator"`
	// Engine is the target engine name (e.g. "ink").
	Engine string `json:"engine"`
	// Variable is the formatted variable reference the rule targets.
	Variable string `json:"variable"`
}
