package expr

import "fmt"

// LegacyConditionError reports condition input that predates the structured
// schema: a hand-written boolean expression string, or JSON whose shape has
// neither rules nor blocks.
//
// Legacy text is never interpreted or auto-migrated. The original input is
// preserved so callers can show it to the writer verbatim.
type LegacyConditionError struct {
	// Original is the input exactly as received.
	Original any
}

// Error implements the error interface.
func (e *LegacyConditionError) Error() string {
	return fmt.Sprintf("legacy condition cannot be compiled: %v", e.Original)
}
