package expr

import (
	"encoding/json"
	"strings"
)

// DecodeCondition normalizes raw condition input to a condition map.
//
// Accepted inputs:
//   - nil or an empty string: the condition is absent, returns (nil, nil)
//   - a map: passed through unchanged (flat or grouped form)
//   - a JSON string: parsed, then shape-checked
//   - anything else (numbers, booleans, ...): treated as absent, not an
//     error, so forward-compatible call sites never fail here
//
// String input is classified three ways: not JSON, JSON of an unrecognized
// shape (no logic/rules/blocks), or a recognized condition. The first two are
// legacy authoring formats and return LegacyConditionError with the original
// input preserved.
func DecodeCondition(input any) (map[string]any, error) {
	switch v := input.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return v, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, nil
		}
		var parsed any
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			return nil, &LegacyConditionError{Original: input}
		}
		cond, ok := parsed.(map[string]any)
		if !ok || !recognizedShape(cond) {
			return nil, &LegacyConditionError{Original: input}
		}
		return cond, nil
	default:
		return nil, nil
	}
}

// recognizedShape reports whether a parsed JSON object looks like a
// structured condition. Pre-schema exports wrapped plain expression text in
// JSON objects of other shapes; those are legacy, not empty.
func recognizedShape(cond map[string]any) bool {
	for _, key := range []string{"logic", "rules", "blocks"} {
		if _, ok := cond[key]; ok {
			return true
		}
	}
	return false
}

// RuleFromMap decodes one rule entry. Missing or non-string fields decode to
// their zero values; Valid() decides afterwards whether the rule compiles.
func RuleFromMap(m map[string]any) Rule {
	_, hasOp := m["operator"]
	return Rule{
		ID:          stringField(m, "id"),
		Sheet:       stringField(m, "sheet"),
		Variable:    stringField(m, "variable"),
		Operator:    stringField(m, "operator"),
		Value:       m["value"],
		HasOperator: hasOp,
	}
}

// AssignmentFromMap decodes one assignment entry. A missing value key
// defaults to the literal 0: the editor omits the field for operators that
// ignore it, and numeric zero is the safe value for the rest. A missing
// value_type decodes to ValueLiteral, the editor's default.
func AssignmentFromMap(m map[string]any) Assignment {
	a := Assignment{
		ID:         stringField(m, "id"),
		Sheet:      stringField(m, "sheet"),
		Variable:   stringField(m, "variable"),
		Operator:   stringField(m, "operator"),
		ValueType:  stringField(m, "value_type"),
		ValueSheet: stringField(m, "value_sheet"),
	}
	if a.ValueType == "" {
		a.ValueType = ValueLiteral
	}
	if v, ok := m["value"]; ok {
		a.Value = v
	} else {
		a.Value = 0
	}
	return a
}

// stringField reads a string-valued key, returning "" for missing keys and
// non-string values alike.
func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
