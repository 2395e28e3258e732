package dialect

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FormatLiteral renders a typed value as literal text for a dialect whose
// null keyword is null ("" defaults to "null").
//
// The editor stores numbers and booleans as strings, so string values that
// read as a number or as true/false are emitted unquoted. Everything else
// string-like is double-quoted with escaping.
func FormatLiteral(v any, null string) string {
	if null == "" {
		null = "null"
	}

	switch val := v.(type) {
	case nil:
		return null
	case bool:
		return strconv.FormatBool(val)
	case string:
		return formatStringLiteral(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case json.Number:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// formatStringLiteral decides between bare and quoted emission for an
// authored string value.
func formatStringLiteral(s string) string {
	if s == "true" || s == "false" {
		return s
	}
	if looksNumeric(s) {
		return s
	}
	return quote(s)
}

// looksNumeric reports whether an authored string should be emitted as a
// bare number. The digit check keeps ParseFloat's "inf"/"nan" spellings out.
func looksNumeric(s string) bool {
	if !strings.ContainsAny(s, "0123456789") {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// escaper handles the characters every target syntax requires escaped inside
// a double-quoted literal. NUL bytes are stripped outright.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\x00", "",
)

func quote(s string) string {
	return `"` + escaper.Replace(s) + `"`
}
