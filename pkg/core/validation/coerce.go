// Package validation turns a loosely-typed field map (typically LLM output)
// into a validated FinancialStatement or a rejection carrying every violation
// found. Coercion never fails on a single bad field, validation never
// short-circuits, and nothing here touches the clock or any shared state:
// the reference year and tolerances arrive through Config.
package validation

import (
	"regexp"
	"strconv"
	"strings"
)

// Monetary fields subject to string-to-number coercion. Everything else
// string-typed is merely trimmed.
var monetaryFields = map[string]bool{
	"revenue":            true,
	"cogs":               true,
	"gross_profit":       true,
	"operating_expenses": true,
	"operating_income":   true,
	"net_income":         true,
	"total_assets":       true,
	"total_liabilities":  true,
	"equity":             true,
}

var moneyJunkRE = regexp.MustCompile(`[\$,\(\)]`)

// Coerce normalizes a raw field map before validation. For monetary fields
// holding strings it strips "$", ",", "(" and ")", negates when the original
// carried accounting parentheses, parses as float and truncates to integer.
// Null, "null" and "" all normalize to absent. A value that still fails to
// parse is dropped to absent rather than failing the map: bad economic data
// must not masquerade as a type error.
func Coerce(raw map[string]interface{}) map[string]interface{} {
	cleaned := make(map[string]interface{}, len(raw))

	for key, value := range raw {
		if value == nil || value == "null" || value == "" {
			cleaned[key] = nil
			continue
		}

		s, isString := value.(string)
		if !isString {
			cleaned[key] = value
			continue
		}

		if !monetaryFields[key] {
			cleaned[key] = strings.TrimSpace(s)
			continue
		}

		stripped := moneyJunkRE.ReplaceAllString(s, "")
		f, err := strconv.ParseFloat(strings.TrimSpace(stripped), 64)
		if err != nil {
			cleaned[key] = nil
			continue
		}
		n := int64(f)
		if strings.Contains(s, "(") && strings.Contains(s, ")") {
			n = -n
		}
		cleaned[key] = n
	}

	return cleaned
}

// intField reads an optional integer field from a coerced map. JSON numbers
// arrive as float64, coerced strings as int64; anything else counts as a
// coercion drop and reads as absent.
func intField(m map[string]interface{}, key string) *int64 {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	switch n := v.(type) {
	case int64:
		return &n
	case int:
		i := int64(n)
		return &i
	case float64:
		i := int64(n)
		return &i
	default:
		return nil
	}
}

// floatField reads an optional float field from a coerced map.
func floatField(m map[string]interface{}, key string) *float64 {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	switch n := v.(type) {
	case float64:
		return &n
	case int64:
		f := float64(n)
		return &f
	case int:
		f := float64(n)
		return &f
	default:
		return nil
	}
}

// stringField reads an optional string field from a coerced map.
func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
