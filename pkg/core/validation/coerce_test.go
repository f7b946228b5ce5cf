package validation

import "testing"

func TestCoerce_MonetaryStrings(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		input    interface{}
		expected interface{} // int64 or nil
	}{
		{"currency and separators", "revenue", "$1,000,000", int64(1000000)},
		{"accounting negative", "net_income", "(500,000)", int64(-500000)},
		{"plain digits", "cogs", "600000", int64(600000)},
		{"decimal truncated", "equity", "1200000.75", int64(1200000)},
		{"garbage drops to absent", "revenue", "abc", nil},
		{"literal null", "revenue", "null", nil},
		{"empty string", "revenue", "", nil},
		{"nil stays absent", "revenue", nil, nil},
		{"numbers pass through", "revenue", float64(1000000), float64(1000000)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cleaned := Coerce(map[string]interface{}{tc.field: tc.input})
			got, ok := cleaned[tc.field]
			if !ok {
				t.Fatalf("field %s missing from coerced map", tc.field)
			}
			if got != tc.expected {
				t.Errorf("Coerce(%v) = %v (%T), want %v", tc.input, got, got, tc.expected)
			}
		})
	}
}

func TestCoerce_NonMonetaryStringsTrimmed(t *testing.T) {
	cleaned := Coerce(map[string]interface{}{"company_name": "  ACME   Corp "})
	if cleaned["company_name"] != "ACME   Corp" {
		t.Errorf("got %q, want outer whitespace trimmed only", cleaned["company_name"])
	}
}

func TestCoerce_BadFieldNeverFailsMap(t *testing.T) {
	cleaned := Coerce(map[string]interface{}{
		"company_name": "ACME Corp",
		"revenue":      "not a number",
		"cogs":         "$600,000",
	})
	if cleaned["revenue"] != nil {
		t.Errorf("bad revenue should coerce to absent, got %v", cleaned["revenue"])
	}
	if cleaned["cogs"] != int64(600000) {
		t.Errorf("cogs = %v, want 600000", cleaned["cogs"])
	}
	if cleaned["company_name"] != "ACME Corp" {
		t.Errorf("company_name = %v", cleaned["company_name"])
	}
}
