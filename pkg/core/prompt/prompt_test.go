package prompt

import (
	"strings"
	"testing"
)

func TestGetExtractionPrompt_Fallback(t *testing.T) {
	tests := []struct {
		industry string
		wantID   string
	}{
		{"saas", "extraction.saas"},
		{"software", "extraction.saas"},
		{"retail", "extraction.retail"},
		{"ecommerce", "extraction.retail"},
		{"general", "extraction.general"},
		{"unknown-industry", "extraction.general"},
		{"", "extraction.general"},
	}
	for _, tc := range tests {
		p := GetExtractionPrompt(tc.industry)
		if p == nil || p.ID != tc.wantID {
			t.Errorf("GetExtractionPrompt(%q) = %v, want %s", tc.industry, p, tc.wantID)
		}
	}
}

func TestTemplate_Render(t *testing.T) {
	p := GetExtractionPrompt("general")
	out, err := p.Render(map[string]interface{}{
		"CompanyName": "ACME Corp",
		"Year":        "2023",
		"Text":        "Revenue $1000000",
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"ACME Corp", "2023", "Revenue $1000000", `"gross_profit"`} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered prompt missing %q", want)
		}
	}
}
