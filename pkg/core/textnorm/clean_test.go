package textnorm

import "testing"

func TestClean_Normalization(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "collapses whitespace runs",
			input:    "Revenue   grew\t\tstrongly\n\nthis  year",
			expected: "Revenue grew strongly this year",
		},
		{
			name:     "strips page markers",
			input:    "intro --- Page 1 --- Revenue 100 --- Page 2 --- Costs 50",
			expected: "intro Revenue 100 Costs 50",
		},
		{
			name:     "replaces table markers",
			input:    "before --- Table 1 (Page 2) --- Revenue\t100",
			expected: "before TABLE: Revenue 100",
		},
		{
			name:     "closes currency gap",
			input:    "Revenue $ 500",
			expected: "Revenue $500",
		},
		{
			name:     "removes digit group commas",
			input:    "Revenue $1,000,000 and costs $600,000",
			expected: "Revenue $1000000 and costs $600000",
		},
		{
			name:     "mid-sentence commas survive",
			input:    "Revenue, costs, and profit",
			expected: "Revenue, costs, and profit",
		},
		{
			name:     "trims leading and trailing whitespace",
			input:    "  ACME Corp  ",
			expected: "ACME Corp",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Clean(tc.input)
			if got != tc.expected {
				t.Errorf("Clean(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"Revenue   $ 1,000,000\n\n\n\nNet income $200,000",
		"intro --- Page 1 --- body --- Table 1 (Page 1) --- Revenue\t100",
		"ACME Corporation\nAnnual Report 2023\nRevenue                 $1,000,000",
		"",
		"plain sentence, with commas, and no numbers",
	}

	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q:\n first: %q\nsecond: %q", in, once, twice)
		}
	}
}
