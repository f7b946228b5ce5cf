// Package textnorm cleans decoder output and derives weak heuristic hints
// (company, year, report type, keyword mentions, table structures) used to
// cross-check or back-fill LLM extraction. Everything here is a pure function
// over in-memory text; hints are advisory and never override model output.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	whitespaceRE  = regexp.MustCompile(`\s+`)
	pageMarkerRE  = regexp.MustCompile(`\s*--- Page \d+ ---`)
	tableMarkerRE = regexp.MustCompile(`\s*--- Table \d+ \(Page \d+\) ---`)
	currencyGapRE = regexp.MustCompile(`\$\s*`)
	digitCommaRE  = regexp.MustCompile(`(\d),(\d)`)
	blankRunRE    = regexp.MustCompile(`\n\s*\n\s*\n+`)
)

// Clean normalizes raw decoded document text for LLM consumption.
//
// The transformation order matters: whitespace collapse runs first so the
// marker patterns see predictable spacing, then marker substitution, then
// currency and digit-group normalization, then blank-line collapse. The
// digit-comma rule is intentionally narrow (digit-comma-digit, repeated to a
// fixpoint) so mid-sentence commas survive. Clean is idempotent.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	s := whitespaceRE.ReplaceAllString(text, " ")

	s = pageMarkerRE.ReplaceAllString(s, "")
	s = tableMarkerRE.ReplaceAllString(s, " TABLE:")

	// "$ 1,000" -> "$1000"
	s = currencyGapRE.ReplaceAllString(s, "$$")
	for digitCommaRE.MatchString(s) {
		s = digitCommaRE.ReplaceAllString(s, "$1$2")
	}

	s = blankRunRE.ReplaceAllString(s, "\n\n")

	return strings.TrimSpace(s)
}
