package textnorm

import (
	"regexp"
	"strings"

	"findoc_processor/pkg/models"
)

// CompanyInfo holds heuristic company identification hints. Empty strings
// mean the corresponding pattern list found nothing. These are best-effort
// guesses: callers use them only to back-fill fields the primary extraction
// path left empty.
type CompanyInfo struct {
	CompanyName string            `json:"company_name"`
	Year        string            `json:"year"`
	ReportType  models.ReportType `json:"report_type"`
}

// Ordered pattern lists. The FIRST pattern that matches anywhere in the text
// wins, first match only; later patterns are never consulted once an earlier
// one hits. Callers depend on this tie-break.
var companyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)([A-Z][a-zA-Z\s&,\.]+(?:Inc|Corp|LLC|Ltd|Company|Corporation))`),
	regexp.MustCompile(`(?i)COMPANY:\s*([A-Z][a-zA-Z\s&,\.]+)`),
	regexp.MustCompile(`(?i)([A-Z][A-Z\s&]+)(?:\s+FINANCIAL|\s+ANNUAL|\s+INCOME)`),
}

var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:FOR THE YEAR ENDED|YEAR ENDED|DECEMBER 31,?\s+)(\d{4})`),
	regexp.MustCompile(`(?i)ANNUAL REPORT\s+(\d{4})`),
	regexp.MustCompile(`(?i)(\d{4})\s+ANNUAL REPORT`),
	regexp.MustCompile(`(?i)FISCAL YEAR\s+(\d{4})`),
}

var reportTypePatterns = []struct {
	re   *regexp.Regexp
	kind models.ReportType
}{
	{regexp.MustCompile(`(?i)(INCOME STATEMENT|PROFIT\s+AND\s+LOSS|P&L)`), models.ReportIncomeStatement},
	{regexp.MustCompile(`(?i)(BALANCE SHEET|STATEMENT OF FINANCIAL POSITION)`), models.ReportBalanceSheet},
	{regexp.MustCompile(`(?i)(CASH FLOW STATEMENT|STATEMENT OF CASH FLOWS)`), models.ReportCashFlow},
	{regexp.MustCompile(`(?i)(ANNUAL REPORT|QUARTERLY REPORT|10-K|10-Q)`), models.ReportAnnualReport},
}

// ExtractCompanyInfo derives candidate company name, reporting year and
// report type from cleaned text. The three extractions are independent.
func ExtractCompanyInfo(text string) CompanyInfo {
	info := CompanyInfo{ReportType: models.ReportUnknown}

	for _, p := range companyPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			info.CompanyName = strings.TrimSpace(m[1])
			break
		}
	}

	for _, p := range yearPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			info.Year = m[1]
			break
		}
	}

	for _, rp := range reportTypePatterns {
		if rp.re.MatchString(text) {
			info.ReportType = rp.kind
			break
		}
	}

	return info
}
