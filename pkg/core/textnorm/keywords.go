package textnorm

import "regexp"

// Keyword categories reported by ExtractKeywords.
const (
	CategoryRevenue      = "revenue_terms"
	CategoryExpense      = "expense_terms"
	CategoryProfit       = "profit_terms"
	CategoryBalanceSheet = "balance_sheet_terms"
	CategoryNumbers      = "numbers"
)

var revenuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(total\s+)?revenue\s*[:=]?\s*\$?[\d,]+`),
	regexp.MustCompile(`(?i)(net\s+)?sales\s*[:=]?\s*\$?[\d,]+`),
	regexp.MustCompile(`(?i)income\s+from\s+operations\s*[:=]?\s*\$?[\d,]+`),
	regexp.MustCompile(`(?i)gross\s+revenue\s*[:=]?\s*\$?[\d,]+`),
}

var expensePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)cost\s+of\s+(goods\s+sold|sales)\s*[:=]?\s*\$?[\d,]+`),
	regexp.MustCompile(`(?i)operating\s+expenses?\s*[:=]?\s*\$?[\d,]+`),
	regexp.MustCompile(`(?i)total\s+expenses?\s*[:=]?\s*\$?[\d,]+`),
}

var profitPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(net\s+)?income\s*[:=]?\s*\$?[\d,]+`),
	regexp.MustCompile(`(?i)gross\s+profit\s*[:=]?\s*\$?[\d,]+`),
	regexp.MustCompile(`(?i)operating\s+income\s*[:=]?\s*\$?[\d,]+`),
	regexp.MustCompile(`(?i)profit\s*[:=]?\s*\$?[\d,]+`),
}

var balanceSheetPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)total\s+assets\s*[:=]?\s*\$?[\d,]+`),
	regexp.MustCompile(`(?i)total\s+liabilities\s*[:=]?\s*\$?[\d,]+`),
	regexp.MustCompile(`(?i)(shareholders?\s+)?equity\s*[:=]?\s*\$?[\d,]+`),
}

// Dollar-prefixed numeric tokens, optionally with two decimal places.
var dollarNumberRE = regexp.MustCompile(`\$[\d,]+(?:\.\d{2})?`)

// ExtractKeywords scans cleaned text for financial keyword mentions by
// category, plus all dollar-prefixed numeric tokens. Matches are collected
// verbatim, not deduplicated and not parsed to numbers; numeric coercion is
// the validation engine's job.
func ExtractKeywords(text string) map[string][]string {
	keywords := map[string][]string{
		CategoryRevenue:      {},
		CategoryExpense:      {},
		CategoryProfit:       {},
		CategoryBalanceSheet: {},
		CategoryNumbers:      {},
	}

	collect := func(category string, patterns []*regexp.Regexp) {
		for _, p := range patterns {
			keywords[category] = append(keywords[category], p.FindAllString(text, -1)...)
		}
	}

	collect(CategoryRevenue, revenuePatterns)
	collect(CategoryExpense, expensePatterns)
	collect(CategoryProfit, profitPatterns)
	collect(CategoryBalanceSheet, balanceSheetPatterns)

	keywords[CategoryNumbers] = append(keywords[CategoryNumbers], dollarNumberRE.FindAllString(text, -1)...)

	return keywords
}
