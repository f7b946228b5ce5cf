package validation

import "findoc_processor/pkg/models"

// Margins holds derived margin percentages. A nil entry means its numerator
// was absent or revenue was missing or non-positive.
type Margins struct {
	GrossMargin     *float64 `json:"gross_margin"`
	OperatingMargin *float64 `json:"operating_margin"`
	NetMargin       *float64 `json:"net_margin"`
}

// ComputeMargins derives gross, operating and net margins as percentages of
// revenue. Defined only when revenue is present and strictly positive.
func ComputeMargins(rec *models.FinancialStatement) Margins {
	var m Margins
	if rec.Revenue == nil || *rec.Revenue <= 0 {
		return m
	}
	revenue := float64(*rec.Revenue)

	if rec.GrossProfit != nil {
		m.GrossMargin = models.Float64(float64(*rec.GrossProfit) / revenue * 100)
	}
	if rec.OperatingIncome != nil {
		m.OperatingMargin = models.Float64(float64(*rec.OperatingIncome) / revenue * 100)
	}
	if rec.NetIncome != nil {
		m.NetMargin = models.Float64(float64(*rec.NetIncome) / revenue * 100)
	}
	return m
}

// ApplyMargins computes the margins and writes them onto the record.
func ApplyMargins(rec *models.FinancialStatement) {
	m := ComputeMargins(rec)
	rec.GrossMargin = m.GrossMargin
	rec.OperatingMargin = m.OperatingMargin
	rec.NetMargin = m.NetMargin
}

// Summary reports data completeness and quality for a validated record.
type Summary struct {
	CompletenessScore  float64 `json:"completeness_score"`
	CompletedFields    int     `json:"completed_fields"`
	TotalFields        int     `json:"total_fields"`
	HasIncomeStatement bool    `json:"has_income_statement"`
	HasBalanceSheet    bool    `json:"has_balance_sheet"`
	Margins            Margins `json:"margins"`
}

// Summarize scores completeness over the nine core monetary fields and flags
// whether the record carries a usable income statement and balance sheet.
func Summarize(rec *models.FinancialStatement) Summary {
	core := rec.CoreFields()
	completed := 0
	for _, f := range core {
		if f != nil {
			completed++
		}
	}

	return Summary{
		CompletenessScore:  float64(completed) / float64(len(core)),
		CompletedFields:    completed,
		TotalFields:        len(core),
		HasIncomeStatement: rec.Revenue != nil && rec.NetIncome != nil,
		HasBalanceSheet:    rec.TotalAssets != nil && rec.TotalLiabilities != nil && rec.Equity != nil,
		Margins:            ComputeMargins(rec),
	}
}
