package validation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"findoc_processor/pkg/models"
)

// Violation severities. Warnings flag unusual-but-possible relationships;
// they still block a Valid outcome.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Violation describes one failed check, with actual and expected values
// spelled out in the message for diagnosability.
type Violation struct {
	Field    string `json:"field"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Outcome is the all-or-nothing result of validating one field map. Either
// Record is set and Violations is empty, or Record is nil and Violations
// lists every problem found: checks never short-circuit, so a caller sees
// all of them at once.
type Outcome struct {
	Valid      bool                        `json:"valid"`
	Record     *models.FinancialStatement `json:"record,omitempty"`
	Violations []Violation                 `json:"violations,omitempty"`
}

// Config carries the tunable constants so the engine stays stateless and
// testable. ReferenceYear replaces wall-clock reads for the year bound check.
type Config struct {
	ReferenceYear    int     // upper year bound is ReferenceYear+1
	ToleranceFloor   float64 // minimum absolute tolerance on identity checks
	TolerancePct     float64 // relative tolerance on identity checks
	ARRTolerancePct  float64 // relative tolerance on the SaaS ARR rule
	PlausibleNetWarn float64 // net income may not exceed this multiple of operating income
}

// DefaultConfig returns the engine constants with the given reference year.
func DefaultConfig(referenceYear int) Config {
	return Config{
		ReferenceYear:    referenceYear,
		ToleranceFloor:   1000,
		TolerancePct:     0.01,
		ARRTolerancePct:  0.05,
		PlausibleNetWarn: 1.5,
	}
}

// tolerance is the acceptable absolute deviation from an expected value:
// the greater of the fixed floor and a percentage of the expected value.
func (c Config) tolerance(expected float64) float64 {
	return math.Max(c.ToleranceFloor, math.Abs(expected)*c.TolerancePct)
}

var yearRE = regexp.MustCompile(`^\d{4}$`)
var innerSpaceRE = regexp.MustCompile(`\s+`)

// Validate runs every check on an already-coerced field map and returns
// either the validated record or the full violation list. The industry tag
// selects the schema variant; SaaS adds the ARR≈MRR×12 rule, retail adds
// descriptive fields only.
func Validate(fields map[string]interface{}, industry models.Industry, cfg Config) Outcome {
	var violations []Violation
	addf := func(field, severity, format string, args ...interface{}) {
		violations = append(violations, Violation{
			Field:    field,
			Severity: severity,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	rec := buildRecord(fields, industry)

	// Required fields.
	rec.CompanyName = innerSpaceRE.ReplaceAllString(strings.TrimSpace(rec.CompanyName), " ")
	if rec.CompanyName == "" {
		addf("company_name", SeverityError, "company name cannot be empty")
	}
	if !yearRE.MatchString(rec.Year) {
		addf("year", SeverityError, "year %q is not in YYYY format", rec.Year)
	} else {
		y, _ := strconv.Atoi(rec.Year)
		if y < 1900 || y > cfg.ReferenceYear+1 {
			addf("year", SeverityError, "year must be between 1900 and %d, got %d", cfg.ReferenceYear+1, y)
		}
	}

	// Non-negativity.
	for _, nn := range []struct {
		name  string
		value *int64
	}{
		{"revenue", rec.Revenue},
		{"cogs", rec.COGS},
		{"operating_expenses", rec.OperatingExpenses},
		{"total_assets", rec.TotalAssets},
		{"total_liabilities", rec.TotalLiabilities},
	} {
		if nn.value != nil && *nn.value < 0 {
			addf(nn.name, SeverityError, "%s cannot be negative, got %d", nn.name, *nn.value)
		}
	}

	// Accounting identities, checked only when all operands are present.
	if rec.Revenue != nil && rec.COGS != nil && rec.GrossProfit != nil {
		expected := *rec.Revenue - *rec.COGS
		if math.Abs(float64(*rec.GrossProfit-expected)) > cfg.tolerance(float64(expected)) {
			addf("gross_profit", SeverityError,
				"gross profit (%d) doesn't match revenue - cogs (%d - %d = %d)",
				*rec.GrossProfit, *rec.Revenue, *rec.COGS, expected)
		}
	}
	if rec.GrossProfit != nil && rec.OperatingExpenses != nil && rec.OperatingIncome != nil {
		expected := *rec.GrossProfit - *rec.OperatingExpenses
		if math.Abs(float64(*rec.OperatingIncome-expected)) > cfg.tolerance(float64(expected)) {
			addf("operating_income", SeverityError,
				"operating income (%d) doesn't match gross profit - operating expenses (%d - %d = %d)",
				*rec.OperatingIncome, *rec.GrossProfit, *rec.OperatingExpenses, expected)
		}
	}
	if rec.TotalAssets != nil && rec.TotalLiabilities != nil && rec.Equity != nil {
		expected := *rec.TotalAssets - *rec.TotalLiabilities
		if math.Abs(float64(*rec.Equity-expected)) > cfg.tolerance(float64(expected)) {
			addf("equity", SeverityError,
				"equity (%d) doesn't match assets - liabilities (%d - %d = %d)",
				*rec.Equity, *rec.TotalAssets, *rec.TotalLiabilities, expected)
		}
	}

	// Ordering rules.
	if rec.Revenue != nil && rec.GrossProfit != nil && *rec.GrossProfit > *rec.Revenue {
		addf("gross_profit", SeverityError,
			"gross profit (%d) cannot exceed revenue (%d)", *rec.GrossProfit, *rec.Revenue)
	}
	if rec.GrossProfit != nil && rec.OperatingIncome != nil && *rec.OperatingIncome > *rec.GrossProfit {
		addf("operating_income", SeverityError,
			"operating income (%d) cannot exceed gross profit (%d)", *rec.OperatingIncome, *rec.GrossProfit)
	}

	// Plausibility. Not a hard contradiction, but it still blocks Valid.
	if rec.OperatingIncome != nil && rec.NetIncome != nil && *rec.OperatingIncome > 0 {
		if float64(*rec.NetIncome) > float64(*rec.OperatingIncome)*cfg.PlausibleNetWarn {
			addf("net_income", SeverityWarning,
				"net income (%d) is unusually high compared to operating income (%d); verify non-operating income",
				*rec.NetIncome, *rec.OperatingIncome)
		}
	}

	// Variant-specific rule. Retail adds none; new variants slot in here
	// without touching the base checks above.
	if industry == models.IndustrySaaS && rec.SaaS != nil {
		arr, mrr := rec.SaaS.AnnualRecurringRevenue, rec.SaaS.MonthlyRecurringRevenue
		if arr != nil && mrr != nil {
			expected := *mrr * 12
			tol := math.Max(cfg.ToleranceFloor, float64(expected)*cfg.ARRTolerancePct)
			if math.Abs(float64(*arr-expected)) > tol {
				addf("annual_recurring_revenue", SeverityError,
					"ARR (%d) doesn't match MRR * 12 (%d * 12 = %d)", *arr, *mrr, expected)
			}
		}
	}

	if len(violations) > 0 {
		return Outcome{Valid: false, Violations: violations}
	}
	return Outcome{Valid: true, Record: rec}
}

// buildRecord lifts a coerced field map into the typed record for the
// selected variant. Unreadable optional fields read as absent.
func buildRecord(m map[string]interface{}, industry models.Industry) *models.FinancialStatement {
	rec := &models.FinancialStatement{
		CompanyName:       stringField(m, "company_name"),
		Year:              stringField(m, "year"),
		Revenue:           intField(m, "revenue"),
		COGS:              intField(m, "cogs"),
		GrossProfit:       intField(m, "gross_profit"),
		OperatingExpenses: intField(m, "operating_expenses"),
		OperatingIncome:   intField(m, "operating_income"),
		NetIncome:         intField(m, "net_income"),
		TotalAssets:       intField(m, "total_assets"),
		TotalLiabilities:  intField(m, "total_liabilities"),
		Equity:            intField(m, "equity"),
		Industry:          industry,
	}

	switch industry {
	case models.IndustrySaaS:
		rec.SaaS = &models.SaaSMetrics{
			RecurringRevenue:        intField(m, "recurring_revenue"),
			AnnualRecurringRevenue:  intField(m, "annual_recurring_revenue"),
			MonthlyRecurringRevenue: intField(m, "monthly_recurring_revenue"),
			CustomerAcquisitionCost: intField(m, "customer_acquisition_cost"),
			CustomerLifetimeValue:   intField(m, "customer_lifetime_value"),
			ChurnRate:               floatField(m, "churn_rate"),
		}
	case models.IndustryRetail:
		rec.Retail = &models.RetailMetrics{
			SameStoreSales:       intField(m, "same_store_sales"),
			ComparableStoreSales: intField(m, "comparable_store_sales"),
			Inventory:            intField(m, "inventory"),
			StoreCount:           intField(m, "store_count"),
			SalesPerSquareFoot:   floatField(m, "sales_per_square_foot"),
			InventoryTurnover:    floatField(m, "inventory_turnover"),
		}
	}

	return rec
}
