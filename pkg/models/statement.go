// Package models defines the validated financial-statement record persisted
// by the store and served by the API. The record is the unit keyed by
// (company_name, year); a caller-side uniqueness check is expected before insert.
package models

import "time"

// Industry selects one of the closed set of schema variants. Variants share
// the base field set and base rule set; each adds its own optional fields and
// at most one extra consistency rule.
type Industry string

const (
	IndustryGeneral Industry = "general"
	IndustrySaaS    Industry = "saas"
	IndustryRetail  Industry = "retail"
)

// IndustryFromTag maps a free-form industry tag onto a variant.
// Unknown or empty tags select the general schema.
func IndustryFromTag(tag string) Industry {
	switch tag {
	case "saas", "software":
		return IndustrySaaS
	case "retail", "ecommerce":
		return IndustryRetail
	default:
		return IndustryGeneral
	}
}

// ReportType is a heuristic classification of the source document.
type ReportType string

const (
	ReportUnknown         ReportType = "unknown"
	ReportIncomeStatement ReportType = "income_statement"
	ReportBalanceSheet    ReportType = "balance_sheet"
	ReportCashFlow        ReportType = "cash_flow"
	ReportAnnualReport    ReportType = "annual_report"
)

// FinancialStatement is a validated financial record. Monetary fields are
// stored in actual currency units (not thousands or millions); nil means the
// field was absent from the source. Once validated the record is not mutated.
type FinancialStatement struct {
	CompanyName string `json:"company_name"`
	Year        string `json:"year"`

	// Income statement
	Revenue           *int64 `json:"revenue"`
	COGS              *int64 `json:"cogs"`
	GrossProfit       *int64 `json:"gross_profit"`
	OperatingExpenses *int64 `json:"operating_expenses"`
	OperatingIncome   *int64 `json:"operating_income"`
	NetIncome         *int64 `json:"net_income"`

	// Balance sheet
	TotalAssets      *int64 `json:"total_assets"`
	TotalLiabilities *int64 `json:"total_liabilities"`
	Equity           *int64 `json:"equity"`

	// Derived margins, percentages
	GrossMargin     *float64 `json:"gross_margin"`
	OperatingMargin *float64 `json:"operating_margin"`
	NetMargin       *float64 `json:"net_margin"`

	Industry Industry       `json:"industry"`
	SaaS     *SaaSMetrics   `json:"saas_metrics,omitempty"`
	Retail   *RetailMetrics `json:"retail_metrics,omitempty"`
}

// SaaSMetrics holds the SaaS variant's extra fields.
type SaaSMetrics struct {
	RecurringRevenue        *int64   `json:"recurring_revenue"`
	AnnualRecurringRevenue  *int64   `json:"annual_recurring_revenue"`
	MonthlyRecurringRevenue *int64   `json:"monthly_recurring_revenue"`
	CustomerAcquisitionCost *int64   `json:"customer_acquisition_cost"`
	CustomerLifetimeValue   *int64   `json:"customer_lifetime_value"`
	ChurnRate               *float64 `json:"churn_rate"`
}

// RetailMetrics holds the retail variant's extra fields. Descriptive only;
// the retail variant adds no extra numeric identity.
type RetailMetrics struct {
	SameStoreSales       *int64   `json:"same_store_sales"`
	ComparableStoreSales *int64   `json:"comparable_store_sales"`
	Inventory            *int64   `json:"inventory"`
	StoreCount           *int64   `json:"store_count"`
	SalesPerSquareFoot   *float64 `json:"sales_per_square_foot"`
	InventoryTurnover    *float64 `json:"inventory_turnover"`
}

// CoreFields returns the nine core monetary fields in a fixed order.
// The completeness score is computed over this set.
func (s *FinancialStatement) CoreFields() []*int64 {
	return []*int64{
		s.Revenue, s.COGS, s.GrossProfit, s.OperatingExpenses,
		s.OperatingIncome, s.NetIncome, s.TotalAssets,
		s.TotalLiabilities, s.Equity,
	}
}

// StoredStatement is a FinancialStatement as read back from the database.
type StoredStatement struct {
	ID         int64 `json:"id"`
	FinancialStatement
	UploadedAt time.Time `json:"uploaded_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	FileName   string    `json:"file_name,omitempty"`
}

// CompanyListing is one row of the stored-company index.
type CompanyListing struct {
	CompanyName string `json:"company_name"`
	YearCount   int    `json:"year_count"`
	FirstYear   string `json:"first_year"`
	LastYear    string `json:"last_year"`
}

// ToMap renders the record as a plain field-name to value mapping with
// explicit nulls for absent optional fields, the shape the persistence
// layer and API responses consume.
func (s *FinancialStatement) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"company_name":       s.CompanyName,
		"year":               s.Year,
		"revenue":            intOrNil(s.Revenue),
		"cogs":               intOrNil(s.COGS),
		"gross_profit":       intOrNil(s.GrossProfit),
		"operating_expenses": intOrNil(s.OperatingExpenses),
		"operating_income":   intOrNil(s.OperatingIncome),
		"net_income":         intOrNil(s.NetIncome),
		"total_assets":       intOrNil(s.TotalAssets),
		"total_liabilities":  intOrNil(s.TotalLiabilities),
		"equity":             intOrNil(s.Equity),
		"gross_margin":       floatOrNil(s.GrossMargin),
		"operating_margin":   floatOrNil(s.OperatingMargin),
		"net_margin":         floatOrNil(s.NetMargin),
		"industry":           string(s.Industry),
	}
	if s.SaaS != nil {
		m["annual_recurring_revenue"] = intOrNil(s.SaaS.AnnualRecurringRevenue)
		m["monthly_recurring_revenue"] = intOrNil(s.SaaS.MonthlyRecurringRevenue)
		m["recurring_revenue"] = intOrNil(s.SaaS.RecurringRevenue)
		m["customer_acquisition_cost"] = intOrNil(s.SaaS.CustomerAcquisitionCost)
		m["customer_lifetime_value"] = intOrNil(s.SaaS.CustomerLifetimeValue)
		m["churn_rate"] = floatOrNil(s.SaaS.ChurnRate)
	}
	if s.Retail != nil {
		m["same_store_sales"] = intOrNil(s.Retail.SameStoreSales)
		m["comparable_store_sales"] = intOrNil(s.Retail.ComparableStoreSales)
		m["inventory"] = intOrNil(s.Retail.Inventory)
		m["store_count"] = intOrNil(s.Retail.StoreCount)
		m["sales_per_square_foot"] = floatOrNil(s.Retail.SalesPerSquareFoot)
		m["inventory_turnover"] = floatOrNil(s.Retail.InventoryTurnover)
	}
	return m
}

func intOrNil(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func floatOrNil(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// Int64 returns a pointer to v. Convenience for building records in tests
// and handlers.
func Int64(v int64) *int64 { return &v }

// Float64 returns a pointer to v.
func Float64(v float64) *float64 { return &v }
