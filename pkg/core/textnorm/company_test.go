package textnorm

import (
	"testing"

	"findoc_processor/pkg/models"
)

func TestExtractCompanyInfo(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantCompany string
		wantYear    string
		wantReport  models.ReportType
	}{
		{
			name:        "legal suffix pattern wins",
			text:        "ACME Corp BALANCE SHEET DECEMBER 31, 2023",
			wantCompany: "ACME Corp",
			wantYear:    "2023",
			wantReport:  models.ReportBalanceSheet,
		},
		{
			name:        "company label fallback",
			text:        "COMPANY: Initech Division BALANCE SHEET FISCAL YEAR 2021",
			wantCompany: "Initech Division BALANCE SHEET FISCAL YEAR",
			wantYear:    "2021",
			wantReport:  models.ReportBalanceSheet,
		},
		{
			name:        "annual report year and type",
			text:        "GLOBEX ANNUAL REPORT 2022",
			wantCompany: "GLOBEX",
			wantYear:    "2022",
			wantReport:  models.ReportAnnualReport,
		},
		{
			name:        "first year pattern wins regardless of position",
			text:        "2023 ANNUAL REPORT ... DECEMBER 31, 2022",
			wantCompany: "",
			wantYear:    "2022",
			wantReport:  models.ReportAnnualReport,
		},
		{
			name:       "nothing recognized",
			text:       "lorem ipsum dolor sit amet",
			wantReport: models.ReportUnknown,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info := ExtractCompanyInfo(tc.text)
			if info.CompanyName != tc.wantCompany {
				t.Errorf("company = %q, want %q", info.CompanyName, tc.wantCompany)
			}
			if info.Year != tc.wantYear {
				t.Errorf("year = %q, want %q", info.Year, tc.wantYear)
			}
			if info.ReportType != tc.wantReport {
				t.Errorf("report type = %q, want %q", info.ReportType, tc.wantReport)
			}
		})
	}
}

func TestExtractKeywords(t *testing.T) {
	text := "Total revenue: $1000000. Cost of goods sold: $600000. " +
		"Gross profit: $400000. Total assets: $2000000. Priced at $19.99"

	kw := ExtractKeywords(text)

	if len(kw[CategoryRevenue]) == 0 {
		t.Error("expected a revenue term match")
	}
	if len(kw[CategoryExpense]) == 0 {
		t.Error("expected an expense term match")
	}
	if len(kw[CategoryProfit]) == 0 {
		t.Error("expected a profit term match")
	}
	if len(kw[CategoryBalanceSheet]) == 0 {
		t.Error("expected a balance sheet term match")
	}

	// Every dollar token, collected verbatim.
	wantNumbers := []string{"$1000000", "$600000", "$400000", "$2000000", "$19.99"}
	if len(kw[CategoryNumbers]) != len(wantNumbers) {
		t.Fatalf("numbers = %v, want %v", kw[CategoryNumbers], wantNumbers)
	}
	for i, n := range wantNumbers {
		if kw[CategoryNumbers][i] != n {
			t.Errorf("numbers[%d] = %q, want %q", i, kw[CategoryNumbers][i], n)
		}
	}
}

func TestExtractKeywords_NoMatches(t *testing.T) {
	kw := ExtractKeywords("nothing financial here")
	for _, cat := range []string{CategoryRevenue, CategoryExpense, CategoryProfit, CategoryBalanceSheet, CategoryNumbers} {
		if len(kw[cat]) != 0 {
			t.Errorf("category %s: expected no matches, got %v", cat, kw[cat])
		}
	}
}
