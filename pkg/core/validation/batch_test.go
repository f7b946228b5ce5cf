package validation

import (
	"testing"

	"findoc_processor/pkg/models"
)

func rec(name, year string) *models.FinancialStatement {
	return &models.FinancialStatement{CompanyName: name, Year: year}
}

func TestValidateBatch_DuplicateCaseInsensitive(t *testing.T) {
	violations := ValidateBatch([]*models.FinancialStatement{
		rec("ACME Corp", "2023"),
		rec("acme corp", "2023"),
	})
	if len(violations) != 1 {
		t.Fatalf("got %d violations, want 1: %+v", len(violations), violations)
	}
}

func TestValidateBatch_DistinctYearsAllowed(t *testing.T) {
	violations := ValidateBatch([]*models.FinancialStatement{
		rec("ACME Corp", "2022"),
		rec("ACME Corp", "2023"),
		rec("Globex Inc", "2023"),
	})
	if len(violations) != 0 {
		t.Errorf("unexpected violations: %+v", violations)
	}
}

func TestNewBatch(t *testing.T) {
	b := NewBatch([]*models.FinancialStatement{rec("ACME Corp", "2023")})
	if b.BatchID == "" {
		t.Error("expected generated batch id")
	}
	if b.ProcessedAt.IsZero() {
		t.Error("expected processed_at timestamp")
	}
}
