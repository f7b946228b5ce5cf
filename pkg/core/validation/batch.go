package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"findoc_processor/pkg/models"
)

// Batch groups records validated together in one call.
type Batch struct {
	BatchID     string                        `json:"batch_id"`
	Records     []*models.FinancialStatement `json:"records"`
	ProcessedAt time.Time                     `json:"processed_at"`
}

// NewBatch wraps records with a generated batch ID and timestamp.
func NewBatch(records []*models.FinancialStatement) *Batch {
	return &Batch{
		BatchID:     uuid.NewString(),
		Records:     records,
		ProcessedAt: time.Now().UTC(),
	}
}

// ValidateBatch checks batch-level uniqueness of (company name, year) pairs,
// company names compared case-insensitively. This is advisory and scoped to
// the single call: cross-call uniqueness belongs to the persistence layer's
// caller. Returns one violation per duplicate pair found.
func ValidateBatch(records []*models.FinancialStatement) []Violation {
	var violations []Violation
	seen := make(map[string]bool, len(records))

	for _, rec := range records {
		key := strings.ToLower(rec.CompanyName) + "\x00" + rec.Year
		if seen[key] {
			violations = append(violations, Violation{
				Field:    "company_name",
				Severity: SeverityError,
				Message:  fmt.Sprintf("duplicate record found for %s - %s", rec.CompanyName, rec.Year),
			})
			continue
		}
		seen[key] = true
	}

	return violations
}
