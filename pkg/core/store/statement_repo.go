package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"findoc_processor/pkg/models"
)

// StatementRepo handles storage and retrieval of validated statements.
// The full record lives in a JSONB column; company_name and year are
// broken out for keying and listing queries.
type StatementRepo struct{}

// NewStatementRepo creates a new repository instance.
func NewStatementRepo() *StatementRepo {
	return &StatementRepo{}
}

// Exists reports whether a statement for (companyName, year) is stored.
func (r *StatementRepo) Exists(ctx context.Context, companyName, year string) (bool, error) {
	pool := GetPool()
	if pool == nil {
		return false, fmt.Errorf("database pool not initialized")
	}

	var exists bool
	err := pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM financial_statements WHERE company_name = $1 AND year = $2)`,
		companyName, year).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check for existing statement: %w", err)
	}
	return exists, nil
}

// Insert stores a validated statement. The (company_name, year) uniqueness
// constraint is enforced by the schema; callers check Exists first to return
// a conflict instead of a bare database error.
func (r *StatementRepo) Insert(ctx context.Context, rec *models.FinancialStatement, fileName string) (int64, error) {
	pool := GetPool()
	if pool == nil {
		return 0, fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(rec)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal statement: %w", err)
	}

	var id int64
	err = pool.QueryRow(ctx, `
		INSERT INTO financial_statements (company_name, year, file_name, industry, data_json, uploaded_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id`,
		rec.CompanyName, rec.Year, fileName, string(rec.Industry), jsonData, time.Now()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert statement: %w", err)
	}
	return id, nil
}

// ListCompanies returns the distinct company names with stored statements,
// each with its year count, ordered by name.
func (r *StatementRepo) ListCompanies(ctx context.Context) ([]models.CompanyListing, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	rows, err := pool.Query(ctx, `
		SELECT company_name, COUNT(*), MIN(year), MAX(year)
		FROM financial_statements
		GROUP BY company_name
		ORDER BY company_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var listings []models.CompanyListing
	for rows.Next() {
		var l models.CompanyListing
		if err := rows.Scan(&l.CompanyName, &l.YearCount, &l.FirstYear, &l.LastYear); err != nil {
			return nil, fmt.Errorf("failed to scan company listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// GetByCompany returns all stored statements for a company, newest year first.
func (r *StatementRepo) GetByCompany(ctx context.Context, companyName string) ([]*models.StoredStatement, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	rows, err := pool.Query(ctx, `
		SELECT id, file_name, data_json, uploaded_at, updated_at
		FROM financial_statements
		WHERE company_name = $1
		ORDER BY year DESC`,
		companyName)
	if err != nil {
		return nil, fmt.Errorf("failed to query statements: %w", err)
	}
	defer rows.Close()

	var records []*models.StoredStatement
	for rows.Next() {
		rec, err := scanStatement(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetLatestTwo returns the two most recent years for a company, newest
// first. Errors if fewer than two years are stored.
func (r *StatementRepo) GetLatestTwo(ctx context.Context, companyName string) (*models.StoredStatement, *models.StoredStatement, error) {
	records, err := r.GetByCompany(ctx, companyName)
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("need at least 2 years of data for %s, have %d", companyName, len(records))
	}
	return records[0], records[1], nil
}

// Delete removes one stored statement by company and year. Returns
// pgx.ErrNoRows when nothing matched.
func (r *StatementRepo) Delete(ctx context.Context, companyName, year string) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	tag, err := pool.Exec(ctx,
		`DELETE FROM financial_statements WHERE company_name = $1 AND year = $2`,
		companyName, year)
	if err != nil {
		return fmt.Errorf("failed to delete statement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanStatement(rows pgx.Rows) (*models.StoredStatement, error) {
	var (
		rec      models.StoredStatement
		fileName *string
		jsonData []byte
	)
	if err := rows.Scan(&rec.ID, &fileName, &jsonData, &rec.UploadedAt, &rec.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to scan statement: %w", err)
	}
	if err := json.Unmarshal(jsonData, &rec.FinancialStatement); err != nil {
		return nil, fmt.Errorf("failed to unmarshal statement data: %w", err)
	}
	if fileName != nil {
		rec.FileName = *fileName
	}
	return &rec, nil
}
