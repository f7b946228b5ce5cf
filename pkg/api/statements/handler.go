// Package statements serves stored financial statements: company listings,
// per-company history, year-over-year comparison and multi-year summaries.
package statements

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"

	"findoc_processor/pkg/core/extraction"
	"findoc_processor/pkg/core/store"
	"findoc_processor/pkg/core/utils"
)

var (
	extractor *extraction.Service
	repo      *store.StatementRepo
)

// InitHandler wires the statement-serving dependencies.
func InitHandler(svc *extraction.Service) {
	extractor = svc
	repo = store.NewStatementRepo()
}

func cors(w http.ResponseWriter, r *http.Request, methods string) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", methods+", OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// HandleCompanies serves GET /api/companies: every company with stored
// statements and its year range.
func HandleCompanies(w http.ResponseWriter, r *http.Request) {
	if cors(w, r, "GET") {
		return
	}
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	listings, err := repo.ListCompanies(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]interface{}{"companies": listings, "count": len(listings)})
}

// HandleCompany serves GET /api/company?name=X: all stored years for one
// company, newest first.
func HandleCompany(w http.ResponseWriter, r *http.Request) {
	if cors(w, r, "GET") {
		return
	}
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "name query parameter is required", http.StatusBadRequest)
		return
	}

	records, err := repo.GetByCompany(r.Context(), name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(records) == 0 {
		http.Error(w, fmt.Sprintf("no statements stored for %s", name), http.StatusNotFound)
		return
	}

	var out []map[string]interface{}
	for _, rec := range records {
		m := rec.ToMap()
		m["id"] = rec.ID
		m["uploaded_at"] = rec.UploadedAt
		m["file_name"] = rec.FileName
		out = append(out, m)
	}
	writeJSON(w, map[string]interface{}{"company_name": name, "statements": out, "count": len(out)})
}

// HandleCompare serves GET /api/compare?company=X: a narrative comparison of
// the two most recent stored years.
func HandleCompare(w http.ResponseWriter, r *http.Request) {
	if cors(w, r, "GET") {
		return
	}
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := r.URL.Query().Get("company")
	if name == "" {
		http.Error(w, "company query parameter is required", http.StatusBadRequest)
		return
	}

	current, previous, err := repo.GetLatestTwo(r.Context(), name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	fmt.Printf("[Statements] Comparing %s: %s vs %s\n", name, current.Year, previous.Year)
	analysis, err := extractor.GenerateComparison(r.Context(), name, current, previous)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	html, err := utils.RenderMarkdown(analysis)
	if err != nil {
		html = ""
	}
	writeJSON(w, map[string]interface{}{
		"company_name":  name,
		"current_year":  current.Year,
		"previous_year": previous.Year,
		"analysis":      analysis,
		"analysis_html": html,
	})
}

// HandleSummary serves GET /api/summary?company=X: a narrative summary over
// every stored year.
func HandleSummary(w http.ResponseWriter, r *http.Request) {
	if cors(w, r, "GET") {
		return
	}
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := r.URL.Query().Get("company")
	if name == "" {
		http.Error(w, "company query parameter is required", http.StatusBadRequest)
		return
	}

	records, err := repo.GetByCompany(r.Context(), name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(records) == 0 {
		http.Error(w, fmt.Sprintf("no statements stored for %s", name), http.StatusNotFound)
		return
	}

	summary, err := extractor.GenerateCompanySummary(r.Context(), name, records)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	html, err := utils.RenderMarkdown(summary)
	if err != nil {
		html = ""
	}
	writeJSON(w, map[string]interface{}{
		"company_name":  name,
		"years_covered": len(records),
		"summary":       summary,
		"summary_html":  html,
	})
}

// HandleDelete serves DELETE /api/statement?company=X&year=Y.
func HandleDelete(w http.ResponseWriter, r *http.Request) {
	if cors(w, r, "DELETE") {
		return
	}
	if r.Method != "DELETE" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := r.URL.Query().Get("company")
	year := r.URL.Query().Get("year")
	if name == "" || year == "" {
		http.Error(w, "company and year query parameters are required", http.StatusBadRequest)
		return
	}

	if err := repo.Delete(r.Context(), name, year); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			http.Error(w, fmt.Sprintf("no statement stored for %s year %s", name, year), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	fmt.Printf("[Statements] Deleted %s year %s\n", name, year)
	writeJSON(w, map[string]interface{}{"status": "deleted", "company_name": name, "year": year})
}
