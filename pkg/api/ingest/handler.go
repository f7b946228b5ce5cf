// Package ingest exposes the document ingestion endpoint: decoded document
// in, validated and stored financial statement out.
package ingest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"findoc_processor/pkg/core/document"
	"findoc_processor/pkg/core/extraction"
	"findoc_processor/pkg/core/store"
	"findoc_processor/pkg/core/textnorm"
	"findoc_processor/pkg/core/validation"
	"findoc_processor/pkg/models"
)

var (
	extractor *extraction.Service
	repo      *store.StatementRepo
)

// InitHandler wires the ingestion pipeline dependencies.
func InitHandler(svc *extraction.Service) {
	extractor = svc
	repo = store.NewStatementRepo()
}

// IngestRequest carries one document to process. Exactly one of Document,
// HTML or RawText should be set; Document is the decoded-page envelope, HTML
// is an HTML statement to decode here, RawText bypasses envelope checks.
type IngestRequest struct {
	FileName string             `json:"file_name"`
	Industry string             `json:"industry"`
	Document *document.Document `json:"document,omitempty"`
	HTML     string             `json:"html,omitempty"`
	RawText  string             `json:"raw_text,omitempty"`
}

// IngestResponse reports a stored statement.
type IngestResponse struct {
	RequestID string                 `json:"request_id"`
	ID        int64                  `json:"id"`
	Status    string                 `json:"status"`
	Statement map[string]interface{} `json:"statement"`
	Summary   validation.Summary     `json:"summary"`
	Document  *document.Metadata     `json:"document,omitempty"`
	Keywords  map[string][]string    `json:"keywords,omitempty"`
}

// RejectionResponse reports why a document was rejected.
type RejectionResponse struct {
	RequestID  string                 `json:"request_id"`
	Status     string                 `json:"status"`
	Error      string                 `json:"error"`
	Violations []validation.Violation `json:"violations,omitempty"`
}

// HandleIngest processes POST /api/ingest: normalize, extract, coerce,
// validate, store. Any validation violation rejects the document.
func HandleIngest(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	requestID := uuid.NewString()

	var req IngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Resolve the raw text and pre-flight metadata.
	var (
		rawText string
		meta    *document.Metadata
	)
	switch {
	case req.HTML != "":
		doc, err := document.FromHTML(req.FileName, req.HTML)
		if err != nil {
			reject(w, requestID, http.StatusBadRequest, err.Error(), nil)
			return
		}
		m := doc.Metadata()
		meta = &m
		rawText = doc.AssembleText()
	case req.Document != nil:
		m := req.Document.Metadata()
		meta = &m
		rawText = req.Document.AssembleText()
	case req.RawText != "":
		rawText = req.RawText
	default:
		reject(w, requestID, http.StatusBadRequest, "request carries no document content", nil)
		return
	}

	if meta != nil && !meta.Valid {
		reject(w, requestID, http.StatusBadRequest, "document contains no extractable text in its opening pages", nil)
		return
	}

	cleaned := textnorm.Clean(rawText)
	if cleaned == "" {
		reject(w, requestID, http.StatusBadRequest, "document text is empty after normalization", nil)
		return
	}

	hints := textnorm.ExtractCompanyInfo(cleaned)
	fmt.Printf("[Ingest] %s: company hint %q, year hint %q\n", requestID, hints.CompanyName, hints.Year)

	fields, err := extractor.ExtractFields(r.Context(), cleaned, hints, req.Industry)
	if err != nil {
		reject(w, requestID, http.StatusBadGateway, fmt.Sprintf("extraction failed: %v", err), nil)
		return
	}

	coerced := validation.Coerce(fields)
	industry := models.IndustryFromTag(req.Industry)
	outcome := validation.Validate(coerced, industry, validation.DefaultConfig(time.Now().Year()))
	if !outcome.Valid {
		fmt.Printf("[Ingest] %s: rejected with %d violations\n", requestID, len(outcome.Violations))
		reject(w, requestID, http.StatusUnprocessableEntity, "financial data failed validation", outcome.Violations)
		return
	}

	rec := outcome.Record
	validation.ApplyMargins(rec)
	summary := validation.Summarize(rec)

	exists, err := repo.Exists(r.Context(), rec.CompanyName, rec.Year)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if exists {
		reject(w, requestID, http.StatusConflict,
			fmt.Sprintf("statement for %s year %s already stored", rec.CompanyName, rec.Year), nil)
		return
	}

	id, err := repo.Insert(r.Context(), rec, req.FileName)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	fmt.Printf("[Ingest] %s: stored %s %s as id %d\n", requestID, rec.CompanyName, rec.Year, id)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(IngestResponse{
		RequestID: requestID,
		ID:        id,
		Status:    "stored",
		Statement: rec.ToMap(),
		Summary:   summary,
		Document:  meta,
		Keywords:  textnorm.ExtractKeywords(cleaned),
	})
}

func reject(w http.ResponseWriter, requestID string, status int, msg string, violations []validation.Violation) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(RejectionResponse{
		RequestID:  requestID,
		Status:     "rejected",
		Error:      msg,
		Violations: violations,
	})
}
