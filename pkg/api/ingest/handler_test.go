package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"findoc_processor/pkg/core/agent"
	"findoc_processor/pkg/core/extraction"
)

type cannedProvider struct {
	response string
}

func (p *cannedProvider) GenerateResponse(ctx context.Context, prompt, systemPrompt string, options map[string]interface{}) (string, error) {
	return p.response, nil
}

func setupHandler(response string) {
	mgr := agent.NewManager(agent.Config{ActiveProvider: "canned"})
	mgr.RegisterProvider("canned", &cannedProvider{response: response})
	InitHandler(extraction.NewService(mgr, nil))
}

func postIngest(t *testing.T, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest("POST", "/api/ingest", bytes.NewReader(data))
	w := httptest.NewRecorder()
	HandleIngest(w, req)
	return w
}

func TestHandleIngestRejectsEmptyRequest(t *testing.T) {
	setupHandler(`{}`)

	w := postIngest(t, IngestRequest{FileName: "empty.pdf"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	var resp RejectionResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "rejected" {
		t.Errorf("status = %q, want rejected", resp.Status)
	}
	if resp.RequestID == "" {
		t.Errorf("request id missing")
	}
}

func TestHandleIngestRejectsDocumentWithoutText(t *testing.T) {
	setupHandler(`{}`)

	w := postIngest(t, map[string]interface{}{
		"file_name": "scan.pdf",
		"document": map[string]interface{}{
			"file_name": "scan.pdf",
			"byte_size": 1024,
			"pages":     []map[string]interface{}{{"number": 1, "text": "   "}},
		},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestHandleIngestRejectsInvalidFinancialData(t *testing.T) {
	// Gross profit contradicts revenue - cogs well beyond tolerance.
	setupHandler(`{
		"company_name": "ACME Corp",
		"year": "2023",
		"revenue": 1000000,
		"cogs": 600000,
		"gross_profit": 900000
	}`)

	w := postIngest(t, IngestRequest{
		FileName: "acme.txt",
		RawText:  "ACME Corp ANNUAL REPORT 2023 Revenue $1,000,000",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}

	var resp RejectionResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Violations) == 0 {
		t.Fatalf("expected violations in rejection response")
	}
	found := false
	for _, v := range resp.Violations {
		if v.Field == "gross_profit" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a gross_profit violation, got %+v", resp.Violations)
	}
}

func TestHandleIngestMethodNotAllowed(t *testing.T) {
	setupHandler(`{}`)

	req := httptest.NewRequest("GET", "/api/ingest", nil)
	w := httptest.NewRecorder()
	HandleIngest(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}
