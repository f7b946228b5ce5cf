// Package extraction turns cleaned statement text into structured field maps
// via the configured LLM provider, and generates narrative analyses over
// stored statements. All model output passes through the repair-tolerant
// field-map parser before anything downstream sees it.
package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"findoc_processor/pkg/core/agent"
	"findoc_processor/pkg/core/llm"
	"findoc_processor/pkg/core/prompt"
	"findoc_processor/pkg/core/textnorm"
	"findoc_processor/pkg/core/utils"
	"findoc_processor/pkg/models"
)

// maxChunkSize bounds how much cleaned text goes into one extraction prompt.
// Statements longer than this are chunked and only the leading chunk is sent;
// the core line items sit at the front of every statement we see.
const maxChunkSize = 12000

// Service orchestrates prompt rendering, LLM calls and response parsing.
type Service struct {
	agents   *agent.Manager
	narrator *llm.Narrator
}

// NewService wires an extraction service. narrator may be nil, in which case
// the narrative endpoints report that analysis is unavailable.
func NewService(agents *agent.Manager, narrator *llm.Narrator) *Service {
	return &Service{agents: agents, narrator: narrator}
}

// ExtractFields runs the industry-specific extraction prompt over cleaned
// text and returns the raw field map. Heuristic hints back-fill company_name
// and year only when the model left them empty; they never override model
// output.
func (s *Service) ExtractFields(ctx context.Context, text string, hints textnorm.CompanyInfo, industry string) (map[string]interface{}, error) {
	chunks := textnorm.Chunk(text, maxChunkSize)
	if len(chunks) > 1 {
		log.Printf("[Extraction] Text split into %d chunks, using the first (%d chars)", len(chunks), len(chunks[0]))
	}

	companyName := hints.CompanyName
	if companyName == "" {
		companyName = "Unknown"
	}
	year := hints.Year
	if year == "" {
		year = "Unknown"
	}

	tmpl := prompt.GetExtractionPrompt(industry)
	user, err := tmpl.Render(map[string]interface{}{
		"CompanyName": companyName,
		"Year":        year,
		"Text":        chunks[0],
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render extraction prompt: %w", err)
	}

	raw, err := s.agents.ExecutePrompt(ctx, "extraction", user, tmpl.SystemPrompt, llm.JSONMode())
	if err != nil {
		return nil, fmt.Errorf("extraction call failed: %w", err)
	}

	fields, err := utils.ParseFieldMap(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse extraction response: %w", err)
	}

	backfill(fields, "company_name", hints.CompanyName)
	backfill(fields, "year", hints.Year)

	return fields, nil
}

// backfill sets fields[key] to hint only when the model produced nothing.
func backfill(fields map[string]interface{}, key, hint string) {
	if hint == "" {
		return
	}
	v, ok := fields[key]
	if !ok || v == nil {
		fields[key] = hint
		return
	}
	if str, isStr := v.(string); isStr {
		trimmed := strings.TrimSpace(str)
		if trimmed == "" || strings.EqualFold(trimmed, "unknown") || strings.EqualFold(trimmed, "null") {
			fields[key] = hint
		}
	}
}

// GenerateComparison produces a markdown analysis comparing two stored years
// of the same company.
func (s *Service) GenerateComparison(ctx context.Context, companyName string, current, previous *models.StoredStatement) (string, error) {
	if s.narrator == nil {
		return "", fmt.Errorf("narrative analysis is not configured")
	}

	currentJSON, err := json.MarshalIndent(current.ToMap(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode current year: %w", err)
	}
	previousJSON, err := json.MarshalIndent(previous.ToMap(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode previous year: %w", err)
	}

	tmpl := prompt.Get("analysis.comparison")
	user, err := tmpl.Render(map[string]interface{}{
		"CompanyName":  companyName,
		"CurrentYear":  current.Year,
		"CurrentData":  string(currentJSON),
		"PreviousYear": previous.Year,
		"PreviousData": string(previousJSON),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render comparison prompt: %w", err)
	}

	out, err := s.narrator.Generate(ctx, tmpl.SystemPrompt, user)
	if err != nil {
		return "", fmt.Errorf("comparison generation failed: %w", err)
	}
	return utils.CleanMarkdown(out), nil
}

// GenerateCompanySummary produces a markdown summary over all stored years
// of one company.
func (s *Service) GenerateCompanySummary(ctx context.Context, companyName string, records []*models.StoredStatement) (string, error) {
	if s.narrator == nil {
		return "", fmt.Errorf("narrative analysis is not configured")
	}

	var maps []map[string]interface{}
	for _, rec := range records {
		maps = append(maps, rec.ToMap())
	}
	dataJSON, err := json.MarshalIndent(maps, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode financial history: %w", err)
	}

	tmpl := prompt.Get("analysis.summary")
	user, err := tmpl.Render(map[string]interface{}{
		"CompanyName":   companyName,
		"FinancialData": string(dataJSON),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render summary prompt: %w", err)
	}

	out, err := s.narrator.Generate(ctx, tmpl.SystemPrompt, user)
	if err != nil {
		return "", fmt.Errorf("summary generation failed: %w", err)
	}
	return utils.CleanMarkdown(out), nil
}
