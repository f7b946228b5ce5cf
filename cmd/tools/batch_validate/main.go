// batch_validate runs the coercion and validation pipeline over a JSON file
// of extracted field maps and prints a per-record report plus batch-level
// duplicate findings. Useful for re-checking extraction output offline
// without the API or database.
//
// Usage: batch_validate <records.json> [reference-year]
// The input file holds a JSON array of field maps, one per statement.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"findoc_processor/pkg/core/validation"
	"findoc_processor/pkg/models"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: batch_validate <records.json> [reference-year]")
	}

	referenceYear := time.Now().Year()
	if len(os.Args) > 2 {
		y, err := strconv.Atoi(os.Args[2])
		if err != nil {
			log.Fatalf("Invalid reference year %q: %v", os.Args[2], err)
		}
		referenceYear = y
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to read %s: %v", os.Args[1], err)
	}

	var rawRecords []map[string]interface{}
	if err := json.Unmarshal(data, &rawRecords); err != nil {
		log.Fatalf("Failed to parse %s: %v", os.Args[1], err)
	}

	cfg := validation.DefaultConfig(referenceYear)
	var (
		valid    []*models.FinancialStatement
		rejected int
	)

	for i, raw := range rawRecords {
		industry := models.IndustryFromTag(stringField(raw, "industry"))
		coerced := validation.Coerce(raw)
		outcome := validation.Validate(coerced, industry, cfg)

		label := fmt.Sprintf("record %d (%v / %v)", i+1, raw["company_name"], raw["year"])
		if outcome.Valid {
			validation.ApplyMargins(outcome.Record)
			summary := validation.Summarize(outcome.Record)
			fmt.Printf("OK   %s: %d/%d core fields\n", label, summary.CompletedFields, summary.TotalFields)
			valid = append(valid, outcome.Record)
			continue
		}

		rejected++
		fmt.Printf("FAIL %s:\n", label)
		for _, v := range outcome.Violations {
			fmt.Printf("     [%s] %s: %s\n", v.Severity, v.Field, v.Message)
		}
	}

	batch := validation.NewBatch(valid)
	dupes := validation.ValidateBatch(valid)
	for _, v := range dupes {
		fmt.Printf("DUPE %s\n", v.Message)
	}

	fmt.Printf("\nBatch %s: %d records, %d valid, %d rejected, %d duplicates\n",
		batch.BatchID, len(rawRecords), len(valid), rejected, len(dupes))
	if rejected > 0 || len(dupes) > 0 {
		os.Exit(1)
	}
}

func stringField(m map[string]interface{}, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}
