// Package utils hardens loosely-structured LLM output before it reaches the
// validation engine: JSON repair for the field map the extraction model
// returns, and markdown cleanup for narrative analysis responses.
package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// RepairJSON attempts to fix common JSON errors in LLM output: missing or
// single quotes, unclosed arrays/objects, TRUE/FALSE/Null casing, trailing
// commas, comments, and wrapping markdown code fences.
func RepairJSON(malformed string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "", fmt.Errorf("json repair failed: %w", err)
	}
	return repaired, nil
}

// ParseFieldMap extracts a raw field-name to value mapping from LLM output,
// trying progressively more lenient strategies:
//
//  1. standard JSON
//  2. JSON repair
//  3. Hjson (unquoted keys/strings, optional commas, comments)
//
// The returned map is untrusted input for validation.Coerce; values keep
// whatever loose types the model produced.
func ParseFieldMap(raw string) (map[string]interface{}, error) {
	var fields map[string]interface{}

	if err := json.Unmarshal([]byte(raw), &fields); err == nil {
		return fields, nil
	}

	if repaired, err := RepairJSON(raw); err == nil {
		if err := json.Unmarshal([]byte(repaired), &fields); err == nil {
			return fields, nil
		}
	}

	if err := hjson.Unmarshal([]byte(raw), &fields); err == nil {
		return fields, nil
	}

	return nil, fmt.Errorf("could not parse a field map from model output (%d bytes)", len(raw))
}
