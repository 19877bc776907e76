package recommend

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/plan4you/plan-advisor/internal/llm"
	"github.com/plan4you/plan-advisor/internal/types"
)

//go:embed schema.json
var synthesisSchemaJSON string

var synthesisSchema = gojsonschema.NewStringLoader(synthesisSchemaJSON)

// ParseSynthesis turns the raw decision-synthesis response into a validated
// RankedRecommendation.
//
// The text is stripped of markdown fences, checked against the JSON Schema
// (presence and JSON types of every field, including that isBestPlan is an
// actual boolean), decoded, and finally checked for the cross-field
// invariants: exactly one best entry whose plan id equals best_plan_id, and
// contiguous ranks from 1. Any violation yields a SchemaError carrying the
// raw text; nothing is ever corrected locally.
func ParseSynthesis(raw string) (types.RankedRecommendation, error) {
	var rec types.RankedRecommendation

	cleaned := llm.CleanJSONBlock(raw)
	if strings.TrimSpace(cleaned) == "" {
		return rec, &SchemaError{Reason: "empty response", RawOutput: raw}
	}

	if !json.Valid([]byte(cleaned)) {
		return rec, &SchemaError{Reason: "response is not valid JSON", RawOutput: raw}
	}

	result, err := gojsonschema.Validate(synthesisSchema, gojsonschema.NewStringLoader(cleaned))
	if err != nil {
		return rec, &SchemaError{Reason: fmt.Sprintf("schema validation error: %v", err), RawOutput: raw}
	}
	if !result.Valid() {
		reasons := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			reasons = append(reasons, desc.String())
		}
		return rec, &SchemaError{Reason: strings.Join(reasons, "; "), RawOutput: raw}
	}

	if err := json.Unmarshal([]byte(cleaned), &rec); err != nil {
		return rec, &SchemaError{Reason: fmt.Sprintf("failed to decode JSON: %v", err), RawOutput: raw}
	}

	if err := rec.Validate(); err != nil {
		return types.RankedRecommendation{}, &SchemaError{Reason: err.Error(), RawOutput: raw}
	}

	return rec, nil
}
