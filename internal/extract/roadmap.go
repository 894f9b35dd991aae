package extract

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/domain"
)

// stageSchemaJSON constrains the completion to an array of stage objects,
// each with exactly the three required string fields. Unknown extra fields
// are tolerated; missing or mistyped required fields fail the whole batch.
const stageSchemaJSON = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["stageName", "description", "estimatedCostINR"],
		"properties": {
			"stageName": {"type": "string"},
			"description": {"type": "string"},
			"estimatedCostINR": {"type": "string"}
		}
	}
}`

var stageSchema = jsonschema.MustCompileString("stages.json", stageSchemaJSON)

// ParseRoadmap recovers the ordered stage list from completion text that is
// expected to be a JSON array but may be wrapped in prose. Each returned
// stage carries a fresh per-call id. Failures are reported as a
// domain.FlowError of kind MalformedJSON or SchemaViolation, with the raw
// text preserved for diagnostics.
func ParseRoadmap(content string) ([]domain.CaseStageCost, error) {
	trimmed := strings.TrimSpace(content)
	candidate := trimmed

	// Greedy bracket match: first '[' through last ']'.
	if open := strings.Index(trimmed, "["); open != -1 {
		if end := strings.LastIndex(trimmed, "]"); end > open {
			candidate = trimmed[open : end+1]
		}
	}

	var value interface{}
	if err := json.Unmarshal([]byte(candidate), &value); err != nil {
		return nil, &domain.FlowError{
			Kind:    domain.FlowErrMalformedJSON,
			Message: "response was not valid JSON",
			Raw:     content,
			Err:     err,
		}
	}

	if err := stageSchema.Validate(value); err != nil {
		return nil, &domain.FlowError{
			Kind:    domain.FlowErrSchemaViolation,
			Message: fmt.Sprintf("response did not match the stage schema: %v", err),
			Raw:     content,
			Err:     err,
		}
	}

	var records []struct {
		StageName        string `json:"stageName"`
		Description      string `json:"description"`
		EstimatedCostINR string `json:"estimatedCostINR"`
	}
	if err := json.Unmarshal([]byte(candidate), &records); err != nil {
		return nil, &domain.FlowError{
			Kind:    domain.FlowErrMalformedJSON,
			Message: "response was not a JSON array",
			Raw:     content,
			Err:     err,
		}
	}

	now := time.Now().UnixMilli()
	stages := make([]domain.CaseStageCost, len(records))
	for i, rec := range records {
		stages[i] = domain.CaseStageCost{
			ID:               fmt.Sprintf("stage-%d-%d", i, now),
			StageName:        rec.StageName,
			Description:      rec.Description,
			EstimatedCostINR: rec.EstimatedCostINR,
		}
	}
	return stages, nil
}
