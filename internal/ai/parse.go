package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// stripCodeFences removes optional markdown fence wrapping from a model
// response. Models wrap JSON in ```json fences often enough that this has to
// be an explicit step before parsing.
func stripCodeFences(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	return strings.TrimSpace(raw)
}

// parseVerdict decodes a curation response. Any parse failure or unexpected
// shape is an error; callers treat that as the soft-failure path, never as a
// request failure.
func parseVerdict(raw string) (*Verdict, error) {
	cleaned := stripCodeFences(raw)

	var verdict Verdict
	if err := json.Unmarshal([]byte(cleaned), &verdict); err != nil {
		return nil, fmt.Errorf("could not parse curation response: %w", err)
	}
	if verdict.RecommendedIDs == nil {
		return nil, fmt.Errorf("curation response missing recommended_ids")
	}
	return &verdict, nil
}
