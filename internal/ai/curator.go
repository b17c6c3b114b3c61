package ai

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tmc/langchaingo/llms"

	"github.com/hearthlocal/local-finder/api/internal/entity"
)

const curateTimeout = 10 * time.Second

// GenericReason is attached when the model recommends a place without
// supplying its own justification sentence.
const GenericReason = "Recommended for your need."

// Verdict is the curation outcome: the selected place identifiers in the
// model's preference order, plus a justification per identifier. Absence
// from RecommendedIDs means excluded.
type Verdict struct {
	RecommendedIDs []string          `json:"recommended_ids"`
	Reasons        map[string]string `json:"reasons"`
}

// Reason returns the justification for an identifier, defaulting to the
// generic one when the model omitted it.
func (v *Verdict) Reason(id string) string {
	if reason, ok := v.Reasons[id]; ok && reason != "" {
		return reason
	}
	return GenericReason
}

// Curator asks the text-generation provider to drop residual chains from a
// pre-filtered candidate list and pick the best semantic matches.
type Curator struct {
	llm    llms.Model
	logger *slog.Logger
}

// NewCurator creates a curator backed by the given model.
func NewCurator(llm llms.Model) *Curator {
	return &Curator{
		llm:    llm,
		logger: slog.Default().With("component", "curator"),
	}
}

// Curate runs the semantic re-rank pass. Errors here are recoverable by the
// caller; the curator never retries.
func (c *Curator) Curate(ctx context.Context, query string, candidates []entity.Business) (*Verdict, error) {
	if c.llm == nil {
		return nil, errors.New("no curation model configured")
	}

	ctx, cancel := context.WithTimeout(ctx, curateTimeout)
	defer cancel()

	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(curationSystemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(buildCurationInput(query, candidates))},
		},
	}

	response, err := c.llm.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
	if err != nil {
		c.logger.Warn("curation call failed", "err", err)
		return nil, err
	}
	if len(response.Choices) == 0 {
		return nil, errors.New("curation response had no choices")
	}

	verdict, err := parseVerdict(response.Choices[0].Content)
	if err != nil {
		c.logger.Warn("curation response unparsable", "err", err)
		return nil, err
	}
	return verdict, nil
}
