package ai

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
)

const translateTimeout = 10 * time.Second

// Translator turns a free-text, often indirectly phrased need into a short
// venue-type search keyword via a single-turn text-generation call.
type Translator struct {
	llm    llms.Model
	logger *slog.Logger
}

// NewTranslator creates a translator backed by the given model.
func NewTranslator(llm llms.Model) *Translator {
	return &Translator{
		llm:    llm,
		logger: slog.Default().With("component", "intent-translator"),
	}
}

// Translate resolves the search keyword for a user query. Translation failure
// is non-fatal: any transport error or unusable response degrades to the
// literal query. One attempt, no retry.
func (t *Translator) Translate(ctx context.Context, query string) string {
	if t.llm == nil {
		return query
	}

	ctx, cancel := context.WithTimeout(ctx, translateTimeout)
	defer cancel()

	out, err := llms.GenerateFromSinglePrompt(ctx, t.llm, buildKeywordPrompt(query), llms.WithTemperature(0.0))
	if err != nil {
		t.logger.Warn("keyword extraction failed, falling back to literal query", "err", err)
		return query
	}

	keyword := sanitizeKeyword(out)
	if keyword == "" {
		t.logger.Warn("keyword extraction returned empty response, falling back to literal query")
		return query
	}
	return keyword
}

// sanitizeKeyword reduces a model response to a bare keyword phrase: the
// first non-empty line, with code fences, quotes, and trailing punctuation
// removed.
func sanitizeKeyword(raw string) string {
	raw = stripCodeFences(raw)
	for _, line := range strings.Split(raw, "\n") {
		keyword := strings.TrimSpace(line)
		keyword = strings.Trim(keyword, `"'`)
		keyword = strings.TrimRight(keyword, ".")
		if keyword != "" {
			return keyword
		}
	}
	return ""
}
