package ai

import (
	"fmt"
	"strings"

	"github.com/hearthlocal/local-finder/api/internal/entity"
)

const keywordPromptTemplate = `You help people find local small businesses and interesting places to visit.

The user said: '%s'

Your job: Figure out what type of LOCAL PLACE or SMALL BUSINESS best satisfies their need or mood.
Think about the USER'S INTENT and EMOTION, not just the literal words.

Examples:
- "i am sick" -> "urgent care clinic"
- "im bored" -> "museum"
- "i want to have fun" -> "entertainment venue"
- "i need to eat" -> "local restaurant"
- "im stressed" -> "spa"
- "my car is broken" -> "auto repair shop"
- "i want to learn something" -> "museum"
- "im hungry" -> "local restaurant"
- "i want coffee" -> "coffee shop"
- "i need a haircut" -> "hair salon"
- "i want to work out" -> "gym"
- "i need groceries" -> "grocery store"
- "i want to buy clothes" -> "clothing boutique"
- "i need a dentist" -> "dentist"
- "i want fresh air" -> "park"
- "i want to celebrate" -> "restaurant"
- "i want to read" -> "bookstore"
- "i want to meet people" -> "cafe"
- "im feeling down" -> "therapist"
- "i want to try something new" -> "art studio"

Rules:
1. Focus on the USER'S UNDERLYING NEED, not the literal words.
2. Output ONLY a single SHORT keyword phrase (2-4 words max).
3. No quotes, no explanation, no punctuation - just the keyword.`

const curationSystemPrompt = `You curate local small-business recommendations.

Given a user's conversational need and a candidate list of businesses:
1. Identify and REMOVE any massive national or state-wide chains, big box stores, or large corporate franchises. ONLY include true small businesses (mom and pop shops, startups, local chains).
2. From the remaining true small businesses, select the top 1 to 5 places that best solve the user's specific need.
3. For each selected place, write a short, punchy 1-sentence explanation of why it's a good choice for them.

Output strictly in JSON format as follows:
{
  "recommended_ids": ["<id>", "<id>"],
  "reasons": {
    "<id>": "Reason why this place is great...",
    "<id>": "Reason why this place is great..."
  }
}`

func buildKeywordPrompt(query string) string {
	return fmt.Sprintf(keywordPromptTemplate, query)
}

func buildCurationInput(query string, candidates []entity.Business) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "The user's need: %q\n\nCandidate businesses:\n", query)
	for _, b := range candidates {
		rating := "unrated"
		if b.Rating != nil {
			rating = fmt.Sprintf("%.1f stars", *b.Rating)
		}
		fmt.Fprintf(&sb, "- id=%s %s (%s, %s, %d reviews)\n", b.ID, b.Name, b.Category, rating, b.ReviewCount)
	}
	return sb.String()
}
