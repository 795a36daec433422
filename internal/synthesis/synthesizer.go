package synthesis

import (
	"context"
	"fmt"
	"strings"

	"sales-assistant/internal/llm"
	"sales-assistant/internal/model"
)

// Synthesizer turns a user's recent conversation into one short product
// search query. An upstream failure comes back as an error; an empty query
// with a nil error means the model found nothing to search for. Callers
// skip the cycle in both cases.
type Synthesizer struct {
	llmClient llm.Client
}

func New(llmClient llm.Client) *Synthesizer {
	return &Synthesizer{llmClient: llmClient}
}

func (s *Synthesizer) Synthesize(ctx context.Context, messages []model.Message) (string, error) {
	if len(messages) == 0 {
		return "", nil
	}

	prompt := buildPrompt(messages)
	resp, err := s.llmClient.Generate(ctx, []llm.Message{{Role: "user", Content: prompt}})
	if err != nil {
		return "", fmt.Errorf("synthesize query: %w", err)
	}

	query := strings.TrimSpace(resp.Content)
	return query, nil
}

func buildPrompt(messages []model.Message) string {
	var bld strings.Builder
	bld.WriteString("SYSTEM:\nThe user has been chatting about products. Here are their recent messages:\n")
	for i, m := range messages {
		bld.WriteString(fmt.Sprintf("%d. %s\n", i+1, m.Text))
	}
	bld.WriteString(`
if language is not English, translate.

You are helping suggest products from Davis & Shirtliff inventory.

Please craft a smart, short product search query using relevant keywords from Davis & Shirtliff categories, brands, or systems.

Here is the reference:
`)
	bld.WriteString(CatalogReference)
	bld.WriteString(`

IMPORTANT:
- Focus on specific products, components and related products and keywords too
- Do NOT return explanations, only the search query.
- Be concise.

ONLY return the query text minimum of 20 characters.
`)
	return bld.String()
}
