// Package enrich expands thin article snippets into longer prose via an
// OpenAI-compatible endpoint. The gateway is treated as unreliable: any
// failure, and any output not meaningfully longer than the input, falls back
// to the original snippet wrapped as minimal HTML.
package enrich

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"

	"newsmix/pkg/config"
)

const systemPrompt = `You are a top-tier news journalist. Expand short news snippets into comprehensive, detailed, professional news articles.
Write a minimum of 400-600 words with context, background and analysis in a formal journalistic tone.
Format the article with clean HTML <p> tags and <h3> headings for sections.
Never mention that you are an AI or that you are expanding a text.
Return only the clean HTML article, no markdown fences.`

// expansion must beat the input by this factor to count as an improvement
const minExpansionRatio = 1.5

// minimum absolute length for an expansion to be usable
const minExpansionLen = 300

// Expander turns snippets into full articles through a chat-completion API
type Expander struct {
	client *openai.Client
	cfg    config.EnrichmentConfig
}

// NewExpander creates an expander from enrichment configuration
func NewExpander(cfg config.EnrichmentConfig) *Expander {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	return &Expander{client: openai.NewClientWithConfig(clientConfig), cfg: cfg}
}

// Expand returns expanded HTML content for the snippet. Never returns an
// error: when the gateway is disabled, unreachable or produces output no
// better than the input, the snippet itself is returned wrapped in a
// paragraph (empty snippet yields an empty string).
func (e *Expander) Expand(ctx context.Context, title, snippet, category string) string {
	if !e.cfg.Enabled {
		return wrapSnippet(snippet)
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	if category == "" {
		category = "General News"
	}
	prompt := fmt.Sprintf("Headline: %s\nOriginal Snippet: %s\nCategory: %s", title, snippet, category)

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       e.cfg.Model,
		Temperature: float32(e.cfg.Temperature),
		MaxTokens:   e.cfg.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		log.Printf("[WARN] enrichment failed for %q: %v", title, err)
		return wrapSnippet(snippet)
	}
	if len(resp.Choices) == 0 {
		log.Printf("[WARN] enrichment returned no choices for %q", title)
		return wrapSnippet(snippet)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	content = strings.TrimSpace(strings.ReplaceAll(content, "```html", ""))
	content = strings.TrimSpace(strings.ReplaceAll(content, "```", ""))

	// reject non-expansions, the snippet is a better fallback than a stub
	if len(content) < minExpansionLen || float64(len(content)) < float64(len(snippet))*minExpansionRatio {
		log.Printf("[DEBUG] enrichment output too short for %q (%d chars), using snippet", title, len(content))
		return wrapSnippet(snippet)
	}
	return content
}

func wrapSnippet(snippet string) string {
	if snippet == "" {
		return ""
	}
	return "<p>" + snippet + "</p>"
}
