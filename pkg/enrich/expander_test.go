package enrich

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsmix/pkg/config"
)

// completionServer fakes an OpenAI-compatible chat completion endpoint
// returning the given content
func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func enrichmentConfig(endpoint string) config.EnrichmentConfig {
	return config.EnrichmentConfig{
		Enabled:     true,
		Endpoint:    endpoint,
		APIKey:      "test-key",
		Model:       "test-model",
		Temperature: 0.4,
		MaxTokens:   1200,
		Timeout:     5 * time.Second,
	}
}

// longArticle is comfortably past both expansion thresholds
func longArticle() string {
	return "<p>" + strings.Repeat("The committee met again to review the findings in detail. ", 20) + "</p>"
}

func TestExpander_Expand(t *testing.T) {
	article := longArticle()
	ts := completionServer(t, article)
	defer ts.Close()

	e := NewExpander(enrichmentConfig(ts.URL))
	got := e.Expand(context.Background(), "Committee Meets", "short teaser", "politics")
	assert.Equal(t, article, got)
}

func TestExpander_Expand_StripsMarkdownFences(t *testing.T) {
	article := longArticle()
	ts := completionServer(t, "```html\n"+article+"\n```")
	defer ts.Close()

	e := NewExpander(enrichmentConfig(ts.URL))
	got := e.Expand(context.Background(), "Committee Meets", "short teaser", "politics")
	assert.Equal(t, article, got)
	assert.NotContains(t, got, "```")
}

func TestExpander_Expand_Disabled(t *testing.T) {
	cfg := enrichmentConfig("http://127.0.0.1:1")
	cfg.Enabled = false

	e := NewExpander(cfg)
	got := e.Expand(context.Background(), "Title", "the snippet", "news")
	assert.Equal(t, "<p>the snippet</p>", got)
}

func TestExpander_Expand_GatewayErrorFallsBack(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	e := NewExpander(enrichmentConfig(ts.URL))
	got := e.Expand(context.Background(), "Title", "the snippet", "news")
	assert.Equal(t, "<p>the snippet</p>", got)
}

func TestExpander_Expand_ShortOutputFallsBack(t *testing.T) {
	// a "longer" snippet makes a modest completion fail the expansion check
	snippet := strings.Repeat("background detail ", 30)
	ts := completionServer(t, "<p>too short to count as an expansion</p>")
	defer ts.Close()

	e := NewExpander(enrichmentConfig(ts.URL))
	got := e.Expand(context.Background(), "Title", snippet, "news")
	assert.Equal(t, "<p>"+snippet+"</p>", got)
}

func TestExpander_Expand_EmptySnippet(t *testing.T) {
	cfg := enrichmentConfig("http://127.0.0.1:1")
	cfg.Enabled = false

	e := NewExpander(cfg)
	assert.Empty(t, e.Expand(context.Background(), "Title", "", "news"))
}
