package feed

import (
	"context"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsmix/pkg/domain"
)

// fakeResolver serves a fixed source list
type fakeResolver struct {
	sources map[string][]domain.Source
}

func (f *fakeResolver) Resolve(_ context.Context, country, category string) []domain.Source {
	return f.sources[country+"/"+category]
}

// fakeFetcher serves canned feeds per URL with an optional random delay, so
// completion order varies between runs
type fakeFetcher struct {
	feeds  map[string]*ParsedFeed
	jitter time.Duration
	calls  atomic.Int32
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) *ParsedFeed {
	f.calls.Add(1)
	if f.jitter > 0 {
		time.Sleep(time.Duration(rand.Int63n(int64(f.jitter)))) //nolint:gosec // jitter does not need crypto randomness
	}
	if feed, ok := f.feeds[url]; ok {
		return feed
	}
	return &ParsedFeed{}
}

func TestAggregator_Category(t *testing.T) {
	resolver := &fakeResolver{sources: map[string][]domain.Source{
		"UNITED_STATES/news": {
			{Name: "Source One", URL: "https://one.example.com/rss"},
			{Name: "Source Two", URL: "https://two.example.com/rss"},
		},
	}}
	fetcher := &fakeFetcher{feeds: map[string]*ParsedFeed{
		"https://one.example.com/rss": {
			Title: "One News",
			Items: []domain.FeedItem{{Title: "older", ISODate: "2024-01-02T10:00:00Z", PubDate: "Tue, 02 Jan 2024 10:00:00 +0000"}},
		},
		"https://two.example.com/rss": {
			Title: "Two News",
			Items: []domain.FeedItem{{Title: "newer", ISODate: "2024-01-05T10:00:00Z", PubDate: "Fri, 05 Jan 2024 10:00:00 +0000"}},
		},
	}}

	agg := NewAggregator(resolver, fetcher)
	articles := agg.Category(context.Background(), "UNITED_STATES", "news")

	require.Len(t, articles, 2)
	assert.Equal(t, "newer", articles[0].Title) // 2024-01-05 sorts first
	assert.Equal(t, "older", articles[1].Title)
	assert.Equal(t, int32(2), fetcher.calls.Load())

	// source name comes from the first non-empty feed title
	assert.Equal(t, "One News", articles[0].SourceName)
}

func TestAggregator_Category_NoSources(t *testing.T) {
	agg := NewAggregator(&fakeResolver{sources: map[string][]domain.Source{}}, &fakeFetcher{})

	articles := agg.Category(context.Background(), "FOO", "news")
	assert.NotNil(t, articles)
	assert.Empty(t, articles)
}

func TestAggregator_Category_PartialFailure(t *testing.T) {
	resolver := &fakeResolver{sources: map[string][]domain.Source{
		"INDIA/news": {
			{Name: "Alive", URL: "https://alive.example.com/rss"},
			{Name: "Dead", URL: "https://dead.example.com/rss"},
		},
	}}
	// dead source yields an empty feed, the fetcher never errors
	fetcher := &fakeFetcher{feeds: map[string]*ParsedFeed{
		"https://alive.example.com/rss": {
			Title: "Alive News",
			Items: []domain.FeedItem{{Title: "survivor", ISODate: "2024-01-03T10:00:00Z"}},
		},
	}}

	agg := NewAggregator(resolver, fetcher)
	articles := agg.Category(context.Background(), "INDIA", "news")

	require.Len(t, articles, 1)
	assert.Equal(t, "survivor", articles[0].Title)
}

func TestAggregator_Category_DeterministicOrder(t *testing.T) {
	// many sources completing in random order must always produce the same
	// date-sorted output
	srcs := make([]domain.Source, 0, 8)
	feeds := make(map[string]*ParsedFeed, 8)
	for i := 0; i < 8; i++ {
		url := "https://s" + string(rune('a'+i)) + ".example.com/rss"
		srcs = append(srcs, domain.Source{Name: "S", URL: url})
		day := i + 1
		feeds[url] = &ParsedFeed{
			Title: "Feed",
			Items: []domain.FeedItem{{
				Title:   time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC).Format("Jan-02"),
				ISODate: time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC).Format(time.RFC3339),
			}},
		}
	}
	resolver := &fakeResolver{sources: map[string][]domain.Source{"INDIA/world": srcs}}

	var baseline []string
	for run := 0; run < 5; run++ {
		fetcher := &fakeFetcher{feeds: feeds, jitter: 5 * time.Millisecond}
		agg := NewAggregator(resolver, fetcher)

		articles := agg.Category(context.Background(), "INDIA", "world")
		require.Len(t, articles, 8)

		titles := make([]string, 0, len(articles))
		for _, a := range articles {
			titles = append(titles, a.Title)
		}
		if run == 0 {
			baseline = titles
			assert.Equal(t, "Jan-08", titles[0]) // newest first
			continue
		}
		assert.Equal(t, baseline, titles, "run %d diverged", run)
	}
}

func TestAggregator_Categories(t *testing.T) {
	resolver := &fakeResolver{sources: map[string][]domain.Source{
		"INDIA/news":   {{Name: "N", URL: "https://n.example.com/rss"}},
		"INDIA/sports": {{Name: "S", URL: "https://s.example.com/rss"}},
	}}
	fetcher := &fakeFetcher{feeds: map[string]*ParsedFeed{
		"https://n.example.com/rss": {Title: "N", Items: []domain.FeedItem{{Title: "headline", ISODate: "2024-01-03T10:00:00Z"}}},
		"https://s.example.com/rss": {Title: "S", Items: []domain.FeedItem{{Title: "match", ISODate: "2024-01-04T10:00:00Z"}}},
	}}

	agg := NewAggregator(resolver, fetcher)
	result := agg.Categories(context.Background(), "INDIA", []string{"news", "sports", "missing"})

	require.Len(t, result, 3)
	require.Len(t, result["news"], 1)
	assert.Equal(t, "headline", result["news"][0].Title)
	require.Len(t, result["sports"], 1)
	assert.Equal(t, "match", result["sports"][0].Title)
	assert.Empty(t, result["missing"]) // empty category does not block others
}

func TestEffectiveTime(t *testing.T) {
	tests := []struct {
		name string
		item domain.FeedItem
		want time.Time
	}{
		{
			name: "iso date preferred",
			item: domain.FeedItem{ISODate: "2024-01-05T10:00:00Z", PubDate: "Tue, 02 Jan 2024 10:00:00 +0000"},
			want: time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "pubdate fallback",
			item: domain.FeedItem{PubDate: "Tue, 02 Jan 2024 10:00:00 +0000"},
			want: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "no usable date sorts last",
			item: domain.FeedItem{PubDate: "who knows"},
			want: time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(effectiveTime(tt.item)))
		})
	}
}
