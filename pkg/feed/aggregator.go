package feed

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/araddon/dateparse"
	"golang.org/x/sync/errgroup"

	"newsmix/pkg/domain"
)

// SourceResolver determines the feed sources for a country/category pair
type SourceResolver interface {
	Resolve(ctx context.Context, country, category string) []domain.Source
}

// FeedFetcher retrieves one feed URL, degrading failures to empty feeds
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) *ParsedFeed
}

// Aggregator combines many independent feed sources into one ordered article
// list per category. Individual source failures contribute nothing; they
// never abort the rest.
type Aggregator struct {
	resolver SourceResolver
	fetcher  FeedFetcher
}

// NewAggregator creates an aggregator over the given resolver and fetcher
func NewAggregator(resolver SourceResolver, fetcher FeedFetcher) *Aggregator {
	return &Aggregator{resolver: resolver, fetcher: fetcher}
}

// Category fetches all sources for a country/category concurrently, merges
// their items and returns them as articles sorted by descending publication
// time. Zero configured sources is a valid empty state, not an error.
func (a *Aggregator) Category(ctx context.Context, country, category string) []domain.Article {
	sources := a.resolver.Resolve(ctx, country, category)
	if len(sources) == 0 {
		log.Printf("[INFO] no sources for %s/%s", country, category)
		return []domain.Article{}
	}

	// fan out, keeping results indexed by source so merge order is
	// deterministic regardless of completion order
	feeds := make([]*ParsedFeed, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			feeds[i] = a.fetcher.Fetch(gctx, src.URL)
			return nil
		})
	}
	_ = g.Wait() // fetcher never errors

	merged := make([]domain.FeedItem, 0)
	sourceName := ""
	for i, f := range feeds {
		if f == nil || len(f.Items) == 0 {
			continue
		}
		merged = append(merged, f.Items...)
		if sourceName == "" {
			if f.Title != "" {
				sourceName = f.Title
			} else {
				sourceName = sources[i].Name
			}
		}
	}

	// newest first; ties keep source order
	sort.SliceStable(merged, func(i, j int) bool {
		return effectiveTime(merged[i]).After(effectiveTime(merged[j]))
	})

	return Normalize(merged, sourceName)
}

// Categories runs Category for each requested category independently and
// concurrently; one category failing or coming up empty never blocks others.
func (a *Aggregator) Categories(ctx context.Context, country string, categories []string) map[string][]domain.Article {
	results := make([][]domain.Article, len(categories))
	g, gctx := errgroup.WithContext(ctx)
	for i, cat := range categories {
		g.Go(func() error {
			results[i] = a.Category(gctx, country, cat)
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string][]domain.Article, len(categories))
	for i, cat := range categories {
		out[cat] = results[i]
	}
	return out
}

// effectiveTime picks the machine-parseable date when present and falls back
// to parsing the raw pubDate string. Items without a usable date sort to the
// oldest position.
func effectiveTime(item domain.FeedItem) time.Time {
	if item.ISODate != "" {
		if t, err := time.Parse(time.RFC3339, item.ISODate); err == nil {
			return t
		}
	}
	if item.PubDate != "" {
		if t, err := dateparse.ParseAny(item.PubDate); err == nil {
			return t
		}
	}
	return time.Time{} // epoch zero, sorts last
}
