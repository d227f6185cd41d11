package feed

import (
	"context"
	"log"
	"time"

	"newsmix/pkg/cache"
)

// FeedSource parses a feed URL into items, implemented by Parser
type FeedSource interface {
	Parse(ctx context.Context, url string) (*ParsedFeed, error)
}

// Fetcher retrieves feeds through a per-URL TTL cache with a stale-on-error
// policy: a fresh cache hit skips the network entirely; a failed refresh
// falls back to whatever was cached before, however old. Only a cold miss
// plus a failed fetch produces an empty feed. Upstream publishers are flaky
// enough that availability beats timeliness here.
type Fetcher struct {
	parser  FeedSource
	cache   *cache.Cache[*ParsedFeed]
	timeout time.Duration
}

// NewFetcher creates a fetcher around the given parser and cache
func NewFetcher(parser FeedSource, feedCache *cache.Cache[*ParsedFeed], timeout time.Duration) *Fetcher {
	return &Fetcher{parser: parser, cache: feedCache, timeout: timeout}
}

// Fetch returns the feed at url, from cache when fresh. Never returns an
// error: failures degrade to stale data or an empty feed.
func (f *Fetcher) Fetch(ctx context.Context, url string) *ParsedFeed {
	if cached, fresh, ok := f.cache.Get(url); ok && fresh {
		return cached
	}

	fetchCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	parsed, err := f.parser.Parse(fetchCtx, url)
	if err != nil {
		log.Printf("[WARN] feed fetch failed for %s: %v", url, err)
		if cached, _, ok := f.cache.Get(url); ok {
			log.Printf("[DEBUG] serving stale feed for %s", url)
			return cached
		}
		return &ParsedFeed{}
	}

	f.cache.Set(url, parsed)
	return parsed
}
