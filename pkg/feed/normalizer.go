package feed

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"newsmix/pkg/domain"
)

const wordsPerMinute = 200

// Normalize converts parsed feed items into canonical articles. No I/O;
// relative publication dates are rendered against the wall clock at call
// time, so two calls may disagree by a minute while everything else stays
// identical (normalizeAt pins the clock for repeatable output). sourceName
// is attached when the item itself carries no better attribution.
func Normalize(items []domain.FeedItem, sourceName string) []domain.Article {
	return normalizeAt(items, sourceName, time.Now())
}

// normalizeAt is the clock-injected form used by tests
func normalizeAt(items []domain.FeedItem, sourceName string, now time.Time) []domain.Article {
	articles := make([]domain.Article, 0, len(items))
	for _, item := range items {
		desc := item.Description
		if desc == "" {
			desc = item.Snippet
		}
		plain := PlainText(desc)

		rawDate := item.PubDate
		if rawDate == "" {
			rawDate = item.ISODate
		}

		articles = append(articles, domain.Article{
			Title:       item.Title,
			Link:        item.Link,
			PubDate:     formatDate(rawDate, now),
			Description: plain,
			ImageURL:    item.ImageURL,
			Category:    firstCategory(item.Categories),
			ReadTime:    readTime(plain),
			SourceName:  sourceName,
		})
	}
	return articles
}

// readTime estimates reading time at 200 words per minute, minimum one minute
func readTime(text string) string {
	words := len(strings.Fields(text))
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d Min", minutes)
}

// formatDate renders a publication date relative for recent items and as a
// long calendar date otherwise. Unparseable input passes through unchanged.
func formatDate(raw string, now time.Time) string {
	if raw == "" {
		return ""
	}
	parsed, err := dateparse.ParseAny(raw)
	if err != nil {
		return raw
	}

	diff := now.Sub(parsed)
	switch {
	case diff < time.Hour:
		minutes := int(diff.Minutes())
		if minutes < 0 {
			minutes = 0
		}
		return fmt.Sprintf("%d minutes ago", minutes)
	case diff < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(diff.Hours()))
	default:
		return parsed.Format("January 2, 2006")
	}
}

func firstCategory(categories []string) string {
	for _, c := range categories {
		if trimmed := strings.TrimSpace(c); trimmed != "" {
			return trimmed
		}
	}
	return "News"
}
