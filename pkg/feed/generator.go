package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"newsmix/pkg/domain"
)

// Generator re-publishes aggregated articles as an RSS 2.0 feed, so the
// merged multi-source result can itself be consumed by feed readers
type Generator struct {
	baseURL string
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{baseURL: strings.TrimRight(baseURL, "/")}
}

// GenerateRSS creates an RSS 2.0 document from aggregated articles
func (g *Generator) GenerateRSS(articles []domain.Article, country, category string) (string, error) {
	title := fmt.Sprintf("Newsmix - %s / %s", country, category)
	selfLink := fmt.Sprintf("%s/rss/%s?country=%s", g.baseURL, category, country)

	rssItems := make([]*RSSItem, 0, len(articles))
	for _, a := range articles {
		item := &RSSItem{
			Title:       a.Title,
			Link:        a.Link,
			GUID:        a.Link,
			Description: a.Description,
			Category:    a.Category,
			Source:      a.SourceName,
			PubDate:     a.PubDate,
		}
		if a.ImageURL != "" {
			item.Enclosure = &RSSEnclosure{URL: a.ImageURL, Type: "image/jpeg"}
		}
		rssItems = append(rssItems, item)
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         title,
			Link:          g.baseURL + "/",
			Description:   fmt.Sprintf("Aggregated %s headlines for %s", category, country),
			AtomLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}
