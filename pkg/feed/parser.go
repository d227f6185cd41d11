package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"

	"newsmix/pkg/domain"
)

// Parser fetches and parses RSS/Atom/RDF feeds into normalized feed items
type Parser struct {
	client    *http.Client
	userAgent string
}

// ParsedFeed is the result of parsing one feed document
type ParsedFeed struct {
	Title       string
	Description string
	Link        string
	Items       []domain.FeedItem
}

// NewParser creates a new feed parser
func NewParser(timeout time.Duration, userAgent string) *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Parse fetches and parses a feed from the given URL. Individual malformed
// items degrade to best-effort values, they never fail the whole feed.
func (p *Parser) Parse(ctx context.Context, url string) (*ParsedFeed, error) {
	body, err := p.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	parser := gofeed.NewParser()
	feed, err := parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	result := &ParsedFeed{
		Title:       CoerceText(feed.Title),
		Description: CoerceText(feed.Description),
		Link:        CoerceText(feed.Link),
		Items:       make([]domain.FeedItem, 0, len(feed.Items)),
	}

	for _, item := range feed.Items {
		result.Items = append(result.Items, convertItem(item))
	}
	return result, nil
}

// convertItem maps a gofeed item to the normalized FeedItem shape
func convertItem(item *gofeed.Item) domain.FeedItem {
	fi := domain.FeedItem{
		Title:       CoerceText(item.Title),
		Link:        CoerceText(item.Link),
		PubDate:     CoerceText(item.Published),
		Description: CoerceText(item.Description),
		Content:     CoerceText(item.Content),
		Categories:  item.Categories,
		ImageURL:    ExtractImageURL(item),
	}

	if item.PublishedParsed != nil {
		fi.ISODate = item.PublishedParsed.UTC().Format(time.RFC3339)
	} else if item.UpdatedParsed != nil {
		fi.ISODate = item.UpdatedParsed.UTC().Format(time.RFC3339)
	}

	// snippet is the description with markup stripped
	if fi.Description != "" {
		fi.Snippet = PlainText(fi.Description)
	}

	if item.GUID != "" {
		fi.GUID = item.GUID
	} else {
		fi.GUID = fi.Link
	}
	return fi
}

// fetch retrieves content from a URL with browser-like headers
func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)
	addBrowserHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

var imgSrcRe = regexp.MustCompile(`<img[^>]+src=["']([^"'>]+)["']`)

// ExtractImageURL finds the best-effort image for a feed item. Publishers
// encode images half a dozen different ways; heuristics are tried in priority
// order and the first hit wins. Empty result means no image, callers supply
// the visual fallback.
func ExtractImageURL(item *gofeed.Item) string {
	// media:content attribute URL, single or repeated element
	if url := mediaExtensionURL(item, "content"); url != "" {
		return url
	}

	// enclosure URL
	for _, enc := range item.Enclosures {
		if enc != nil && enc.URL != "" {
			return enc.URL
		}
	}

	// media:thumbnail attribute URL
	if url := mediaExtensionURL(item, "thumbnail"); url != "" {
		return url
	}

	// itunes/atom image attached to the item; an extra tier beyond the media
	// namespace checks above, slotted before the content scans since it is an
	// explicit per-item declaration
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}

	// first <img src> inside content:encoded, then description
	if m := imgSrcRe.FindStringSubmatch(item.Content); len(m) > 1 {
		return m[1]
	}
	if m := imgSrcRe.FindStringSubmatch(item.Description); len(m) > 1 {
		return m[1]
	}

	// generic custom content fields some dialects leave behind
	for _, v := range item.Custom {
		if m := imgSrcRe.FindStringSubmatch(v); len(m) > 1 {
			return m[1]
		}
	}
	return ""
}

// mediaExtensionURL pulls the url attribute from a media-namespace extension
func mediaExtensionURL(item *gofeed.Item, name string) string {
	media, ok := item.Extensions["media"]
	if !ok {
		return ""
	}
	for _, e := range media[name] {
		if url := e.Attrs["url"]; url != "" {
			return url
		}
	}
	return ""
}

// CoerceText resolves the heterogeneous text shapes namespaced XML parsing
// produces: plain strings, text-node-with-attrs objects and one-element
// arrays of either. It is applied once at the ingestion boundary so
// downstream code only ever sees plain strings.
func CoerceText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case *string:
		if t == nil {
			return ""
		}
		return strings.TrimSpace(*t)
	case map[string]any:
		// rss-parser style wrapped text node {"_": "text", "$": {attrs}}
		for _, key := range []string{"_", "#text", "text"} {
			if inner, ok := t[key]; ok {
				return CoerceText(inner)
			}
		}
		return ""
	case []any:
		if len(t) > 0 {
			return CoerceText(t[0])
		}
		return ""
	case ext.Extension:
		return strings.TrimSpace(t.Value)
	case []ext.Extension:
		if len(t) > 0 {
			return strings.TrimSpace(t[0].Value)
		}
		return ""
	case fmt.Stringer:
		return strings.TrimSpace(t.String())
	default:
		return ""
	}
}

// entity replacer covers the entities feeds actually use in descriptions
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

var (
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// PlainText strips markup from an HTML-bearing field: removes tags, decodes
// the common entities and collapses whitespace runs to single spaces.
func PlainText(html string) string {
	if html == "" {
		return ""
	}
	text := tagRe.ReplaceAllString(html, " ")
	text = entityReplacer.Replace(text)
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}
