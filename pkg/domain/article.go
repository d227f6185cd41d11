package domain

import "time"

// FeedItem represents a single entry from a parsed feed, with field names
// normalized across RSS/Atom/RDF dialects. All text fields are already
// coerced to plain strings; HTML may still be present in Description and
// Content.
type FeedItem struct {
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	PubDate     string   `json:"pubDate"`
	Description string   `json:"description"`
	Content     string   `json:"content,omitempty"`
	Snippet     string   `json:"contentSnippet,omitempty"`
	GUID        string   `json:"guid,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	ISODate     string   `json:"isoDate,omitempty"`
	ImageURL    string   `json:"image,omitempty"`
}

// Article is the canonical UI-ready representation of a feed item. Articles
// are built per request and never persisted.
type Article struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	PubDate     string `json:"pubDate"`
	Description string `json:"description"`
	ImageURL    string `json:"image,omitempty"`
	Category    string `json:"category"`
	ReadTime    string `json:"readTime"`
	SourceName  string `json:"sourceName,omitempty"`
}

// ScrapedArticle holds the main content block isolated from an article page.
type ScrapedArticle struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	TextContent string `json:"textContent"`
	Excerpt     string `json:"excerpt,omitempty"`
	Byline      string `json:"byline,omitempty"`
	SiteName    string `json:"siteName,omitempty"`
}

// Source is a single feed endpoint: a provider name plus the URL of one of
// its per-category feeds.
type Source struct {
	ID       int64  `json:"id,omitempty"`
	Country  string `json:"country"`
	Category string `json:"category"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Active   bool   `json:"active"`

	CreatedAt time.Time `json:"created_at,omitempty"`
}
