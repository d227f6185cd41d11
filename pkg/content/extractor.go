// Package content isolates the main article body from arbitrary publisher
// HTML. Extraction is best-effort: an ordered chain of heuristics is tried
// until one yields enough text, and failure is reported as ErrNoContent
// rather than returning boilerplate disguised as an article.
package content

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"

	"newsmix/pkg/cache"
	"newsmix/pkg/domain"
)

// ErrNoContent means no content block cleared the minimum length threshold;
// callers fall back to the original snippet or enrichment
var ErrNoContent = errors.New("no usable content extracted")

const (
	// selector tier accepts only substantial blocks; shorter candidates fall
	// through to the density scan
	selectorMinLen = 800
	// density scan ignores implausibly huge blocks (whole-page wrappers)
	densityMaxLen = 30000
	// minimum link-sparseness for a block to count as prose
	minDensity = 0.5

	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// candidateSelectors are common article containers, most specific first
var candidateSelectors = []string{
	"article",
	".article-content",
	".post-content",
	".entry-content",
	"main",
	"#main-content",
	".content",
	".story-content",
	".article__body-text",
}

// junkSelector removes chrome and boilerplate before any scoring happens
const junkSelector = "script, style, nav, footer, header, iframe, noscript, aside, form, .ads, #ads, .ad-container, .advertisement, .social-share, .newsletter-signup"

// Extractor fetches article pages and isolates their main content block
type Extractor struct {
	client     *http.Client
	cache      *cache.Cache[*domain.ScrapedArticle]
	minTextLen int
	userAgent  string
	policy     *bluemonday.Policy
}

// NewExtractor creates a content extractor. Results whose plain text reaches
// minTextLen are cached in scrapeCache; thin results are never cached so
// later calls retry.
func NewExtractor(timeout time.Duration, userAgent string, minTextLen int, scrapeCache *cache.Cache[*domain.ScrapedArticle]) *Extractor {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Extractor{
		client:     &http.Client{Timeout: timeout},
		cache:      scrapeCache,
		minTextLen: minTextLen,
		userAgent:  userAgent,
		policy:     bluemonday.UGCPolicy(),
	}
}

// Extract retrieves url and returns its main article content in HTML and
// plain-text form. Returns ErrNoContent when nothing usable can be isolated.
func (e *Extractor) Extract(ctx context.Context, urlStr string) (*domain.ScrapedArticle, error) {
	if cached, fresh, ok := e.cache.Get(urlStr); ok && fresh {
		return cached, nil
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid URL: %s", urlStr)
	}

	doc, err := e.fetch(ctx, urlStr)
	if err != nil {
		return nil, err
	}

	pageTitle := strings.TrimSpace(doc.Find("title").First().Text())

	// strip chrome before scoring so junk never wins
	doc.Find(junkSelector).Remove()

	// ordered fallback chain: each strategy either yields a candidate block
	// or passes to the next
	strategies := []func(*goquery.Document) *goquery.Selection{
		bestSelectorCandidate,
		bestDensityBlock,
		func(d *goquery.Document) *goquery.Selection { return d.Find("body").First() },
	}

	var block *goquery.Selection
	for _, pick := range strategies {
		if sel := pick(doc); sel != nil && sel.Length() > 0 {
			block = sel
			break
		}
	}
	if block == nil {
		return nil, ErrNoContent
	}

	cleanup(block, pageTitle)

	html, err := block.Html()
	if err != nil {
		return nil, fmt.Errorf("render content: %w", err)
	}

	text := flattenText(block.Text())
	if len(text) < e.minTextLen {
		return nil, ErrNoContent
	}

	result := &domain.ScrapedArticle{
		Title:       pageTitle,
		Content:     e.policy.Sanitize(html),
		TextContent: text,
		SiteName:    parsedURL.Host,
	}
	e.cache.Set(urlStr, result)
	return result, nil
}

// fetch retrieves and parses the page with a browser-like identity
func (e *Extractor) fetch(ctx context.Context, urlStr string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)
	addBrowserHeaders(req)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, urlStr)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}
	return doc, nil
}

// bestSelectorCandidate evaluates the known article-container selectors and
// returns the one holding the most text, if it is substantial enough
func bestSelectorCandidate(doc *goquery.Document) *goquery.Selection {
	var best *goquery.Selection
	bestLen := 0

	for _, selector := range candidateSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if l := len(strings.TrimSpace(sel.Text())); l > bestLen {
			bestLen = l
			best = sel
		}
	}

	if bestLen < selectorMinLen {
		return nil
	}
	return best
}

// bestDensityBlock scans generic block elements scoring by link density:
// (text - anchorText) / text. Large, link-sparse blocks win; menus and link
// farms score near zero.
func bestDensityBlock(doc *goquery.Document) *goquery.Selection {
	var best *goquery.Selection
	bestLen := 0

	doc.Find("div, section").Each(func(_ int, sel *goquery.Selection) {
		if sel.Is("nav, footer, header, aside") {
			return
		}
		text := strings.TrimSpace(sel.Text())
		if len(text) <= bestLen || len(text) >= densityMaxLen {
			return
		}
		anchorText := strings.TrimSpace(sel.Find("a").Text())
		density := float64(len(text)-len(anchorText)) / float64(len(text))
		if density > minDensity {
			bestLen = len(text)
			best = sel
		}
	})
	return best
}

// boilerplate labels removed verbatim wherever they appear as an element's
// whole text
var boilerplateLabels = map[string]bool{
	"share via": true,
	"copy link": true,
	"share":     true,
	"read more": true,
}

var boilerplateSubstrings = []string{"follow us on", "sign up for"}

// cleanup strips social prompts, title-duplicating headings and empty
// leftovers from the selected block in place
func cleanup(block *goquery.Selection, pageTitle string) {
	block.Find("div, span, p, button, a").Each(func(_ int, sel *goquery.Selection) {
		text := strings.ToLower(strings.TrimSpace(sel.Text()))
		if boilerplateLabels[text] {
			sel.Remove()
			return
		}
		for _, sub := range boilerplateSubstrings {
			if strings.Contains(text, sub) && len(text) < 100 {
				sel.Remove()
				return
			}
		}
	})

	block.Find("h1, h2, h3").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if len(text) < 3 || text == pageTitle || (pageTitle != "" && strings.Contains(pageTitle, text)) {
			sel.Remove()
		}
	})

	// drop elements left empty after the passes above
	block.Find("*").Each(func(_ int, sel *goquery.Selection) {
		if sel.Children().Length() == 0 && strings.TrimSpace(sel.Text()) == "" && !sel.Is("img, br, hr") {
			sel.Remove()
		}
	})
}

var spaceRe = regexp.MustCompile(`\s+`)

// flattenText collapses a block's text into single-spaced plain text
func flattenText(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
