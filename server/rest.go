package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"newsmix/pkg/domain"
	"newsmix/pkg/feed"
	"newsmix/pkg/sources"
)

// defaultCountry is used when a request carries no country parameter
const defaultCountry = "INDIA"

// searchCategories is the fixed set of categories scanned by search requests
var searchCategories = []string{"news", "world", "business", "technology", "sports"}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// countriesHandler lists the configured countries for the country selector
func (s *Server) countriesHandler(w http.ResponseWriter, r *http.Request) {
	type countryInfo struct {
		Code string `json:"code"`
		Name string `json:"name"`
	}
	all := sources.Countries()
	out := make([]countryInfo, 0, len(all))
	for _, c := range all {
		out = append(out, countryInfo{Code: c.Code, Name: c.Name})
	}
	renderJSON(w, r, http.StatusOK, out)
}

// newsCategoryHandler returns the merged article list for one category
func (s *Server) newsCategoryHandler(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	country := countryParam(r)

	articles := s.news.Category(r.Context(), country, category)
	renderJSON(w, r, http.StatusOK, articles)
}

// newsMultiHandler returns articles for several categories at once, keyed by
// category name
func (s *Server) newsMultiHandler(w http.ResponseWriter, r *http.Request) {
	country := countryParam(r)

	categories := []string{"homepage"}
	if raw := r.URL.Query().Get("categories"); raw != "" {
		categories = categories[:0]
		for _, c := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(c); trimmed != "" {
				categories = append(categories, trimmed)
			}
		}
	}
	if len(categories) == 0 {
		renderError(w, r, fmt.Errorf("no categories requested"), http.StatusBadRequest)
		return
	}

	result := s.news.Categories(r.Context(), country, categories)
	renderJSON(w, r, http.StatusOK, result)
}

// articleHandler returns full article content for a source URL: extraction
// first, AI expansion of the provided snippet when extraction comes up thin,
// 404 when neither produces anything usable
func (s *Server) articleHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	srcURL := q.Get("url")
	if srcURL == "" {
		renderError(w, r, fmt.Errorf("url parameter is required"), http.StatusBadRequest)
		return
	}

	article, err := s.extractor.Extract(ctx, srcURL)
	if err == nil {
		renderJSON(w, r, http.StatusOK, article)
		return
	}
	log.Printf("[DEBUG] extraction failed for %s: %v", srcURL, err)

	title, snippet := q.Get("title"), q.Get("snippet")
	if s.expander != nil && snippet != "" {
		if content := s.expander.Expand(ctx, title, snippet, q.Get("category")); content != "" {
			renderJSON(w, r, http.StatusOK, &domain.ScrapedArticle{
				Title:       title,
				Content:     content,
				TextContent: feed.PlainText(content),
			})
			return
		}
	}

	renderError(w, r, fmt.Errorf("no content available for %s", srcURL), http.StatusNotFound)
}

// searchHandler filters articles across the main categories by a
// case-insensitive substring match on title or description. Overlapping
// category feeds surface the same story more than once, so results are
// collapsed by literal title.
func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		renderError(w, r, fmt.Errorf("search query is required"), http.StatusBadRequest)
		return
	}

	country := r.URL.Query().Get("country")
	if country == "" {
		country = "UNITED_STATES"
	}
	country = sources.NormalizeCountry(country)

	byCategory := s.news.Categories(r.Context(), country, searchCategories)

	needle := strings.ToLower(query)
	seen := make(map[string]struct{})
	matched := []domain.Article{}
	for _, cat := range searchCategories {
		for _, art := range byCategory[cat] {
			if !strings.Contains(strings.ToLower(art.Title), needle) &&
				!strings.Contains(strings.ToLower(art.Description), needle) {
				continue
			}
			if _, dup := seen[art.Title]; dup {
				continue
			}
			seen[art.Title] = struct{}{}
			matched = append(matched, art)
		}
	}

	renderJSON(w, r, http.StatusOK, matched)
}

// listSourcesHandler returns dynamic sources, optionally filtered by country
func (s *Server) listSourcesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := s.sources.ListSources(r.Context(), r.URL.Query().Get("country"))
	if err != nil {
		log.Printf("[ERROR] failed to list sources: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, list)
}

// createSourceHandler adds a dynamic source
func (s *Server) createSourceHandler(w http.ResponseWriter, r *http.Request) {
	var src domain.Source
	if err := json.NewDecoder(r.Body).Decode(&src); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if src.Country == "" || src.Category == "" || src.Name == "" || src.URL == "" {
		renderError(w, r, fmt.Errorf("country, category, name and url are required"), http.StatusBadRequest)
		return
	}
	src.Country = sources.NormalizeCountry(src.Country)

	if err := s.sources.CreateSource(r.Context(), &src); err != nil {
		log.Printf("[ERROR] failed to create source: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, src)
}

// deleteSourceHandler removes a dynamic source
func (s *Server) deleteSourceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid source ID"), http.StatusBadRequest)
		return
	}
	if err := s.sources.DeleteSource(r.Context(), id); err != nil {
		renderError(w, r, err, http.StatusNotFound)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// sourceActiveHandler toggles a source's active flag
func (s *Server) sourceActiveHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid source ID"), http.StatusBadRequest)
		return
	}

	var body struct {
		Active bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if err := s.sources.SetSourceActive(r.Context(), id, body.Active); err != nil {
		renderError(w, r, err, http.StatusNotFound)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "updated"})
}

// rssHandler re-publishes a merged category as an RSS 2.0 feed
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	country := countryParam(r)

	articles := s.news.Category(r.Context(), country, category)
	rss, err := s.generator.GenerateRSS(articles, country, category)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] can't write RSS response: %v", err)
	}
}

// countryParam reads the country query parameter, normalizing ISO aliases
func countryParam(r *http.Request) string {
	country := r.URL.Query().Get("country")
	if country == "" {
		country = defaultCountry
	}
	return sources.NormalizeCountry(country)
}

// renderJSON sends data as JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
