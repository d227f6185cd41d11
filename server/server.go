package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"newsmix/pkg/domain"
	"newsmix/pkg/feed"
)

//go:generate moq -out mocks/aggregator.go -pkg mocks -skip-ensure -fmt goimports . Aggregator
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/expander.go -pkg mocks -skip-ensure -fmt goimports . Expander
//go:generate moq -out mocks/source_store.go -pkg mocks -skip-ensure -fmt goimports . SourceStore
//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	news      Aggregator
	extractor Extractor
	expander  Expander
	sources   SourceStore
	generator *feed.Generator
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Aggregator provides merged multi-source article lists
type Aggregator interface {
	Category(ctx context.Context, country, category string) []domain.Article
	Categories(ctx context.Context, country string, categories []string) map[string][]domain.Article
}

// Extractor isolates full article content from a source URL
type Extractor interface {
	Extract(ctx context.Context, url string) (*domain.ScrapedArticle, error)
}

// Expander produces AI-expanded content for thin snippets
type Expander interface {
	Expand(ctx context.Context, title, snippet, category string) string
}

// SourceStore manages the dynamic source configuration
type SourceStore interface {
	ListSources(ctx context.Context, country string) ([]domain.Source, error)
	CreateSource(ctx context.Context, src *domain.Source) error
	DeleteSource(ctx context.Context, id int64) error
	SetSourceActive(ctx context.Context, id int64, active bool) error
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, news Aggregator, extractor Extractor, expander Expander, sources SourceStore, generator *feed.Generator, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		news:      news,
		extractor: extractor,
		expander:  expander,
		sources:   sources,
		generator: generator,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newsmix", "newsmix", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /countries", s.countriesHandler)
		r.HandleFunc("GET /news", s.newsMultiHandler)
		r.HandleFunc("GET /news/{category}", s.newsCategoryHandler)
		r.HandleFunc("GET /search", s.searchHandler)
		r.HandleFunc("GET /article", s.articleHandler)
		r.HandleFunc("GET /sources", s.listSourcesHandler)
		r.HandleFunc("POST /sources", s.createSourceHandler)
		r.HandleFunc("DELETE /sources/{id}", s.deleteSourceHandler)
		r.HandleFunc("PUT /sources/{id}/active", s.sourceActiveHandler)
	})

	// aggregated categories re-published as RSS
	s.router.HandleFunc("GET /rss/{category}", s.rssHandler)
}
