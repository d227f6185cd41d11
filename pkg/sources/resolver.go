package sources

import (
	"context"
	"log"

	"newsmix/pkg/domain"
)

// Store queries the dynamic source configuration, implemented by the
// repository layer
type Store interface {
	ActiveSources(ctx context.Context, country, category string) ([]domain.Source, error)
}

// Resolver determines the feed sources for a country/category pair. Dynamic
// store entries win when any match; the static table covers everything else.
// Resolution never hard-fails: a broken store degrades to static data,
// an unknown country to an empty list.
type Resolver struct {
	store Store // optional, nil means static only
}

// NewResolver creates a resolver backed by the given store; pass nil to
// resolve from the static table only
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the sources to query for country/category
func (r *Resolver) Resolve(ctx context.Context, country, category string) []domain.Source {
	country = NormalizeCountry(country)

	if r.store != nil {
		dynamic, err := r.store.ActiveSources(ctx, country, category)
		switch {
		case err != nil:
			log.Printf("[WARN] source store query failed for %s/%s, using static table: %v", country, category, err)
		case len(dynamic) > 0:
			return dynamic
		}
	}

	return StaticSources(country, category)
}
