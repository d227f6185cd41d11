package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"newsmix/pkg/domain"
)

// SourceRepository handles dynamic source configuration storage
type SourceRepository struct {
	db *sqlx.DB
}

// sourceSQL represents a source row for SQL operations
type sourceSQL struct {
	ID        int64     `db:"id"`
	Country   string    `db:"country"`
	Category  string    `db:"category"`
	Name      string    `db:"name"`
	URL       string    `db:"url"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
}

// NewSourceRepository creates a new source repository
func NewSourceRepository(database *sqlx.DB) *SourceRepository {
	return &SourceRepository{db: database}
}

// DB exposes the underlying connection, used for cleanup in tests and main
func (r *SourceRepository) DB() *sqlx.DB { return r.db }

// Close closes the underlying database connection
func (r *SourceRepository) Close() error { return r.db.Close() }

// ActiveSources returns active sources for a country/category pair
func (r *SourceRepository) ActiveSources(ctx context.Context, country, category string) ([]domain.Source, error) {
	var rows []sourceSQL
	query := `SELECT * FROM sources WHERE country = ? AND category = ? AND active = 1 ORDER BY name`
	if err := r.db.SelectContext(ctx, &rows, query, country, category); err != nil {
		return nil, fmt.Errorf("query active sources: %w", err)
	}
	return toDomainSources(rows), nil
}

// ListSources returns all sources, optionally filtered by country
func (r *SourceRepository) ListSources(ctx context.Context, country string) ([]domain.Source, error) {
	var rows []sourceSQL
	var err error
	if country == "" {
		err = r.db.SelectContext(ctx, &rows, "SELECT * FROM sources ORDER BY country, category, name")
	} else {
		err = r.db.SelectContext(ctx, &rows, "SELECT * FROM sources WHERE country = ? ORDER BY category, name", country)
	}
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	return toDomainSources(rows), nil
}

// CreateSource inserts a new source, setting its ID on success
func (r *SourceRepository) CreateSource(ctx context.Context, src *domain.Source) error {
	row := sourceSQL{
		Country:  src.Country,
		Category: src.Category,
		Name:     src.Name,
		URL:      src.URL,
		Active:   src.Active,
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		query := `INSERT INTO sources (country, category, name, url, active)
			VALUES (:country, :category, :name, :url, :active)`
		result, err := r.db.NamedExecContext(ctx, query, row)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("create source: %w", err)}
		}
		id, err := result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get insert id: %w", err)}
		}
		src.ID = id
		return nil
	})
}

// DeleteSource removes a source by ID
func (r *SourceRepository) DeleteSource(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM sources WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete source: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("source %d not found", id)
	}
	return nil
}

// SetSourceActive toggles a source's active flag
func (r *SourceRepository) SetSourceActive(ctx context.Context, id int64, active bool) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		result, err := r.db.ExecContext(ctx, "UPDATE sources SET active = ? WHERE id = ?", active, id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("set source active: %w", err)}
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("rows affected: %w", err)}
		}
		if affected == 0 {
			return &criticalError{err: fmt.Errorf("source %d not found", id)}
		}
		return nil
	})
}

func toDomainSources(rows []sourceSQL) []domain.Source {
	out := make([]domain.Source, len(rows))
	for i, row := range rows {
		out[i] = domain.Source{
			ID:        row.ID,
			Country:   row.Country,
			Category:  row.Category,
			Name:      row.Name,
			URL:       row.URL,
			Active:    row.Active,
			CreatedAt: row.CreatedAt,
		}
	}
	return out
}
