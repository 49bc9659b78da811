// Package repository contains data access logic separated from HTTP handlers.
// This file defines the Tour model and repository methods for CRUD, search
// and lookup operations. A Tour is the agency's core product: a packaged
// trip with pricing, an itinerary summary and a category. Public pages only
// ever see tours with the enabled flag set.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to define custom error values
	"strings"
	"time"

	"github.com/lib/pq"
)

// Tour represents a tour entity persisted in the database. The ID field is
// the primary key and is assigned by the database. Slug is unique across
// tours and is the public URL identifier. Highlights is stored as a
// Postgres text[] column.
type Tour struct {
	ID            uint64    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Location      string    `json:"location"`
	Duration      string    `json:"duration"`
	GroupSize     string    `json:"group_size"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"original_price,omitempty"`
	Image         *string   `json:"image,omitempty"`
	CategoryID    *uint64   `json:"category_id,omitempty"`
	Category      string    `json:"category"`
	Rating        float64   `json:"rating"`
	Reviews       int       `json:"reviews"`
	Highlights    []string  `json:"highlights"`
	Description   *string   `json:"description,omitempty"`
	TourType      string    `json:"tour_type"` // fixed-departure | customized
	Enabled       bool      `json:"enabled"`
	Featured      bool      `json:"featured"`
	Views         int       `json:"views"`
	CreatedAt     time.Time `json:"created_at"`
}

// ErrTourNotFound is returned when a tour cannot be found in the DB.
var ErrTourNotFound = errors.New("tour not found")

// TourQuery defines the optional filters applied when listing tours in the
// admin panel. Q is matched case-insensitively against title, location and
// description. Category filters by category id, TourType by the tour_type
// column and Enabled (when non-nil) by the enabled flag.
type TourQuery struct {
	Q        string
	Category uint64
	TourType string
	Enabled  *bool
	Featured *bool
}

// TourRepo encapsulates all database queries related to tours. It depends
// on a sql.DB connection which should be configured elsewhere.
type TourRepo struct {
	db *sql.DB
}

// NewTourRepo constructs a TourRepo with the provided DB handle. This
// function allows dependency injection of the database in tests and at
// startup.
func NewTourRepo(db *sql.DB) *TourRepo {
	return &TourRepo{db: db}
}

const tourColumns = `id, title, slug, location, duration, group_size, price,
	original_price, image, category_id, category, rating, reviews, highlights,
	description, tour_type, enabled, featured, views, created_at`

func scanTour(row interface{ Scan(...any) error }) (*Tour, error) {
	t := new(Tour)
	err := row.Scan(&t.ID, &t.Title, &t.Slug, &t.Location, &t.Duration,
		&t.GroupSize, &t.Price, &t.OriginalPrice, &t.Image, &t.CategoryID,
		&t.Category, &t.Rating, &t.Reviews, pq.Array(&t.Highlights),
		&t.Description, &t.TourType, &t.Enabled, &t.Featured, &t.Views,
		&t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Create inserts a new tour. On success the ID, Views and CreatedAt fields
// are populated from the database so that callers receive a fully populated
// record. A duplicate slug yields ErrConflict.
func (r *TourRepo) Create(ctx context.Context, t *Tour) error {
	const q = `INSERT INTO tours
		(title, slug, location, duration, group_size, price, original_price,
		 image, category_id, category, rating, reviews, highlights,
		 description, tour_type, enabled, featured)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		RETURNING id, views, created_at`
	err := r.db.QueryRowContext(ctx, q,
		t.Title, t.Slug, t.Location, t.Duration, t.GroupSize, t.Price,
		t.OriginalPrice, t.Image, t.CategoryID, t.Category, t.Rating,
		t.Reviews, pq.Array(t.Highlights), t.Description, t.TourType,
		t.Enabled, t.Featured,
	).Scan(&t.ID, &t.Views, &t.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// GetByID fetches a tour by its ID regardless of the enabled flag. It
// returns ErrTourNotFound if no row is found.
func (r *TourRepo) GetByID(ctx context.Context, id uint64) (*Tour, error) {
	t, err := scanTour(r.db.QueryRowContext(ctx,
		`SELECT `+tourColumns+` FROM tours WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTourNotFound
	}
	return t, err
}

// GetBySlug fetches an enabled tour by its slug for the public detail page.
// Disabled tours are treated as absent so that unpublishing a tour removes
// it from the site immediately.
func (r *TourRepo) GetBySlug(ctx context.Context, slug string) (*Tour, error) {
	t, err := scanTour(r.db.QueryRowContext(ctx,
		`SELECT `+tourColumns+` FROM tours WHERE slug = $1 AND enabled = TRUE`, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTourNotFound
	}
	return t, err
}

// Search returns tours matching the query, newest first. An empty TourQuery
// returns every tour. A query matching nothing returns an empty slice, not
// an error.
func (r *TourRepo) Search(ctx context.Context, q TourQuery) ([]*Tour, error) {
	where := []string{}
	args := []any{}

	if s := strings.TrimSpace(q.Q); s != "" {
		args = append(args, "%"+strings.ToLower(s)+"%")
		where = append(where, textMatch(len(args),
			"title", "location", "COALESCE(description,'')"))
	}
	if q.Category != 0 {
		args = append(args, q.Category)
		where = append(where, cond("category_id = $%d", len(args)))
	}
	if q.TourType != "" {
		args = append(args, q.TourType)
		where = append(where, cond("tour_type = $%d", len(args)))
	}
	if q.Enabled != nil {
		args = append(args, *q.Enabled)
		where = append(where, cond("enabled = $%d", len(args)))
	}
	if q.Featured != nil {
		args = append(args, *q.Featured)
		where = append(where, cond("featured = $%d", len(args)))
	}

	cond := "TRUE"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+tourColumns+` FROM tours WHERE `+cond+` ORDER BY created_at DESC, id DESC`,
		args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*Tour{}
	for rows.Next() {
		t, err := scanTour(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the editable fields of a tour. It returns ErrTourNotFound
// when no row is affected and ErrConflict on a duplicate slug.
func (r *TourRepo) Update(ctx context.Context, id uint64, t *Tour) error {
	const q = `UPDATE tours SET
		title = $1, slug = $2, location = $3, duration = $4, group_size = $5,
		price = $6, original_price = $7, image = $8, category_id = $9,
		category = $10, rating = $11, reviews = $12, highlights = $13,
		description = $14, tour_type = $15, enabled = $16, featured = $17
		WHERE id = $18`
	res, err := r.db.ExecContext(ctx, q,
		t.Title, t.Slug, t.Location, t.Duration, t.GroupSize, t.Price,
		t.OriginalPrice, t.Image, t.CategoryID, t.Category, t.Rating,
		t.Reviews, pq.Array(t.Highlights), t.Description, t.TourType,
		t.Enabled, t.Featured, id)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTourNotFound
	}
	t.ID = id
	return nil
}

// Delete removes a tour. Deleting an id that does not exist returns
// ErrTourNotFound rather than succeeding silently.
func (r *TourRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tours WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTourNotFound
	}
	return nil
}

// IncrementViews bumps the view counter for a tour. Used by the public
// detail page; failures are non-fatal for the caller.
func (r *TourRepo) IncrementViews(ctx context.Context, id uint64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tours SET views = views + 1 WHERE id = $1`, id)
	return err
}

// Count returns the number of tours, used by the dashboard. No row payload
// is fetched.
func (r *TourRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tours`).Scan(&n)
	return n, err
}
