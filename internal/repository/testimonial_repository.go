package repository

// Testimonial storage. Enabled testimonials feed the public carousel; the
// admin panel manages the full set.

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

// Testimonial mirrors the 'testimonials' table. Rating is an integer
// between 1 and 5; the bounds are enforced by the handlers before a row
// ever reaches this layer.
type Testimonial struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	Tour      *string   `json:"tour,omitempty"`
	Image     *string   `json:"image,omitempty"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrTestimonialNotFound is returned when a testimonial cannot be found.
var ErrTestimonialNotFound = errors.New("testimonial not found")

type TestimonialRepo struct {
	db *sql.DB
}

func NewTestimonialRepo(db *sql.DB) *TestimonialRepo {
	return &TestimonialRepo{db: db}
}

const testimonialColumns = `id, name, location, rating, text, tour, image, enabled, created_at`

func scanTestimonial(row interface{ Scan(...any) error }) (*Testimonial, error) {
	t := new(Testimonial)
	err := row.Scan(&t.ID, &t.Name, &t.Location, &t.Rating, &t.Text,
		&t.Tour, &t.Image, &t.Enabled, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Create inserts a testimonial and populates ID and CreatedAt.
func (r *TestimonialRepo) Create(ctx context.Context, t *Testimonial) error {
	const q = `INSERT INTO testimonials (name, location, rating, text, tour, image, enabled)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, q,
		t.Name, t.Location, t.Rating, t.Text, t.Tour, t.Image, t.Enabled,
	).Scan(&t.ID, &t.CreatedAt)
}

// GetByID fetches a testimonial regardless of the enabled flag.
func (r *TestimonialRepo) GetByID(ctx context.Context, id uint64) (*Testimonial, error) {
	t, err := scanTestimonial(r.db.QueryRowContext(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTestimonialNotFound
	}
	return t, err
}

// Search returns testimonials newest first. The term is matched
// case-insensitively against name, location, text and the optional tour
// label; enabled (when non-nil) filters on the visibility flag.
func (r *TestimonialRepo) Search(ctx context.Context, term string, enabled *bool) ([]*Testimonial, error) {
	where := []string{}
	args := []any{}

	if s := strings.TrimSpace(term); s != "" {
		args = append(args, "%"+strings.ToLower(s)+"%")
		where = append(where, textMatch(len(args),
			"name", "location", "text", "COALESCE(tour,'')"))
	}
	if enabled != nil {
		args = append(args, *enabled)
		where = append(where, cond("enabled = $%d", len(args)))
	}

	condSQL := "TRUE"
	if len(where) > 0 {
		condSQL = strings.Join(where, " AND ")
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE `+condSQL+
			` ORDER BY created_at DESC, id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*Testimonial{}
	for rows.Next() {
		t, err := scanTestimonial(rows)
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

// Update replaces the editable fields of a testimonial.
func (r *TestimonialRepo) Update(ctx context.Context, id uint64, t *Testimonial) error {
	const q = `UPDATE testimonials SET
		name = $1, location = $2, rating = $3, text = $4, tour = $5,
		image = $6, enabled = $7
		WHERE id = $8`
	res, err := r.db.ExecContext(ctx, q,
		t.Name, t.Location, t.Rating, t.Text, t.Tour, t.Image, t.Enabled, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTestimonialNotFound
	}
	t.ID = id
	return nil
}

// Delete removes a testimonial; a missing id returns ErrTestimonialNotFound.
func (r *TestimonialRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTestimonialNotFound
	}
	return nil
}

// Count returns the number of testimonials for the dashboard.
func (r *TestimonialRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM testimonials`).Scan(&n)
	return n, err
}
