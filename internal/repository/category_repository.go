package repository

// Tour category storage. Categories group tours on the marketing site and
// carry their own slug, description and image. The slug is unique; the
// auto-derivation from the category name happens in the handler layer on
// create only.

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

// Category mirrors the 'tour_categories' table.
type Category struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Image       *string   `json:"image,omitempty"`
	Enabled     bool      `json:"enabled"`
	CreatedAt   time.Time `json:"created_at"`
}

// ErrCategoryNotFound is returned when a category cannot be found.
var ErrCategoryNotFound = errors.New("category not found")

type CategoryRepo struct {
	db *sql.DB
}

func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

const categoryColumns = `id, name, slug, description, image, enabled, created_at`

func scanCategory(row interface{ Scan(...any) error }) (*Category, error) {
	c := new(Category)
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Image,
		&c.Enabled, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a category and populates ID and CreatedAt. A duplicate
// slug yields ErrConflict.
func (r *CategoryRepo) Create(ctx context.Context, c *Category) error {
	const q = `INSERT INTO tour_categories (name, slug, description, image, enabled)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, q,
		c.Name, c.Slug, c.Description, c.Image, c.Enabled,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// GetByID fetches a category regardless of the enabled flag.
func (r *CategoryRepo) GetByID(ctx context.Context, id uint64) (*Category, error) {
	c, err := scanCategory(r.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM tour_categories WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	return c, err
}

// Search returns categories ordered by name. The term matches name, slug
// and description case-insensitively.
func (r *CategoryRepo) Search(ctx context.Context, term string, enabled *bool) ([]*Category, error) {
	where := []string{}
	args := []any{}

	if s := strings.TrimSpace(term); s != "" {
		args = append(args, "%"+strings.ToLower(s)+"%")
		where = append(where, textMatch(len(args), "name", "slug", "description"))
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
		`SELECT `+categoryColumns+` FROM tour_categories WHERE `+condSQL+
			` ORDER BY name ASC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the editable fields of a category. The slug is written
// exactly as provided; re-derivation never happens on update.
func (r *CategoryRepo) Update(ctx context.Context, id uint64, c *Category) error {
	const q = `UPDATE tour_categories SET
		name = $1, slug = $2, description = $3, image = $4, enabled = $5
		WHERE id = $6`
	res, err := r.db.ExecContext(ctx, q,
		c.Name, c.Slug, c.Description, c.Image, c.Enabled, id)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCategoryNotFound
	}
	c.ID = id
	return nil
}

// Delete removes a category; a missing id returns ErrCategoryNotFound.
func (r *CategoryRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tour_categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// Count returns the number of categories for the dashboard.
func (r *CategoryRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tour_categories`).Scan(&n)
	return n, err
}
