package repository

// Blog post storage. Posts are authored in the admin panel and served on
// the public blog when enabled. Content holds the rendered rich-text body
// as an HTML string; the API never interprets it.

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

// BlogPost mirrors the 'blog_posts' table.
type BlogPost struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Image       *string   `json:"image,omitempty"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"published_at"`
	Enabled     bool      `json:"enabled"`
	Category    *string   `json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ErrBlogPostNotFound is returned when a post cannot be found in the DB.
var ErrBlogPostNotFound = errors.New("blog post not found")

type BlogPostRepo struct {
	db *sql.DB
}

func NewBlogPostRepo(db *sql.DB) *BlogPostRepo {
	return &BlogPostRepo{db: db}
}

const blogColumns = `id, title, slug, excerpt, content, image, author,
	published_at, enabled, category, created_at, updated_at`

func scanBlogPost(row interface{ Scan(...any) error }) (*BlogPost, error) {
	p := new(BlogPost)
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content,
		&p.Image, &p.Author, &p.PublishedAt, &p.Enabled, &p.Category,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a new post and populates ID and timestamps from the
// database. A duplicate slug yields ErrConflict.
func (r *BlogPostRepo) Create(ctx context.Context, p *BlogPost) error {
	const q = `INSERT INTO blog_posts
		(title, slug, excerpt, content, image, author, published_at, enabled, category)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, q,
		p.Title, p.Slug, p.Excerpt, p.Content, p.Image, p.Author,
		p.PublishedAt, p.Enabled, p.Category,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// GetByID fetches a post regardless of the enabled flag (admin view).
func (r *BlogPostRepo) GetByID(ctx context.Context, id uint64) (*BlogPost, error) {
	p, err := scanBlogPost(r.db.QueryRowContext(ctx,
		`SELECT `+blogColumns+` FROM blog_posts WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlogPostNotFound
	}
	return p, err
}

// GetBySlug fetches an enabled post by slug for the public blog page.
func (r *BlogPostRepo) GetBySlug(ctx context.Context, slug string) (*BlogPost, error) {
	p, err := scanBlogPost(r.db.QueryRowContext(ctx,
		`SELECT `+blogColumns+` FROM blog_posts WHERE slug = $1 AND enabled = TRUE`, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlogPostNotFound
	}
	return p, err
}

// Search returns posts newest first, filtered by an optional
// case-insensitive term over title, excerpt and author, and optionally by
// the enabled flag.
func (r *BlogPostRepo) Search(ctx context.Context, term string, enabled *bool) ([]*BlogPost, error) {
	where := []string{}
	args := []any{}

	if s := strings.TrimSpace(term); s != "" {
		args = append(args, "%"+strings.ToLower(s)+"%")
		where = append(where, textMatch(len(args), "title", "excerpt", "author"))
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
		`SELECT `+blogColumns+` FROM blog_posts WHERE `+condSQL+
			` ORDER BY published_at DESC, id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*BlogPost{}
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the editable fields of a post and refreshes updated_at.
func (r *BlogPostRepo) Update(ctx context.Context, id uint64, p *BlogPost) error {
	const q = `UPDATE blog_posts SET
		title = $1, slug = $2, excerpt = $3, content = $4, image = $5,
		author = $6, published_at = $7, enabled = $8, category = $9,
		updated_at = NOW()
		WHERE id = $10`
	res, err := r.db.ExecContext(ctx, q,
		p.Title, p.Slug, p.Excerpt, p.Content, p.Image, p.Author,
		p.PublishedAt, p.Enabled, p.Category, id)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBlogPostNotFound
	}
	p.ID = id
	return nil
}

// Delete removes a post; a missing id returns ErrBlogPostNotFound.
func (r *BlogPostRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBlogPostNotFound
	}
	return nil
}

// Count returns the number of posts for the dashboard.
func (r *BlogPostRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blog_posts`).Scan(&n)
	return n, err
}
