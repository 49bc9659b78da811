package repository

// Website content storage. Non-list page sections (about, settings, hero)
// are each stored as a single jsonb blob keyed by section name. Reads and
// writes always move the whole blob; there are no partial-field updates at
// this layer, and a save unconditionally overwrites whatever was stored
// before (last write wins, no version check).

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// ContentSection mirrors one row of the 'website_content' table. Content
// is raw JSON whose shape depends on the section.
type ContentSection struct {
	Section   string          `json:"section"`
	Content   json.RawMessage `json:"content"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ErrSectionNotFound is returned when no blob has been saved for a section
// yet. Callers treat this as a normal first-use condition, not a failure.
var ErrSectionNotFound = errors.New("content section not found")

type ContentRepo struct {
	db *sql.DB
}

func NewContentRepo(db *sql.DB) *ContentRepo {
	return &ContentRepo{db: db}
}

// Get fetches the blob for a section key.
func (r *ContentRepo) Get(ctx context.Context, section string) (*ContentSection, error) {
	s := &ContentSection{Section: section}
	err := r.db.QueryRowContext(ctx,
		`SELECT content, updated_at FROM website_content WHERE section = $1`,
		section).Scan(&s.Content, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSectionNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Upsert writes the whole blob for a section, inserting the row on first
// save and overwriting it afterwards. The returned UpdatedAt reflects the
// write that just happened.
func (r *ContentRepo) Upsert(ctx context.Context, section string, content json.RawMessage) (*ContentSection, error) {
	s := &ContentSection{Section: section, Content: content}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO website_content (section, content, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (section) DO UPDATE
		 SET content = EXCLUDED.content, updated_at = NOW()
		 RETURNING updated_at`,
		section, content).Scan(&s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Count returns the number of saved sections, used by the dashboard.
func (r *ContentRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM website_content`).Scan(&n)
	return n, err
}
