package repository

// Inquiry storage. Inquiries are created by the public contact form
// (unauthenticated write) and worked through by staff, who move them
// between statuses and attach notes. Rows are only ever removed by an
// explicit admin delete.

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

// Inquiry mirrors the 'inquiries' table. Only Name, Email and Status are
// guaranteed; everything else depends on which form the visitor filled in.
type Inquiry struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	Message     *string   `json:"message,omitempty"`
	TourName    *string   `json:"tour_name,omitempty"`
	TourType    *string   `json:"tour_type,omitempty"`
	Destination *string   `json:"destination,omitempty"`
	TravelDates *string   `json:"travel_dates,omitempty"`
	GroupSize   *string   `json:"group_size,omitempty"`
	Budget      *string   `json:"budget,omitempty"`
	Status      string    `json:"status"` // new | contacted | booked | closed
	Notes       *string   `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ErrInquiryNotFound is returned when an inquiry cannot be found.
var ErrInquiryNotFound = errors.New("inquiry not found")

type InquiryRepo struct {
	db *sql.DB
}

func NewInquiryRepo(db *sql.DB) *InquiryRepo {
	return &InquiryRepo{db: db}
}

const inquiryColumns = `id, name, email, phone, message, tour_name, tour_type,
	destination, travel_dates, group_size, budget, status, notes,
	created_at, updated_at`

func scanInquiry(row interface{ Scan(...any) error }) (*Inquiry, error) {
	i := new(Inquiry)
	err := row.Scan(&i.ID, &i.Name, &i.Email, &i.Phone, &i.Message,
		&i.TourName, &i.TourType, &i.Destination, &i.TravelDates,
		&i.GroupSize, &i.Budget, &i.Status, &i.Notes,
		&i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return i, nil
}

// Create inserts a new inquiry. Status is set by the caller (the public
// form always passes "new"). ID and timestamps come back from the database.
func (r *InquiryRepo) Create(ctx context.Context, i *Inquiry) error {
	const q = `INSERT INTO inquiries
		(name, email, phone, message, tour_name, tour_type, destination,
		 travel_dates, group_size, budget, status, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, q,
		i.Name, i.Email, i.Phone, i.Message, i.TourName, i.TourType,
		i.Destination, i.TravelDates, i.GroupSize, i.Budget, i.Status,
		i.Notes,
	).Scan(&i.ID, &i.CreatedAt, &i.UpdatedAt)
}

// GetByID fetches a single inquiry.
func (r *InquiryRepo) GetByID(ctx context.Context, id uint64) (*Inquiry, error) {
	i, err := scanInquiry(r.db.QueryRowContext(ctx,
		`SELECT `+inquiryColumns+` FROM inquiries WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInquiryNotFound
	}
	return i, err
}

// Search returns inquiries newest first. The term matches name, email,
// message and tour_name case-insensitively; status (when set and not
// "all") is an exact match.
func (r *InquiryRepo) Search(ctx context.Context, term, status string) ([]*Inquiry, error) {
	where := []string{}
	args := []any{}

	if s := strings.TrimSpace(term); s != "" {
		args = append(args, "%"+strings.ToLower(s)+"%")
		where = append(where, textMatch(len(args),
			"name", "email", "COALESCE(message,'')", "COALESCE(tour_name,'')"))
	}
	if status != "" && status != "all" {
		args = append(args, status)
		where = append(where, cond("status = $%d", len(args)))
	}

	condSQL := "TRUE"
	if len(where) > 0 {
		condSQL = strings.Join(where, " AND ")
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+inquiryColumns+` FROM inquiries WHERE `+condSQL+
			` ORDER BY created_at DESC, id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*Inquiry{}
	for rows.Next() {
		i, err := scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus moves an inquiry to the given status. Any status can move
// to any other status; there is no enforced ordering or terminal state.
func (r *InquiryRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE inquiries SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrInquiryNotFound
	}
	return nil
}

// UpdateNotes replaces the staff notes on an inquiry.
func (r *InquiryRepo) UpdateNotes(ctx context.Context, id uint64, notes string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE inquiries SET notes = $1, updated_at = NOW() WHERE id = $2`,
		notes, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrInquiryNotFound
	}
	return nil
}

// Delete removes an inquiry; a missing id returns ErrInquiryNotFound.
func (r *InquiryRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM inquiries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrInquiryNotFound
	}
	return nil
}

// Count returns the total number of inquiries.
func (r *InquiryRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM inquiries`).Scan(&n)
	return n, err
}

// CountByStatus returns the number of inquiries in a given status, used by
// the dashboard to show how many are still waiting on first contact.
func (r *InquiryRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM inquiries WHERE status = $1`, status).Scan(&n)
	return n, err
}
