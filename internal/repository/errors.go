// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrConflict signals that an insert or update collides with
// an existing record (a duplicate slug or email), while the per-entity
// not-found sentinels mark reads that matched no row.
package repository

import (
	"errors"

	"github.com/lib/pq"
)

// ErrConflict is returned when an insert or update violates a unique
// constraint, such as two tours sharing a slug. Handlers should
// translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
