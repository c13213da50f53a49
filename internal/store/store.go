// Package store provides database access methods for all site entities.
// Each store struct wraps a *sql.DB and exposes typed query methods.
package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors returned by store methods. Handlers map these onto
// HTTP status codes; anything else is treated as a storage fault.
var (
	// ErrNotFound means the mutation target id does not exist.
	ErrNotFound = errors.New("store: record not found")

	// ErrSlugTaken means a blog slug collided with a different record.
	ErrSlugTaken = errors.New("store: slug already exists")
)

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
