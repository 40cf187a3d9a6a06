// Package pgerrs classifies low-level PostgreSQL driver errors so the
// adapters can translate them into the application error taxonomy.
package pgerrs

import (
	"errors"

	"github.com/lib/pq"
)

const (
	// SQLSTATE 55P03: lock_not_available, raised when lock_timeout expires.
	lockNotAvailable = "55P03"

	// SQLSTATE 23505: unique_violation, raised when an insert loses a race
	// against a unique index.
	uniqueViolation = "23505"
)

// sqlStater is implemented by pgx's PgError.
type sqlStater interface {
	SQLState() string
}

// IsLockTimeout reports whether err is the server rejecting a lock wait that
// exceeded lock_timeout. Both the pgx driver used by GORM and lib/pq's
// database/sql driver are recognized.
func IsLockTimeout(err error) bool {
	return sqlState(err) == lockNotAvailable
}

// IsUniqueViolation reports whether err is the server rejecting an insert
// that collided with a unique index.
func IsUniqueViolation(err error) bool {
	return sqlState(err) == uniqueViolation
}

func sqlState(err error) string {
	var stater sqlStater
	if errors.As(err, &stater) {
		return stater.SQLState()
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return ""
}
