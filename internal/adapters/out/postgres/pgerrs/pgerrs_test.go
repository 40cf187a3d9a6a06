package pgerrs_test

import (
	"errors"
	"fmt"
	"testing"

	"parcelops/internal/adapters/out/postgres/pgerrs"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

// pgxStateError mimics the error shape of the pgx driver GORM connects with.
type pgxStateError struct {
	state string
}

func (e *pgxStateError) Error() string    { return "SQLSTATE " + e.state }
func (e *pgxStateError) SQLState() string { return e.state }

func TestIsLockTimeout(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"pgx lock timeout", &pgxStateError{state: "55P03"}, true},
		{"pq lock timeout", &pq.Error{Code: "55P03"}, true},
		{"wrapped pgx lock timeout", fmt.Errorf("get shipment: %w", &pgxStateError{state: "55P03"}), true},
		{"pgx unique violation", &pgxStateError{state: "23505"}, false},
		{"pq serialization failure", &pq.Error{Code: "40001"}, false},
		{"plain error", errors.New("connection refused"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pgerrs.IsLockTimeout(tt.err))
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"pgx unique violation", &pgxStateError{state: "23505"}, true},
		{"pq unique violation", &pq.Error{Code: "23505"}, true},
		{"wrapped pq unique violation", fmt.Errorf("insert shipment: %w", &pq.Error{Code: "23505"}), true},
		{"pgx lock timeout", &pgxStateError{state: "55P03"}, false},
		{"pq foreign key violation", &pq.Error{Code: "23503"}, false},
		{"plain error", errors.New("connection refused"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pgerrs.IsUniqueViolation(tt.err))
		})
	}
}
