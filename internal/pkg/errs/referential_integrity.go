package errs

import (
	"errors"
	"fmt"
)

// ErrReferentialIntegrity is the sentinel error returned when a delete is
// blocked by a dependent record. There is no automatic cascade.
var ErrReferentialIntegrity = errors.New("referential integrity violation")

// ReferentialIntegrityError reports that an object cannot be removed while
// another record still references it.
type ReferentialIntegrityError struct {
	ParamName string
	ID        any
	Dependent string
}

// NewReferentialIntegrityError creates a ReferentialIntegrityError naming the
// blocked object and the dependent record kind.
func NewReferentialIntegrityError(paramName string, id any, dependent string) *ReferentialIntegrityError {
	return &ReferentialIntegrityError{
		ParamName: paramName,
		ID:        id,
		Dependent: dependent,
	}
}

func (e *ReferentialIntegrityError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %v is referenced by %s",
		ErrReferentialIntegrity, e.ParamName, e.ID, e.Dependent))
}

func (e *ReferentialIntegrityError) Unwrap() error {
	return ErrReferentialIntegrity
}
