package shipment

import (
	"fmt"

	"parcelops/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// The nominal flow is:
//
//	PENDING ──> IN_TRANSIT ──> DELIVERED
//	                  │
//	                  └──────> FAILED
//
// Neither update path enforces this flow as a transition table. The
// staff-facing path may overwrite any status with any other, and the
// driver-facing path restricts the action vocabulary (see DriverAction)
// but not the source state. Both behaviours are preserved from the system
// this service replaces; do not tighten them here without a product
// decision.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusInTransit Status = "IN_TRANSIT"
	StatusDelivered Status = "DELIVERED"
	StatusFailed    Status = "FAILED"
)

// StatusFromString parses a wire or database value into a Status.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks membership in the status vocabulary.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusInTransit, StatusDelivered, StatusFailed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%q is not a valid shipment status", string(s)),
		)
	}
}

// IsTerminal reports whether the status is one of the end states. Terminal
// here only matters for availability reconciliation; it does not prevent
// further overwrites (see the type comment).
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusFailed
}

func (s Status) String() string {
	return string(s)
}

// DriverAction is the restricted vocabulary a driver may use to report on an
// assigned shipment.
type DriverAction string

const (
	ActionDelivered DriverAction = "delivered"
	ActionDelayed   DriverAction = "delayed"
	ActionFailed    DriverAction = "failed"
)

// ErrUnknownDriverAction is returned for actions outside the vocabulary.
var ErrUnknownDriverAction = errs.NewValueIsInvalidError("driver action")

// Status maps the action to the status it writes:
// delivered -> DELIVERED, delayed -> IN_TRANSIT, failed -> FAILED.
func (a DriverAction) Status() (Status, error) {
	switch a {
	case ActionDelivered:
		return StatusDelivered, nil
	case ActionDelayed:
		return StatusInTransit, nil
	case ActionFailed:
		return StatusFailed, nil
	default:
		return "", ErrUnknownDriverAction
	}
}
