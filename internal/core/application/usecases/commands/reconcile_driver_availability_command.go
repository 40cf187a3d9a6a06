package commands

import (
	"errors"

	"parcelops/internal/pkg/guard"
)

var (
	ErrReconcileDriverAvailabilityCommandIsNotConstructed = errors.New(
		"ReconcileDriverAvailabilityCommand must be created via NewReconcileDriverAvailabilityCommand constructor",
	)
)

// ReconcileDriverAvailabilityCommand triggers a sweep that derives each
// driver's availability from their assigned shipments.
type ReconcileDriverAvailabilityCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileDriverAvailabilityCommand creates the reconciliation command.
func NewReconcileDriverAvailabilityCommand() (ReconcileDriverAvailabilityCommand, error) {
	return ReconcileDriverAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcileDriverAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrReconcileDriverAvailabilityCommandIsNotConstructed)
}
