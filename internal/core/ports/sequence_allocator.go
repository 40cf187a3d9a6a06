package ports

import (
	"context"

	"parcelops/internal/core/domain/model/kernel"
)

// SequenceAllocator issues the next identifier for an entity kind.
//
// Next must be called inside an open unit-of-work transaction: the allocator
// locks the kind's counter row for the remainder of that transaction, so two
// concurrent creations of the same kind serialize and a rolled-back creation
// releases its number without leaving a gap. The returned identifier is
// strictly greater than every identifier previously committed for the kind.
//
// If the counter row's lock cannot be acquired within the configured bound,
// Next fails with an error unwrapping to errs.ErrContentionTimeout and the
// enclosing creation must be aborted.
type SequenceAllocator interface {
	Next(ctx context.Context, kind kernel.EntityKind) (kernel.EntityID, error)
}
