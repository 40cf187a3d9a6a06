package seqrepo

import (
	"context"

	"parcelops/internal/adapters/out/postgres/pgerrs"
	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSequenceAllocator implements ports.SequenceAllocator on a dedicated
// counter table.
//
// The caller's transaction provides the serialization: Next locks the kind's
// counter row FOR UPDATE, so the lock is held until that transaction commits
// or rolls back. A rolled-back creation therefore releases its number and the
// next allocation reuses it, keeping committed identifiers gap-free.
type GormSequenceAllocator struct {
	db *gorm.DB
}

// NewGormSequenceAllocator creates an allocator bound to the given connection,
// which must carry the caller's open transaction.
func NewGormSequenceAllocator(db *gorm.DB) *GormSequenceAllocator {
	return &GormSequenceAllocator{db: db}
}

// Next issues the next identifier for the kind.
func (a *GormSequenceAllocator) Next(ctx context.Context, kind kernel.EntityKind) (kernel.EntityID, error) {
	if err := kind.Validate(); err != nil {
		return kernel.EntityID{}, err
	}

	db := a.db.WithContext(ctx)

	// first allocation of a kind creates its counter row; concurrent first
	// allocations serialize on the primary key
	err := db.Exec(`
		INSERT INTO sequences (kind, last_number)
		VALUES (?, 0)
		ON CONFLICT (kind) DO NOTHING
	`, kind.Name()).Error
	if err != nil {
		return kernel.EntityID{}, a.classify(kind, err)
	}

	var last int64
	err = db.Raw(`
		SELECT last_number
		FROM sequences
		WHERE kind = ?
		FOR UPDATE
	`, kind.Name()).Row().Scan(&last)
	if err != nil {
		return kernel.EntityID{}, a.classify(kind, err)
	}

	next := last + 1
	err = db.Exec(`
		UPDATE sequences
		SET last_number = ?
		WHERE kind = ?
	`, next, kind.Name()).Error
	if err != nil {
		return kernel.EntityID{}, err
	}

	return kind.Format(next), nil
}

func (a *GormSequenceAllocator) classify(kind kernel.EntityKind, err error) error {
	if pgerrs.IsLockTimeout(err) {
		return errs.NewContentionTimeoutError("sequence "+kind.Name(), err)
	}
	return err
}
