// Package seqrepo persists the per-kind identifier counters backing the
// sequential ID allocator.
package seqrepo

// SequenceDTO is one counter row. The row is locked FOR UPDATE while a
// transaction computes its next identifier, so concurrent creations of the
// same kind serialize on it.
type SequenceDTO struct {
	Kind       string `gorm:"type:varchar(32);primaryKey"`
	LastNumber int64
}

// TableName overrides GORM's default naming to use "sequences".
func (SequenceDTO) TableName() string {
	return "sequences"
}
