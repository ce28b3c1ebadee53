package repository

import (
	"context"

	"doctorhub-api/internal/domain/entity"
)

// DoctorRepository loads the full directory from its configured source.
// Every call reads the source again; nothing is cached between calls.
// Add returns the record as stored, which may lack values the source has no column for.
type DoctorRepository interface {
	SourceName() string
	Load(ctx context.Context) ([]entity.DoctorRecord, error)
	Add(ctx context.Context, record entity.DoctorRecord) (entity.DoctorRecord, error)
}
