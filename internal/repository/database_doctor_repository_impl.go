package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"doctorhub-api/internal/domain/entity"
	domainRepo "doctorhub-api/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type databaseDoctorRepository struct {
	db *gorm.DB
}

func NewDatabaseDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &databaseDoctorRepository{db: db}
}

func (r *databaseDoctorRepository) SourceName() string {
	return "Database"
}

func (r *databaseDoctorRepository) Load(ctx context.Context) ([]entity.DoctorRecord, error) {
	var doctors []entity.Doctor
	if err := r.db.WithContext(ctx).Order("id").Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", domainRepo.ErrSourceUnavailable, err)
	}

	records := make([]entity.DoctorRecord, len(doctors))
	for i, doctor := range doctors {
		records[i] = doctor.Record()
	}
	return records, nil
}

func (r *databaseDoctorRepository) Add(ctx context.Context, record entity.DoctorRecord) (entity.DoctorRecord, error) {
	doctor := entity.DoctorFromRecord(record)
	if err := r.db.WithContext(ctx).Create(&doctor).Error; err != nil {
		if isDuplicateKeyError(err, "name_specialization") {
			return nil, domainRepo.ErrDoctorExists
		}
		return nil, err
	}
	return doctor.Record(), nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// on a constraint whose name contains constraintName.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
