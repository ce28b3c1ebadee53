package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"

	"doctorhub-api/internal/domain/entity"
	domainRepo "doctorhub-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type localDoctorRepository struct {
	path string
	log  *logrus.Logger

	// serializes appends; reads never take it
	mu sync.Mutex
}

func NewLocalDoctorRepository(path string, log *logrus.Logger) domainRepo.DoctorRepository {
	return &localDoctorRepository{
		path: path,
		log:  log,
	}
}

func (r *localDoctorRepository) SourceName() string {
	return "Local"
}

func (r *localDoctorRepository) Load(ctx context.Context) ([]entity.DoctorRecord, error) {
	file, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domainRepo.ErrSourceNotFound, r.path)
		}
		return nil, fmt.Errorf("%w: %v", domainRepo.ErrSourceUnavailable, err)
	}
	defer file.Close()

	records, err := parseDoctorCSV(file)
	if err != nil {
		return nil, err
	}

	r.log.Debugf("Loaded %d doctors from %s", len(records), r.path)
	return records, nil
}

// Add appends one row. An empty or missing file gets the canonical header first;
// otherwise values follow the column order of the existing header.
func (r *localDoctorRepository) Add(ctx context.Context, record entity.DoctorRecord) (entity.DoctorRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := os.OpenFile(r.path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainRepo.ErrSourceUnavailable, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainRepo.ErrSourceUnavailable, err)
	}

	writer := csv.NewWriter(file)

	var header []string
	if info.Size() > 0 {
		if header, err = readCSVHeader(file); err != nil {
			return nil, err
		}
		if needsNewline, err := missingTrailingNewline(file, info.Size()); err != nil {
			return nil, err
		} else if needsNewline {
			if _, err := file.WriteString("\n"); err != nil {
				return nil, err
			}
		}
	}

	if len(header) == 0 {
		header = entity.RequiredFields
		if err := writer.Write(header); err != nil {
			return nil, err
		}
	} else {
		for _, field := range entity.RequiredFields {
			if !contains(header, field) {
				r.log.Warnf("Column %q missing from %s header, value dropped", field, r.path)
			}
		}
	}

	stored := make(entity.DoctorRecord, len(header))
	row := make([]string, len(header))
	for i, name := range header {
		row[i] = record.Get(name)
		stored[name] = row[i]
	}
	if err := writer.Write(row); err != nil {
		return nil, err
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	stored.EnsureRequired()
	return stored, nil
}

func missingTrailingNewline(file *os.File, size int64) (bool, error) {
	last := make([]byte, 1)
	if _, err := file.ReadAt(last, size-1); err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return last[0] != '\n', nil
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
