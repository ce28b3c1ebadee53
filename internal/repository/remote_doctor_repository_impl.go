package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"doctorhub-api/internal/domain/entity"
	domainRepo "doctorhub-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// maxErrorBody bounds how much of a failed response is kept in the error message.
const maxErrorBody = 2048

type remoteDoctorRepository struct {
	url        string
	httpClient *http.Client
	log        *logrus.Logger
}

// NewRemoteDoctorRepository reads the directory from a CSV served at url.
// timeout bounds the whole request, including reading the body.
func NewRemoteDoctorRepository(url string, timeout time.Duration, log *logrus.Logger) domainRepo.DoctorRepository {
	return &remoteDoctorRepository{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

func (r *remoteDoctorRepository) SourceName() string {
	return "Remote"
}

func (r *remoteDoctorRepository) Load(ctx context.Context) ([]entity.DoctorRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", domainRepo.ErrSourceUnavailable, err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainRepo.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: status %d: %s", domainRepo.ErrSourceUnavailable, resp.StatusCode, string(body))
	}

	records, err := parseDoctorCSV(resp.Body)
	if err != nil {
		return nil, err
	}

	r.log.Debugf("Loaded %d doctors from %s", len(records), r.url)
	return records, nil
}

func (r *remoteDoctorRepository) Add(ctx context.Context, record entity.DoctorRecord) (entity.DoctorRecord, error) {
	return nil, domainRepo.ErrReadOnlySource
}
