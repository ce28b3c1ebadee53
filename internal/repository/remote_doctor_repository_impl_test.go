package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"doctorhub-api/internal/domain/entity"
	domainRepo "doctorhub-api/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteDoctorRepository_Load(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("\ufeff" + sampleCSV))
	}))
	defer ts.Close()

	repo := NewRemoteDoctorRepository(ts.URL, time.Second, testLogger())

	records, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Dr. A", records[0].Name())
	assert.Equal(t, "Remote", repo.SourceName())
}

func TestRemoteDoctorRepository_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("404: Not Found"))
	}))
	defer ts.Close()

	repo := NewRemoteDoctorRepository(ts.URL, time.Second, testLogger())

	records, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, domainRepo.ErrSourceUnavailable)
	assert.Contains(t, err.Error(), "404")
	assert.Nil(t, records)
}

func TestRemoteDoctorRepository_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer ts.Close()

	repo := NewRemoteDoctorRepository(ts.URL, 50*time.Millisecond, testLogger())

	records, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, domainRepo.ErrSourceUnavailable)
	assert.Nil(t, records)
}

func TestRemoteDoctorRepository_IsReadOnly(t *testing.T) {
	repo := NewRemoteDoctorRepository("http://example.invalid/doctors.csv", time.Second, testLogger())

	stored, err := repo.Add(context.Background(), entity.NewDoctorRecord())
	assert.ErrorIs(t, err, domainRepo.ErrReadOnlySource)
	assert.Nil(t, stored)
}
