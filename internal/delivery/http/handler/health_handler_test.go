package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"doctorhub-api/internal/delivery/dto"
	"doctorhub-api/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUsecase implements only Health; other methods panic through the nil interface.
type stubUsecase struct {
	usecase.DoctorUsecase
	health func() (*dto.HealthResponse, error)
}

func (s *stubUsecase) Health(ctx context.Context) (*dto.HealthResponse, error) {
	return s.health()
}

func newHealthHandler(health func() (*dto.HealthResponse, error)) *HealthHandler {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewHealthHandler(&stubUsecase{health: health}, log)
}

func serveHealth(t *testing.T, h *HealthHandler) (int, map[string]interface{}) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHealthHandler_Healthy(t *testing.T) {
	total := 7
	h := newHealthHandler(func() (*dto.HealthResponse, error) {
		return &dto.HealthResponse{Status: "healthy", Message: "ok", DataSource: "Local", TotalDoctors: &total}, nil
	})

	code, body := serveHealth(t, h)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(7), body["total_doctors"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestHealthHandler_Error(t *testing.T) {
	h := newHealthHandler(func() (*dto.HealthResponse, error) {
		return nil, errors.New("boom")
	})

	code, body := serveHealth(t, h)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "boom", body["message"])
}

func TestHealthHandler_Panic(t *testing.T) {
	h := newHealthHandler(func() (*dto.HealthResponse, error) {
		panic("source exploded")
	})

	code, body := serveHealth(t, h)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "source exploded", body["message"])
}
