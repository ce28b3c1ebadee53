package handler

import (
	"net/http"
	"strconv"
	"strings"

	"doctorhub-api/internal/delivery/dto"
	"doctorhub-api/internal/usecase"
	"doctorhub-api/pkg/response"
	"doctorhub-api/pkg/validator"
)

const (
	msgKeywordRequired = "Search keyword 'q' is required"
	msgDayRequired     = "Day parameter is required"
)

type SearchHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewSearchHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *SearchHandler {
	return &SearchHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

// keywordQuery reads and validates the trimmed q parameter, writing a 400 on failure.
func (h *SearchHandler) keywordQuery(w http.ResponseWriter, r *http.Request) (*dto.KeywordQuery, bool) {
	query := &dto.KeywordQuery{Q: strings.TrimSpace(r.URL.Query().Get("q"))}
	if err := h.validator.Validate(query); err != nil {
		response.ValidationError(w, msgKeywordRequired, h.validator.FormatValidationErrors(err))
		return nil, false
	}
	return query, true
}

func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query, ok := h.keywordQuery(w, r)
	if !ok {
		return
	}

	result, err := h.doctorUsecase.SearchDoctors(r.Context(), query.Q)
	if err != nil {
		response.InternalServerError(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, result)
}

func (h *SearchHandler) SearchByName(w http.ResponseWriter, r *http.Request) {
	query, ok := h.keywordQuery(w, r)
	if !ok {
		return
	}

	result, err := h.doctorUsecase.SearchByName(r.Context(), query.Q)
	if err != nil {
		response.InternalServerError(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, result)
}

func (h *SearchHandler) SearchBySpecialization(w http.ResponseWriter, r *http.Request) {
	query, ok := h.keywordQuery(w, r)
	if !ok {
		return
	}

	result, err := h.doctorUsecase.SearchBySpecialization(r.Context(), query.Q)
	if err != nil {
		response.InternalServerError(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, result)
}

func (h *SearchHandler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	query, ok := h.keywordQuery(w, r)
	if !ok {
		return
	}

	result, err := h.doctorUsecase.Autocomplete(r.Context(), query.Q)
	if err != nil {
		response.InternalServerError(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, result)
}

func (h *SearchHandler) GetSpecializations(w http.ResponseWriter, r *http.Request) {
	result, err := h.doctorUsecase.GetSpecializations(r.Context())
	if err != nil {
		response.InternalServerError(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, result)
}

func (h *SearchHandler) GetAvailableDoctors(w http.ResponseWriter, r *http.Request) {
	query := &dto.DayQuery{Day: strings.TrimSpace(r.URL.Query().Get("day"))}
	if err := h.validator.Validate(query); err != nil {
		response.ValidationError(w, msgDayRequired, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.doctorUsecase.GetAvailableDoctors(r.Context(), query.Day)
	if err != nil {
		response.InternalServerError(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, result)
}

// GetTrendingSearches treats a missing or non-numeric limit as the default.
func (h *SearchHandler) GetTrendingSearches(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("limit")))
	if err != nil {
		limit = 0
	}

	result, err := h.doctorUsecase.GetTrendingSearches(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, result)
}
