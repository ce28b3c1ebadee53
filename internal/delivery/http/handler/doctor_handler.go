package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"doctorhub-api/internal/delivery/dto"
	"doctorhub-api/internal/usecase"
	"doctorhub-api/pkg/response"
	"doctorhub-api/pkg/validator"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, doctors)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.NotFound(w, "Doctor not found")
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, &dto.DoctorDetailResponse{Doctor: *doctor})
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	trimCreateDoctorRequest(&req)

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, "Validation failed", h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.AddDoctor(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrReadOnlySource):
			response.Error(w, http.StatusBadRequest, "Cannot add doctor when using remote mode. Switch to local mode.", "")
		case errors.Is(err, usecase.ErrDoctorExists):
			response.Error(w, http.StatusConflict, "Doctor already exists", "")
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.Success(w, http.StatusCreated, &dto.CreateDoctorResponse{
		Message: "Doctor added successfully",
		Doctor:  *doctor,
	})
}

// trimCreateDoctorRequest trims every field so blank values fail validation.
func trimCreateDoctorRequest(req *dto.CreateDoctorRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Specialization = strings.TrimSpace(req.Specialization)
	req.Clinic = strings.TrimSpace(req.Clinic)
	req.Days = strings.TrimSpace(req.Days)
	req.Timings = strings.TrimSpace(req.Timings)
	for i, contact := range req.Contact {
		req.Contact[i] = strings.TrimSpace(contact)
	}
}
