package dto

import "doctorhub-api/pkg/response"

// Request DTOs

type KeywordQuery struct {
	Q string `query:"q" validate:"required"`
}

type DayQuery struct {
	Day string `query:"day" validate:"required"`
}

type CreateDoctorRequest struct {
	Name           string   `json:"name" validate:"required,max=255"`
	Specialization string   `json:"specialization" validate:"required,max=255"`
	Clinic         string   `json:"clinic" validate:"omitempty,max=255"`
	Days           string   `json:"days" validate:"omitempty,max=100"`
	Timings        string   `json:"timings" validate:"omitempty,max=100"`
	Contact        []string `json:"contact" validate:"dive,excludes=;"`
}

// Response DTOs

// DoctorResponse is the mobile-facing view of one directory record.
type DoctorResponse struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	Clinic         string   `json:"clinic"`
	Days           string   `json:"days"`
	Timings        string   `json:"timings"`
	Contact        []string `json:"contact"`
	Available      bool     `json:"available"`
}

type DoctorListResponse struct {
	response.Envelope
	Doctors []DoctorResponse `json:"doctors"`
	Count   int              `json:"count"`
}

type DoctorSearchResponse struct {
	response.Envelope
	Query   string           `json:"query"`
	Results []DoctorResponse `json:"results"`
	Count   int              `json:"count"`
}

type AutocompleteResponse struct {
	response.Envelope
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
	Count       int      `json:"count"`
}

type SpecializationListResponse struct {
	response.Envelope
	Specializations []string `json:"specializations"`
	Count           int      `json:"count"`
}

type AvailableDoctorsResponse struct {
	response.Envelope
	Day              string           `json:"day"`
	AvailableDoctors []DoctorResponse `json:"available_doctors"`
	Count            int              `json:"count"`
}

type DoctorDetailResponse struct {
	response.Envelope
	Doctor DoctorResponse `json:"doctor"`
}

type CreateDoctorResponse struct {
	response.Envelope
	Message string         `json:"message"`
	Doctor  DoctorResponse `json:"doctor"`
}
