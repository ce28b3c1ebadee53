package response

import (
	"encoding/json"
	"net/http"
	"time"
)

// Envelope is embedded by every success body; Success stamps it before encoding.
type Envelope struct {
	Success   bool   `json:"success"`
	Timestamp string `json:"timestamp"`
}

func (e *Envelope) Stamp(timestamp string) {
	e.Success = true
	e.Timestamp = timestamp
}

type Stamper interface {
	Stamp(timestamp string)
}

type ErrorResponse struct {
	Success   bool              `json:"success"`
	Error     string            `json:"error"`
	Message   string            `json:"message,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
	Timestamp string            `json:"timestamp"`
}

// Timestamp returns the current time in ISO-8601 form.
func Timestamp() string {
	return time.Now().Format(time.RFC3339Nano)
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, data Stamper) {
	data.Stamp(Timestamp())
	JSON(w, statusCode, data)
}

func Error(w http.ResponseWriter, statusCode int, errMessage string, message string) {
	JSON(w, statusCode, ErrorResponse{
		Success:   false,
		Error:     errMessage,
		Message:   message,
		Timestamp: Timestamp(),
	})
}

func ValidationError(w http.ResponseWriter, errMessage string, details map[string]string) {
	JSON(w, http.StatusBadRequest, ErrorResponse{
		Success:   false,
		Error:     errMessage,
		Details:   details,
		Timestamp: Timestamp(),
	})
}

func BadRequest(w http.ResponseWriter, errMessage string) {
	Error(w, http.StatusBadRequest, errMessage, "")
}

func NotFound(w http.ResponseWriter, errMessage string) {
	if errMessage == "" {
		errMessage = "Resource not found"
	}
	Error(w, http.StatusNotFound, errMessage, "")
}

// InternalServerError keeps the underlying cause in message for diagnostics.
func InternalServerError(w http.ResponseWriter, cause string) {
	Error(w, http.StatusInternalServerError, "Internal server error", cause)
}
