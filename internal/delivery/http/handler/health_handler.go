package handler

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"doctorhub-api/internal/usecase"
	"doctorhub-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type HealthHandler struct {
	doctorUsecase usecase.DoctorUsecase
	log           *logrus.Logger
}

func NewHealthHandler(doctorUsecase usecase.DoctorUsecase, log *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		doctorUsecase: doctorUsecase,
		log:           log,
	}
}

type healthErrorResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Health reports failures in its own {status:"error"} shape instead of the error envelope.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.log.Errorf("Health check failed: %v", rec)
			response.JSON(w, http.StatusInternalServerError, healthErrorResponse{
				Status:    "error",
				Message:   fmt.Sprint(rec),
				Timestamp: response.Timestamp(),
			})
		}
	}()

	health, err := h.doctorUsecase.Health(r.Context())
	if err != nil {
		response.JSON(w, http.StatusInternalServerError, healthErrorResponse{
			Status:    "error",
			Message:   err.Error(),
			Timestamp: response.Timestamp(),
		})
		return
	}

	health.Timestamp = response.Timestamp()
	response.JSON(w, http.StatusOK, health)
}

var docsTemplate = template.Must(template.New("docs").Parse(docsHTML))

type docsPage struct {
	BaseURL   string
	Timestamp string
}

// Docs renders the HTML API reference.
func (h *HealthHandler) Docs(w http.ResponseWriter, r *http.Request) {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := docsTemplate.Execute(w, docsPage{
		BaseURL:   fmt.Sprintf("%s://%s/", scheme, r.Host),
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
	}); err != nil {
		h.log.Errorf("Failed to render docs: %v", err)
	}
}

const docsHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Doctor Hub API Documentation</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
        .endpoint { background: #f5f5f5; padding: 15px; margin: 10px 0; border-radius: 5px; }
        .method { background: #007bff; color: white; padding: 3px 8px; border-radius: 3px; font-size: 12px; }
        .url { font-family: monospace; background: #e9ecef; padding: 2px 5px; }
        pre { background: #f8f9fa; padding: 10px; border-radius: 3px; overflow-x: auto; }
    </style>
</head>
<body>
    <h1>Doctor Hub API Documentation</h1>
    <p>REST API for searching the doctor and clinic directory.</p>

    <div class="endpoint">
        <h3><span class="method">GET</span> <span class="url">/api/doctors</span></h3>
        <p>All doctors in the directory.</p>
    </div>

    <div class="endpoint">
        <h3><span class="method">POST</span> <span class="url">/api/doctors</span></h3>
        <p>Add a doctor (local and database sources only).</p>
        <p><strong>Body:</strong> <code>{"name", "specialization", "clinic", "days", "timings", "contact": []}</code></p>
    </div>

    <div class="endpoint">
        <h3><span class="method">GET</span> <span class="url">/api/search</span></h3>
        <p>Search doctors by keyword across every field.</p>
        <p><strong>Parameters:</strong> <code>q</code> - search keyword</p>
        <p><strong>Example:</strong> <code>/api/search?q=cardiology</code></p>
    </div>

    <div class="endpoint">
        <h3><span class="method">GET</span> <span class="url">/api/search/name</span></h3>
        <p>Search doctors by name.</p>
        <p><strong>Parameters:</strong> <code>q</code> - partial name</p>
    </div>

    <div class="endpoint">
        <h3><span class="method">GET</span> <span class="url">/api/search/specialization</span></h3>
        <p>Search doctors by specialization.</p>
        <p><strong>Parameters:</strong> <code>q</code> - partial specialization</p>
    </div>

    <div class="endpoint">
        <h3><span class="method">GET</span> <span class="url">/api/search/trending</span></h3>
        <p>Most searched keywords.</p>
        <p><strong>Parameters:</strong> <code>limit</code> - optional, at most 100</p>
    </div>

    <div class="endpoint">
        <h3><span class="method">GET</span> <span class="url">/api/autocomplete</span></h3>
        <p>Type-ahead suggestions from names, specializations and clinics.</p>
        <p><strong>Parameters:</strong> <code>q</code> - partial keyword</p>
        <p><strong>Example:</strong> <code>/api/autocomplete?q=dr</code></p>
    </div>

    <div class="endpoint">
        <h3><span class="method">GET</span> <span class="url">/api/specializations</span></h3>
        <p>Unique specializations, sorted.</p>
    </div>

    <div class="endpoint">
        <h3><span class="method">GET</span> <span class="url">/api/available</span></h3>
        <p>Doctors available on a given day.</p>
        <p><strong>Parameters:</strong> <code>day</code> - day of the week</p>
        <p><strong>Example:</strong> <code>/api/available?day=monday</code></p>
    </div>

    <div class="endpoint">
        <h3><span class="method">GET</span> <span class="url">/api/doctor/{id}</span></h3>
        <p>One doctor by id.</p>
    </div>

    <div class="endpoint">
        <h3><span class="method">GET</span> <span class="url">/api/health</span></h3>
        <p>Server status, data source and doctor count.</p>
    </div>

    <h3>Sample Doctor:</h3>
    <pre>
{
  "id": 12345,
  "name": "Dr. Rajesh Kumar",
  "specialization": "Consultant Medicine",
  "clinic": "Raj Clinic",
  "days": "Mon-Fri",
  "timings": "9:00 AM - 6:00 PM",
  "contact": ["7048950929", "9818105501"],
  "available": true
}
    </pre>

    <p><strong>Base URL:</strong> <code>{{.BaseURL}}</code></p>
    <p><strong>Last Updated:</strong> {{.Timestamp}}</p>
</body>
</html>
`
