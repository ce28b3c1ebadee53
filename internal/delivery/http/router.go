package http

import (
	"net/http"

	"doctorhub-api/internal/delivery/http/handler"
	"doctorhub-api/internal/delivery/http/middleware"
	"doctorhub-api/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	healthHandler     *handler.HealthHandler
	doctorHandler     *handler.DoctorHandler
	searchHandler     *handler.SearchHandler
	recoverMiddleware *middleware.RecoverMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	healthHandler *handler.HealthHandler,
	doctorHandler *handler.DoctorHandler,
	searchHandler *handler.SearchHandler,
	recoverMiddleware *middleware.RecoverMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		healthHandler:     healthHandler,
		doctorHandler:     doctorHandler,
		searchHandler:     searchHandler,
		recoverMiddleware: recoverMiddleware,
		loggingMiddleware: loggingMiddleware,
		corsMiddleware:    corsMiddleware,
	}
}

// Setup registers every route. The returned handler wraps the mux in
// request log -> recover -> CORS so unmatched routes and panics are logged too.
func (r *Router) Setup() http.Handler {
	// Documentation
	r.router.HandleFunc("/", r.healthHandler.Docs).Methods(http.MethodGet)

	// Full paths on the root router; a PathPrefix subrouter reports method mismatches as 404.

	// Health check
	r.router.HandleFunc("/api/health", r.healthHandler.Health).Methods(http.MethodGet)

	// Doctors
	r.router.HandleFunc("/api/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	r.router.HandleFunc("/api/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	r.router.HandleFunc("/api/doctor/{id:[0-9]+}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	// Search
	r.router.HandleFunc("/api/search", r.searchHandler.Search).Methods(http.MethodGet)
	r.router.HandleFunc("/api/search/name", r.searchHandler.SearchByName).Methods(http.MethodGet)
	r.router.HandleFunc("/api/search/specialization", r.searchHandler.SearchBySpecialization).Methods(http.MethodGet)
	r.router.HandleFunc("/api/search/trending", r.searchHandler.GetTrendingSearches).Methods(http.MethodGet)
	r.router.HandleFunc("/api/autocomplete", r.searchHandler.Autocomplete).Methods(http.MethodGet)
	r.router.HandleFunc("/api/specializations", r.searchHandler.GetSpecializations).Methods(http.MethodGet)
	r.router.HandleFunc("/api/available", r.searchHandler.GetAvailableDoctors).Methods(http.MethodGet)

	r.router.NotFoundHandler = http.HandlerFunc(notFound)
	r.router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	return r.loggingMiddleware.Handle(r.recoverMiddleware.Handle(r.corsMiddleware.Handle(r.router)))
}

func notFound(w http.ResponseWriter, req *http.Request) {
	response.Error(w, http.StatusNotFound, "Endpoint not found", "Please check the API documentation at the root URL")
}

func methodNotAllowed(w http.ResponseWriter, req *http.Request) {
	response.Error(w, http.StatusMethodNotAllowed, "Method not allowed", req.Method+" is not supported for "+req.URL.Path)
}
