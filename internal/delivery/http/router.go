package http

import (
	"net/http"

	"hospital-records/internal/delivery/http/handler"
	"hospital-records/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	patientHandler     *handler.PatientHandler
	analyticsHandler   *handler.AnalyticsHandler
	appointmentHandler *handler.AppointmentHandler
	healthHandler      *handler.HealthHandler
	loggingMiddleware  *middleware.LoggingMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	staticDir          string
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	analyticsHandler *handler.AnalyticsHandler,
	appointmentHandler *handler.AppointmentHandler,
	healthHandler *handler.HealthHandler,
	loggingMiddleware *middleware.LoggingMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	staticDir string,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		patientHandler:     patientHandler,
		analyticsHandler:   analyticsHandler,
		appointmentHandler: appointmentHandler,
		healthHandler:      healthHandler,
		loggingMiddleware:  loggingMiddleware,
		corsMiddleware:     corsMiddleware,
		staticDir:          staticDir,
	}
}

func (r *Router) Setup() http.Handler {
	r.router.Use(r.loggingMiddleware.Handle)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthHandler.Liveness).Methods(http.MethodGet)
	api.HandleFunc("/health/ready", r.healthHandler.Readiness).Methods(http.MethodGet)

	// Patient visit records
	api.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	api.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Dashboard
	api.HandleFunc("/analytics", r.analyticsHandler.GetAnalytics).Methods(http.MethodGet)

	// Root-level aliases of the /api/v1 routes above. They share the same
	// handlers, so responses use the same envelope and field names.
	r.router.HandleFunc("/add-patient", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	r.router.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	r.router.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	r.router.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)
	r.router.HandleFunc("/analytics", r.analyticsHandler.GetAnalytics).Methods(http.MethodGet)

	// QR lookup (public, token is the credential)
	r.router.HandleFunc("/appointment/qr/{token}", r.appointmentHandler.ResolveAppointment).Methods(http.MethodGet)
	r.router.HandleFunc("/appointment/qr", r.appointmentHandler.ResolveAppointment).Methods(http.MethodGet)
	r.router.HandleFunc("/appointment/qr/", r.appointmentHandler.ResolveAppointment).Methods(http.MethodGet)
	r.router.HandleFunc("/appointment/{token}", r.appointmentHandler.RedirectToQR).Methods(http.MethodGet)

	if r.staticDir != "" {
		r.router.PathPrefix("/").Handler(http.FileServer(http.Dir(r.staticDir))).Methods(http.MethodGet)
	}

	// CORS wraps the router so preflight requests are answered before matching
	return r.corsMiddleware.Handle(r.router)
}
