package http

import (
	"net/http"

	"home-visit-planner/internal/delivery/http/handler"
	"home-visit-planner/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	patientHandler    *handler.PatientHandler
	routeHandler      *handler.RouteHandler
	loggingMiddleware *middleware.LoggingMiddleware
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	routeHandler *handler.RouteHandler,
	loggingMiddleware *middleware.LoggingMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		patientHandler:    patientHandler,
		routeHandler:      routeHandler,
		loggingMiddleware: loggingMiddleware,
		corsMiddleware:    corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Enrichment pipeline
	r.router.HandleFunc("/process", r.patientHandler.Process).Methods(http.MethodPost)
	r.router.HandleFunc("/patients", r.patientHandler.List).Methods(http.MethodPost)

	// Routing pipeline
	r.router.HandleFunc("/plan_route", r.routeHandler.PlanRoute).Methods(http.MethodPost)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
