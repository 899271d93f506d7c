package api

import (
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/epiday/epiday/internal/api/recovery"
	"github.com/epiday/epiday/internal/api/requestid"
	"github.com/epiday/epiday/internal/core/custom"
	"github.com/epiday/epiday/internal/core/planning"
	"github.com/epiday/epiday/internal/core/user"
	"github.com/epiday/epiday/internal/intra"
)

// NewRouter wires the portal client into the core services and exposes them
// over HTTP.
func NewRouter(client *intra.Client, log zerolog.Logger) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares
	router.Use(requestid.Middleware)
	router.Use(recovery.Middleware)

	// Core services; the planning aggregator calls the calendar service
	// in-process, not over the network.
	customSvc := custom.NewService(client, log)
	planningSvc := planning.NewService(client, customSvc, log)
	userSvc := user.NewService(client, log)

	planningHandler := NewPlanningHandler(planningSvc, log)
	customHandler := NewCustomHandler(customSvc, log)
	userHandler := NewUserHandler(userSvc, log)
	healthHandler := NewHealthHandler(client)

	router.HandleFunc("/", RootDoc).Methods("GET")

	v1 := router.PathPrefix("/v1").Subrouter()

	// Health endpoints
	v1.HandleFunc("/health/api", healthHandler.API).Methods("GET")
	v1.HandleFunc("/health/intra", healthHandler.Intra).Methods("GET")

	// User endpoints
	v1.HandleFunc("/user/info", userHandler.Info).Methods("GET")

	// Planning endpoints
	v1.HandleFunc("/planning/day", planningHandler.Day).Methods("GET")
	v1.HandleFunc("/planning/rdv", planningHandler.Rdv).Methods("GET")
	v1.HandleFunc("/planning/token", planningHandler.SubmitToken).Methods("PUT")
	v1.HandleFunc("/planning/event", planningHandler.UnregisterEvent).Methods("DELETE")

	// Custom calendar endpoints
	v1.HandleFunc("/custom/list", customHandler.List).Methods("GET")
	v1.HandleFunc("/custom/day", customHandler.Day).Methods("GET")
	v1.HandleFunc("/custom/event", customHandler.Register).Methods("PUT")
	v1.HandleFunc("/custom/event", customHandler.Unregister).Methods("DELETE")

	return router
}
