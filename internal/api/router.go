package api

import (
	"net/http"
	"trip-route-service/internal/api/handlers"
	"trip-route-service/internal/config"
	"trip-route-service/internal/ports"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	locations ports.LocationRepository,
	modes ports.ModeRepository,
	provider ports.DistanceProvider,
	planner config.Planner,
) http.Handler {
	r := mux.NewRouter()

	catalogHandler := &handlers.CatalogHandler{Locations: locations, Modes: modes}
	planHandler := &handlers.PlanHandler{
		Locations:       locations,
		Modes:           modes,
		Provider:        provider,
		BalancedWeights: planner.BalancedWeights,
		MaxDestinations: planner.MaxDestinations,
	}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)
	r.HandleFunc("/locations", catalogHandler.ListLocations).Methods(http.MethodGet)
	r.HandleFunc("/modes", catalogHandler.ListModes).Methods(http.MethodGet)
	r.HandleFunc("/plans", planHandler.Plan).Methods(http.MethodPost)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	})

	return c.Handler(requestIDMiddleware(loggingMiddleware(r)))
}
