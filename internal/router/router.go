package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/wanderplan/wanderplan/internal/api/health"
	"github.com/wanderplan/wanderplan/internal/api/planner"
)

// Config contains the handlers needed for the router setup.
type Config struct {
	PlannerHandler *planner.Handler
	HealthHandler  *health.Handler
}

// SetupRouter wires the application routes. Server-wide middleware
// (request ID, logger, recoverer) is applied in main.go before mounting.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", cfg.HealthHandler.Status)

	r.Get("/", cfg.PlannerHandler.ShowForm)
	r.Post("/plan", cfg.PlannerHandler.CreatePlan)

	return r
}
