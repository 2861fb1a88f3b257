package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/bvyvyana/sleepbrew/docs"
	"github.com/bvyvyana/sleepbrew/internal/api/handler"
	"github.com/bvyvyana/sleepbrew/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler           *handler.UserHandler
	snapshotHandler       *handler.SnapshotHandler
	preferenceHandler     *handler.PreferenceHandler
	consumptionHandler    *handler.ConsumptionHandler
	recommendationHandler *handler.RecommendationHandler
	brewHandler           *handler.BrewHandler
	insightsHandler       *handler.InsightsHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	snapshotHandler *handler.SnapshotHandler,
	preferenceHandler *handler.PreferenceHandler,
	consumptionHandler *handler.ConsumptionHandler,
	recommendationHandler *handler.RecommendationHandler,
	brewHandler *handler.BrewHandler,
	insightsHandler *handler.InsightsHandler,
) *Router {
	return &Router{
		userHandler:           userHandler,
		snapshotHandler:       snapshotHandler,
		preferenceHandler:     preferenceHandler,
		consumptionHandler:    consumptionHandler,
		recommendationHandler: recommendationHandler,
		brewHandler:           brewHandler,
		insightsHandler:       insightsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)

			// Sleep snapshots
			r.Route("/{userId}/sleep-snapshots", func(r chi.Router) {
				r.Post("/", rt.snapshotHandler.Create)
				r.Get("/", rt.snapshotHandler.List)
			})

			// Coffee preferences
			r.Route("/{userId}/preferences", func(r chi.Router) {
				r.Get("/", rt.preferenceHandler.Get)
				r.Put("/", rt.preferenceHandler.Update)
			})

			// Caffeine consumption
			r.Route("/{userId}/consumptions", func(r chi.Router) {
				r.Post("/", rt.consumptionHandler.Create)
				r.Get("/", rt.consumptionHandler.List)
				r.Get("/today", rt.consumptionHandler.GetToday)
			})

			// Decision engine
			r.Get("/{userId}/recommendation", rt.recommendationHandler.Get)

			// Machine brews
			r.Route("/{userId}/brews", func(r chi.Router) {
				r.Post("/", rt.brewHandler.Create)
				r.Get("/", rt.brewHandler.List)
			})

			// Habit insights
			r.Route("/{userId}/insights", func(r chi.Router) {
				r.Get("/", rt.insightsHandler.GetInsights)
				r.Post("/feedback", rt.insightsHandler.PostFeedback)
			})
		})
	})

	return r
}
