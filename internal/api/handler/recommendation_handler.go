package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/bvyvyana/sleepbrew/internal/domain"
	"github.com/bvyvyana/sleepbrew/internal/service"
	"github.com/bvyvyana/sleepbrew/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	service service.RecommendationService
}

func NewRecommendationHandler(service service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{service: service}
}

// Get handles GET /v1/users/{userId}/recommendation
// @Summary Get the current coffee recommendation
// @Description Run the decision engine against the latest sleep snapshot, stored preferences, and today's caffeine intake. Pass at to compute the recommendation as of another instant.
// @Tags recommendation
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param at query string false "Instant to compute for (RFC3339, defaults to now)" format(date-time) example(2024-01-16T07:12:00Z)
// @Success 200 {object} domain.RecommendationResponse "Coffee recommendation"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters or no sleep data available"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/recommendation [get]
func (h *RecommendationHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	at := time.Now().UTC()
	if atStr := r.URL.Query().Get("at"); atStr != "" {
		parsed, err := time.Parse(time.RFC3339, atStr)
		if err != nil {
			problem.ValidationError("Invalid query parameters", []problem.FieldError{{
				Field:   "at",
				Message: "must be a valid RFC3339 timestamp",
			}}).Write(w)
			return
		}
		at = parsed.UTC()
	}

	rec, err := h.service.Recommend(r.Context(), userID, at)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrNoSleepData) {
			problem.New(http.StatusUnprocessableEntity, "no-sleep-data", "No Sleep Data", "No sleep snapshot available for this user").Write(w)
			return
		}
		problem.InternalError("Failed to compute recommendation").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}
