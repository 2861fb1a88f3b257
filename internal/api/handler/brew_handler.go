package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bvyvyana/sleepbrew/internal/api/validation"
	"github.com/bvyvyana/sleepbrew/internal/domain"
	"github.com/bvyvyana/sleepbrew/internal/service"
	"github.com/bvyvyana/sleepbrew/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type BrewHandler struct {
	service service.BrewService
}

func NewBrewHandler(service service.BrewService) *BrewHandler {
	return &BrewHandler{service: service}
}

// Create handles POST /v1/users/{userId}/brews
// @Summary Dispatch a brew command
// @Description Send a brew command to a coffee machine. With coffee_type set the brew is MANUAL; omit it to brew the engine's current recommendation.
// @Tags brews
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.CreateBrewRequest true "Brew request"
// @Success 201 {object} domain.BrewResponse "Brew dispatched"
// @Failure 400 {object} problem.Problem "Invalid user ID or malformed JSON"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid fields, or no sleep data for a recommended brew"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 503 {object} problem.Problem "Machine broker unavailable"
// @Router /users/{userId}/brews [post]
func (h *BrewHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateBrewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	log, err := h.service.Brew(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrNoSleepData) {
			problem.New(http.StatusUnprocessableEntity, "no-sleep-data", "No Sleep Data", "No sleep snapshot available to base a recommendation on").Write(w)
			return
		}
		if errors.Is(err, domain.ErrDeviceUnavailable) {
			problem.ServiceUnavailable("Coffee machine broker is not available").Write(w)
			return
		}
		problem.InternalError("Failed to dispatch brew").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(log.ToResponse())
}

// List handles GET /v1/users/{userId}/brews
// @Summary List brew history
// @Description Fetch paginated brew history sorted by created_at descending (newest first).
// @Tags brews
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.BrewListResponse "Brews with pagination"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/brews [get]
func (h *BrewHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var filter domain.BrewFilter
	_, _, limit, cursor, fieldErrors := parseRangeParams(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}
	filter.Limit = limit
	filter.Cursor = cursor

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list brews").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
