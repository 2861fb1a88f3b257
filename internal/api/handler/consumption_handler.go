package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/bvyvyana/sleepbrew/internal/api/validation"
	"github.com/bvyvyana/sleepbrew/internal/domain"
	"github.com/bvyvyana/sleepbrew/internal/service"
	"github.com/bvyvyana/sleepbrew/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ConsumptionHandler struct {
	service           service.ConsumptionService
	preferenceService service.PreferenceService
}

func NewConsumptionHandler(service service.ConsumptionService, preferenceService service.PreferenceService) *ConsumptionHandler {
	return &ConsumptionHandler{
		service:           service,
		preferenceService: preferenceService,
	}
}

// Create handles POST /v1/users/{userId}/consumptions
// @Summary Record a consumed coffee
// @Description Log a coffee against the daily caffeine budget. Caffeine is computed from the type's content scaled by strength.
// @Tags consumptions
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.CreateConsumptionRequest true "Consumed coffee data"
// @Success 201 {object} domain.ConsumptionResponse "Consumption recorded"
// @Failure 400 {object} problem.Problem "Invalid user ID or malformed JSON"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/consumptions [post]
func (h *ConsumptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateConsumptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	log, err := h.service.Record(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to record consumption").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(log.ToResponse())
}

// List handles GET /v1/users/{userId}/consumptions
// @Summary List consumed coffees
// @Description Fetch paginated consumption history sorted by consumed_at descending (newest first).
// @Tags consumptions
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param from query string false "Start of date range (RFC3339)" format(date-time) example(2024-01-01T00:00:00Z)
// @Param to query string false "End of date range (RFC3339)" format(date-time) example(2024-01-31T23:59:59Z)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.ConsumptionListResponse "Consumptions with pagination"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/consumptions [get]
func (h *ConsumptionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var filter domain.ConsumptionFilter
	from, to, limit, cursor, fieldErrors := parseRangeParams(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}
	filter.From = from
	filter.To = to
	filter.Limit = limit
	filter.Cursor = cursor

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list consumptions").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetToday handles GET /v1/users/{userId}/consumptions/today
// @Summary Get today's caffeine total
// @Description Report the caffeine consumed since local midnight in the user's timezone, alongside the configured daily ceiling.
// @Tags consumptions
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.DailyCaffeineResponse "Running daily caffeine total"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/consumptions/today [get]
func (h *ConsumptionHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	total, dayStart, err := h.service.ConsumedToday(r.Context(), userID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute daily caffeine").Write(w)
		return
	}

	prefs, err := h.preferenceService.Get(r.Context(), userID)
	if err != nil {
		problem.InternalError("Failed to get preferences").Write(w)
		return
	}

	response := domain.DailyCaffeineResponse{
		DayStart:   dayStart,
		ConsumedMg: total,
		CeilingMg:  prefs.MaxCaffeinePerDayMg,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
