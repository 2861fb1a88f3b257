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

type PreferenceHandler struct {
	service service.PreferenceService
}

func NewPreferenceHandler(service service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{service: service}
}

// Get handles GET /v1/users/{userId}/preferences
// @Summary Get coffee preferences
// @Description Fetch the user's stored coffee preferences. Returns engine defaults if the user never saved any.
// @Tags preferences
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.PreferencesResponse "Stored or default preferences"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/preferences [get]
func (h *PreferenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	prefs, err := h.service.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to get preferences").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(prefs.ToResponse())
}

// Update handles PUT /v1/users/{userId}/preferences
// @Summary Update coffee preferences
// @Description Store the user's preferred coffee type, strength, and daily caffeine ceiling.
// @Tags preferences
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.UpdatePreferencesRequest true "Preference data"
// @Success 200 {object} domain.PreferencesResponse "Updated preferences"
// @Failure 400 {object} problem.Problem "Invalid user ID or malformed JSON"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/preferences [put]
func (h *PreferenceHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.UpdatePreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	prefs, err := h.service.Update(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to update preferences").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(prefs.ToResponse())
}
