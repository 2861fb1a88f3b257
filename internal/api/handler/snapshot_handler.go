package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/bvyvyana/sleepbrew/internal/api/validation"
	"github.com/bvyvyana/sleepbrew/internal/domain"
	"github.com/bvyvyana/sleepbrew/internal/service"
	"github.com/bvyvyana/sleepbrew/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type SnapshotHandler struct {
	service service.SnapshotService
}

func NewSnapshotHandler(service service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{service: service}
}

// Create handles POST /v1/users/{userId}/sleep-snapshots
// @Summary Ingest a sleep snapshot
// @Description Store one night's sleep metrics. Use client_request_id for safe retries (idempotency). Returns 200 if duplicate request, 201 if new.
// @Tags sleep-snapshots
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.CreateSleepSnapshotRequest true "Sleep snapshot data"
// @Success 201 {object} domain.SleepSnapshotResponse "New snapshot stored"
// @Success 200 {object} domain.SleepSnapshotResponse "Existing snapshot returned (idempotent duplicate)"
// @Failure 400 {object} problem.Problem "Invalid user ID or malformed JSON"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-snapshots [post]
func (h *SnapshotHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateSleepSnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	snap, isExisting, err := h.service.Ingest(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to store sleep snapshot").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if isExisting {
		w.WriteHeader(http.StatusOK) // Return 200 for idempotent duplicate
	} else {
		w.WriteHeader(http.StatusCreated)
	}
	json.NewEncoder(w).Encode(snap.ToResponse())
}

// List handles GET /v1/users/{userId}/sleep-snapshots
// @Summary List sleep snapshots
// @Description Fetch paginated snapshot history. Filter by date range. Results sorted by recorded_at descending (newest first).
// @Tags sleep-snapshots
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param from query string false "Start of date range (RFC3339)" format(date-time) example(2024-01-01T00:00:00Z)
// @Param to query string false "End of date range (RFC3339)" format(date-time) example(2024-01-31T23:59:59Z)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.SleepSnapshotListResponse "Snapshots with pagination"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-snapshots [get]
func (h *SnapshotHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter, fieldErrors := parseSnapshotFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list sleep snapshots").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseSnapshotFilter(r *http.Request) (domain.SleepSnapshotFilter, []problem.FieldError) {
	var filter domain.SleepSnapshotFilter

	from, to, limit, cursor, fieldErrors := parseRangeParams(r)
	filter.From = from
	filter.To = to
	filter.Limit = limit
	filter.Cursor = cursor

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}

// parseRangeParams parses the shared from/to/limit/cursor query parameters.
func parseRangeParams(r *http.Request) (from, to *time.Time, limit int, cursor string, fieldErrors []problem.FieldError) {
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			from = &parsed
		}
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		parsed, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			to = &parsed
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			limit = parsed
		}
	}

	cursor = r.URL.Query().Get("cursor")
	return from, to, limit, cursor, fieldErrors
}
