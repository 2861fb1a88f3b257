package handler

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bvyvyana/sleepbrew/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func TestConsumptionHandler_Create(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		body           string
		mockService    *MockConsumptionService
		wantStatusCode int
	}{
		{
			name:           "valid request",
			body:           `{"coffee_type": "SHORT_ESPRESSO", "strength": 0.8}`,
			mockService:    &MockConsumptionService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "missing coffee type",
			body:           `{"strength": 0.8}`,
			mockService:    &MockConsumptionService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "unknown coffee type",
			body:           `{"coffee_type": "MOCHA", "strength": 0.8}`,
			mockService:    &MockConsumptionService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "strength above 1",
			body:           `{"coffee_type": "LATTE", "strength": 1.2}`,
			mockService:    &MockConsumptionService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "user not found",
			body: `{"coffee_type": "LATTE", "strength": 0.5}`,
			mockService: &MockConsumptionService{
				recordFunc: func(ctx context.Context, id uuid.UUID, req *domain.CreateConsumptionRequest) (*domain.ConsumptionLog, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewConsumptionHandler(tt.mockService, &MockPreferenceService{})

			r := chi.NewRouter()
			r.Post("/users/{userId}/consumptions", handler.Create)

			req := httptest.NewRequest(http.MethodPost, "/users/"+userID.String()+"/consumptions", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatusCode {
				t.Errorf("Create() status = %d, want %d: %s", w.Code, tt.wantStatusCode, w.Body.String())
			}
		})
	}
}

func TestConsumptionHandler_CreateComputesCaffeine(t *testing.T) {
	userID := uuid.New()

	handler := NewConsumptionHandler(&MockConsumptionService{}, &MockPreferenceService{})

	r := chi.NewRouter()
	r.Post("/users/{userId}/consumptions", handler.Create)

	body := `{"coffee_type": "SHORT_ESPRESSO", "strength": 1.0}`
	req := httptest.NewRequest(http.MethodPost, "/users/"+userID.String()+"/consumptions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Create() status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var response domain.ConsumptionResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if math.Abs(response.CaffeineMg-63) > 1e-9 {
		t.Errorf("Create() caffeine_mg = %v, want 63", response.CaffeineMg)
	}
}

func TestConsumptionHandler_GetToday(t *testing.T) {
	userID := uuid.New()
	dayStart := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

	handler := NewConsumptionHandler(&MockConsumptionService{
		consumedTodayFunc: func(ctx context.Context, id uuid.UUID, at time.Time) (float64, time.Time, error) {
			return 126.5, dayStart, nil
		},
	}, &MockPreferenceService{})

	r := chi.NewRouter()
	r.Get("/users/{userId}/consumptions/today", handler.GetToday)

	req := httptest.NewRequest(http.MethodGet, "/users/"+userID.String()+"/consumptions/today", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GetToday() status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var response domain.DailyCaffeineResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.ConsumedMg != 126.5 {
		t.Errorf("GetToday() consumed_mg = %v, want 126.5", response.ConsumedMg)
	}
	if response.CeilingMg != domain.DefaultMaxCaffeinePerDayMg {
		t.Errorf("GetToday() ceiling_mg = %v, want default %v", response.CeilingMg, domain.DefaultMaxCaffeinePerDayMg)
	}
	if !response.DayStart.Equal(dayStart) {
		t.Errorf("GetToday() day_start = %v, want %v", response.DayStart, dayStart)
	}
}

func TestConsumptionHandler_List(t *testing.T) {
	userID := uuid.New()

	handler := NewConsumptionHandler(&MockConsumptionService{}, &MockPreferenceService{})

	r := chi.NewRouter()
	r.Get("/users/{userId}/consumptions", handler.List)

	req := httptest.NewRequest(http.MethodGet, "/users/"+userID.String()+"/consumptions?limit=5", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("List() status = %d, want 200: %s", w.Code, w.Body.String())
	}
}
