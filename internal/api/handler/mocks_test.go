package handler

import (
	"context"
	"time"

	"github.com/bvyvyana/sleepbrew/internal/domain"
	"github.com/bvyvyana/sleepbrew/internal/langfuse"
	"github.com/google/uuid"
)

// MockSnapshotService is a mock implementation of SnapshotService
type MockSnapshotService struct {
	ingestFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepSnapshotRequest) (*domain.SleepSnapshot, bool, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.SleepSnapshotFilter) (*domain.SleepSnapshotListResponse, error)
}

func (m *MockSnapshotService) Ingest(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepSnapshotRequest) (*domain.SleepSnapshot, bool, error) {
	if m.ingestFunc != nil {
		return m.ingestFunc(ctx, userID, req)
	}
	return &domain.SleepSnapshot{
		ID:              uuid.New(),
		UserID:          userID,
		DurationSeconds: req.DurationSeconds,
		QualityScore:    req.QualityScore,
		RecordedAt:      time.Now().UTC(),
		CreatedAt:       time.Now(),
	}, false, nil
}

func (m *MockSnapshotService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepSnapshotFilter) (*domain.SleepSnapshotListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.SleepSnapshotListResponse{
		Data:       []domain.SleepSnapshotResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockPreferenceService is a mock implementation of PreferenceService
type MockPreferenceService struct {
	getFunc    func(ctx context.Context, userID uuid.UUID) (*domain.Preferences, error)
	updateFunc func(ctx context.Context, userID uuid.UUID, req *domain.UpdatePreferencesRequest) (*domain.Preferences, error)
}

func (m *MockPreferenceService) Get(ctx context.Context, userID uuid.UUID) (*domain.Preferences, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID)
	}
	return &domain.Preferences{
		UserID:              userID,
		PreferredStrength:   domain.DefaultPreferredStrength,
		MaxCaffeinePerDayMg: domain.DefaultMaxCaffeinePerDayMg,
	}, nil
}

func (m *MockPreferenceService) Update(ctx context.Context, userID uuid.UUID, req *domain.UpdatePreferencesRequest) (*domain.Preferences, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, req)
	}
	return &domain.Preferences{
		UserID:              userID,
		PreferredType:       req.PreferredType,
		PreferredStrength:   req.PreferredStrength,
		MaxCaffeinePerDayMg: req.MaxCaffeinePerDayMg,
	}, nil
}

func (m *MockPreferenceService) EnginePreferences(ctx context.Context, userID uuid.UUID) (domain.UserPreferences, error) {
	return domain.DefaultUserPreferences(), nil
}

// MockConsumptionService is a mock implementation of ConsumptionService
type MockConsumptionService struct {
	recordFunc        func(ctx context.Context, userID uuid.UUID, req *domain.CreateConsumptionRequest) (*domain.ConsumptionLog, error)
	listFunc          func(ctx context.Context, userID uuid.UUID, filter domain.ConsumptionFilter) (*domain.ConsumptionListResponse, error)
	consumedTodayFunc func(ctx context.Context, userID uuid.UUID, at time.Time) (float64, time.Time, error)
}

func (m *MockConsumptionService) Record(ctx context.Context, userID uuid.UUID, req *domain.CreateConsumptionRequest) (*domain.ConsumptionLog, error) {
	if m.recordFunc != nil {
		return m.recordFunc(ctx, userID, req)
	}
	return &domain.ConsumptionLog{
		ID:         uuid.New(),
		UserID:     userID,
		CoffeeType: req.CoffeeType,
		Strength:   req.Strength,
		CaffeineMg: req.CoffeeType.CaffeineContentMg() * req.Strength,
		ConsumedAt: time.Now().UTC(),
	}, nil
}

func (m *MockConsumptionService) List(ctx context.Context, userID uuid.UUID, filter domain.ConsumptionFilter) (*domain.ConsumptionListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.ConsumptionListResponse{
		Data:       []domain.ConsumptionResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockConsumptionService) ConsumedToday(ctx context.Context, userID uuid.UUID, at time.Time) (float64, time.Time, error) {
	if m.consumedTodayFunc != nil {
		return m.consumedTodayFunc(ctx, userID, at)
	}
	return 0, at.Truncate(24 * time.Hour), nil
}

// MockRecommendationService is a mock implementation of RecommendationService
type MockRecommendationService struct {
	recommendFunc func(ctx context.Context, userID uuid.UUID, at time.Time) (*domain.RecommendationResponse, error)
}

func (m *MockRecommendationService) Recommend(ctx context.Context, userID uuid.UUID, at time.Time) (*domain.RecommendationResponse, error) {
	if m.recommendFunc != nil {
		return m.recommendFunc(ctx, userID, at)
	}
	return &domain.RecommendationResponse{
		CoffeeType: domain.CoffeeTypeLongEspresso,
		Strength:   0.6,
		Urgency:    0.5,
		Confidence: 0.9,
		Reasoning:  []string{"Sleep duration was adequate"},
		ComputedAt: at,
	}, nil
}

// MockBrewService is a mock implementation of BrewService
type MockBrewService struct {
	brewFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateBrewRequest) (*domain.BrewLog, error)
	listFunc func(ctx context.Context, userID uuid.UUID, filter domain.BrewFilter) (*domain.BrewListResponse, error)
}

func (m *MockBrewService) Brew(ctx context.Context, userID uuid.UUID, req *domain.CreateBrewRequest) (*domain.BrewLog, error) {
	if m.brewFunc != nil {
		return m.brewFunc(ctx, userID, req)
	}
	log := &domain.BrewLog{
		ID:         uuid.New(),
		UserID:     userID,
		DeviceID:   req.DeviceID,
		CoffeeType: domain.CoffeeTypeLongEspresso,
		Strength:   0.6,
		Trigger:    domain.TriggerRecommended,
		Status:     domain.BrewStatusSucceeded,
		CreatedAt:  time.Now(),
	}
	if req.CoffeeType != nil {
		log.CoffeeType = *req.CoffeeType
		log.Trigger = domain.TriggerManual
	}
	return log, nil
}

func (m *MockBrewService) List(ctx context.Context, userID uuid.UUID, filter domain.BrewFilter) (*domain.BrewListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.BrewListResponse{
		Data:       []domain.BrewResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// mockInsightsService is a mock implementation of InsightsService
type mockInsightsService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
}

func (m *mockInsightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID)
	}
	return &domain.InsightsResponse{
		Insights: domain.LLMInsightsOutput{
			Summary:      "Caffeine intake is steady.",
			Observations: []string{"Consistent morning coffee"},
			Guidance:     []string{"Skip the late afternoon espresso"},
		},
	}, nil
}

// mockLangfuseClient for testing
type mockLangfuseClient struct {
	enabled    bool
	scoreCalls int
}

func (m *mockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *mockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return "", nil
}

func (m *mockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scoreCalls++
	return nil
}

func (m *mockLangfuseClient) Flush(ctx context.Context) error {
	return nil
}
