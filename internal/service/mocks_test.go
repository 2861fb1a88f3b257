package service

import (
	"context"
	"sort"
	"time"

	"github.com/bvyvyana/sleepbrew/internal/domain"
	"github.com/google/uuid"
)

// MockSleepSnapshotRepository is a mock implementation of SleepSnapshotRepository
type MockSleepSnapshotRepository struct {
	snapshots       map[uuid.UUID]*domain.SleepSnapshot
	clientRequestID map[string]*domain.SleepSnapshot
	listResult      []domain.SleepSnapshot
	err             error
}

func NewMockSleepSnapshotRepository() *MockSleepSnapshotRepository {
	return &MockSleepSnapshotRepository{
		snapshots:       make(map[uuid.UUID]*domain.SleepSnapshot),
		clientRequestID: make(map[string]*domain.SleepSnapshot),
	}
}

func (m *MockSleepSnapshotRepository) Create(ctx context.Context, snap *domain.SleepSnapshot) error {
	if m.err != nil {
		return m.err
	}
	if snap.ID == uuid.Nil {
		snap.ID = uuid.New()
	}
	snap.CreatedAt = time.Now()
	m.snapshots[snap.ID] = snap
	if snap.ClientRequestID != nil {
		key := snap.UserID.String() + ":" + *snap.ClientRequestID
		m.clientRequestID[key] = snap
	}
	return nil
}

func (m *MockSleepSnapshotRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepSnapshot, error) {
	if m.err != nil {
		return nil, m.err
	}
	snap, ok := m.snapshots[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return snap, nil
}

func (m *MockSleepSnapshotRepository) GetLatest(ctx context.Context, userID uuid.UUID) (*domain.SleepSnapshot, error) {
	if m.err != nil {
		return nil, m.err
	}
	var latest *domain.SleepSnapshot
	for _, snap := range m.snapshots {
		if snap.UserID != userID {
			continue
		}
		if latest == nil || snap.RecordedAt.After(latest.RecordedAt) {
			latest = snap
		}
	}
	if latest == nil {
		return nil, domain.ErrNoSleepData
	}
	return latest, nil
}

func (m *MockSleepSnapshotRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SleepSnapshotFilter) ([]domain.SleepSnapshot, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.SleepSnapshot, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	var result []domain.SleepSnapshot
	for _, snap := range m.snapshots {
		if snap.UserID == userID {
			result = append(result, *snap)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].RecordedAt.After(result[j].RecordedAt)
	})
	return result, nil
}

func (m *MockSleepSnapshotRepository) ListByRecordedRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.SleepSnapshot, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.SleepSnapshot
	for _, snap := range m.snapshots {
		if snap.UserID != userID {
			continue
		}
		if snap.RecordedAt.Before(from) || snap.RecordedAt.After(to) {
			continue
		}
		result = append(result, *snap)
	}
	return result, nil
}

func (m *MockSleepSnapshotRepository) GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.SleepSnapshot, error) {
	if m.err != nil {
		return nil, m.err
	}
	key := userID.String() + ":" + clientRequestID
	if snap, ok := m.clientRequestID[key]; ok {
		return snap, nil
	}
	return nil, nil
}

func (m *MockSleepSnapshotRepository) SetError(err error) {
	m.err = err
}

// MockPreferenceRepository is a mock implementation of PreferenceRepository
type MockPreferenceRepository struct {
	prefs map[uuid.UUID]*domain.Preferences
	err   error
}

func NewMockPreferenceRepository() *MockPreferenceRepository {
	return &MockPreferenceRepository{
		prefs: make(map[uuid.UUID]*domain.Preferences),
	}
}

func (m *MockPreferenceRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.Preferences, error) {
	if m.err != nil {
		return nil, m.err
	}
	prefs, ok := m.prefs[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return prefs, nil
}

func (m *MockPreferenceRepository) Upsert(ctx context.Context, prefs *domain.Preferences) error {
	if m.err != nil {
		return m.err
	}
	prefs.UpdatedAt = time.Now()
	m.prefs[prefs.UserID] = prefs
	return nil
}

func (m *MockPreferenceRepository) SetError(err error) {
	m.err = err
}

// MockConsumptionRepository is a mock implementation of ConsumptionRepository
type MockConsumptionRepository struct {
	logs map[uuid.UUID]*domain.ConsumptionLog
	err  error
}

func NewMockConsumptionRepository() *MockConsumptionRepository {
	return &MockConsumptionRepository{
		logs: make(map[uuid.UUID]*domain.ConsumptionLog),
	}
}

func (m *MockConsumptionRepository) Create(ctx context.Context, log *domain.ConsumptionLog) error {
	if m.err != nil {
		return m.err
	}
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	log.CreatedAt = time.Now()
	m.logs[log.ID] = log
	return nil
}

func (m *MockConsumptionRepository) List(ctx context.Context, userID uuid.UUID, filter domain.ConsumptionFilter) ([]domain.ConsumptionLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.ConsumptionLog
	for _, log := range m.logs {
		if log.UserID == userID {
			result = append(result, *log)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ConsumedAt.After(result[j].ConsumedAt)
	})
	return result, nil
}

func (m *MockConsumptionRepository) ListByConsumedRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.ConsumptionLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.ConsumptionLog
	for _, log := range m.logs {
		if log.UserID != userID {
			continue
		}
		if log.ConsumedAt.Before(from) || log.ConsumedAt.After(to) {
			continue
		}
		result = append(result, *log)
	}
	return result, nil
}

func (m *MockConsumptionRepository) SumCaffeineSince(ctx context.Context, userID uuid.UUID, since time.Time) (float64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var total float64
	for _, log := range m.logs {
		if log.UserID != userID {
			continue
		}
		if log.ConsumedAt.Before(since) {
			continue
		}
		total += log.CaffeineMg
	}
	return total, nil
}

func (m *MockConsumptionRepository) SetError(err error) {
	m.err = err
}

// MockBrewLogRepository is a mock implementation of BrewLogRepository
type MockBrewLogRepository struct {
	logs map[uuid.UUID]*domain.BrewLog
	err  error
}

func NewMockBrewLogRepository() *MockBrewLogRepository {
	return &MockBrewLogRepository{
		logs: make(map[uuid.UUID]*domain.BrewLog),
	}
}

func (m *MockBrewLogRepository) Create(ctx context.Context, log *domain.BrewLog) error {
	if m.err != nil {
		return m.err
	}
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	log.CreatedAt = time.Now()
	m.logs[log.ID] = log
	return nil
}

func (m *MockBrewLogRepository) List(ctx context.Context, userID uuid.UUID, filter domain.BrewFilter) ([]domain.BrewLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.BrewLog
	for _, log := range m.logs {
		if log.UserID == userID {
			result = append(result, *log)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *MockBrewLogRepository) ListByCreatedRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.BrewLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.BrewLog
	for _, log := range m.logs {
		if log.UserID != userID {
			continue
		}
		if log.CreatedAt.Before(from) || log.CreatedAt.After(to) {
			continue
		}
		result = append(result, *log)
	}
	return result, nil
}

func (m *MockBrewLogRepository) SetError(err error) {
	m.err = err
}

// MockDispatcher is a mock implementation of device.Dispatcher
type MockDispatcher struct {
	dispatched []domain.BrewCommand
	result     domain.BrewResult
	err        error
}

func NewMockDispatcher() *MockDispatcher {
	return &MockDispatcher{
		result: domain.BrewResult{Status: domain.BrewStatusSucceeded},
	}
}

func (m *MockDispatcher) Dispatch(ctx context.Context, cmd domain.BrewCommand) (domain.BrewResult, error) {
	m.dispatched = append(m.dispatched, cmd)
	if m.err != nil {
		return domain.BrewResult{Status: domain.BrewStatusFailed, Detail: m.err.Error()}, m.err
	}
	return m.result, nil
}

// MockInsightsLLM is a mock implementation of llm.InsightsLLM
type MockInsightsLLM struct {
	output  *domain.LLMInsightsOutput
	lastCtx *domain.InsightsContext
	err     error
}

func NewMockInsightsLLM() *MockInsightsLLM {
	return &MockInsightsLLM{
		output: &domain.LLMInsightsOutput{
			Summary:      "Caffeine intake is steady and sleep quality is stable.",
			Observations: []string{"Average sleep hovers around seven hours."},
			Guidance:     []string{"Keep the last coffee before mid-afternoon."},
		},
	}
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	m.lastCtx = insightsCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}
