package service

import (
	"context"
	"time"

	"github.com/bvyvyana/sleepbrew/internal/domain"
	"github.com/bvyvyana/sleepbrew/internal/llm"
	"github.com/bvyvyana/sleepbrew/internal/repository"
	"github.com/google/uuid"
)

const (
	// Window sizes for insights
	HistoryWindowDays = 30
	RecentWindowDays  = 7
)

// InsightsService generates habit insights from sleep and caffeine history.
type InsightsService interface {
	// Generate creates habit insights for a user.
	Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
}

type insightsService struct {
	preferenceService PreferenceService
	llmClient         llm.InsightsLLM
	snapshotRepo      repository.SleepSnapshotRepository
	consumptionRepo   repository.ConsumptionRepository
	brewLogRepo       repository.BrewLogRepository
	userRepo          repository.UserRepository
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(
	preferenceService PreferenceService,
	llmClient llm.InsightsLLM,
	snapshotRepo repository.SleepSnapshotRepository,
	consumptionRepo repository.ConsumptionRepository,
	brewLogRepo repository.BrewLogRepository,
	userRepo repository.UserRepository,
) InsightsService {
	return &insightsService{
		preferenceService: preferenceService,
		llmClient:         llmClient,
		snapshotRepo:      snapshotRepo,
		consumptionRepo:   consumptionRepo,
		brewLogRepo:       brewLogRepo,
		userRepo:          userRepo,
	}
}

func (s *insightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	// Validate user exists
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	now := time.Now().UTC()

	// Aggregate history window (~30 days)
	historyFrom := now.AddDate(0, 0, -HistoryWindowDays)
	history, err := s.computeWindow(ctx, userID, historyFrom, now)
	if err != nil {
		return nil, err
	}

	// Aggregate recent window (~7 days)
	recentFrom := now.AddDate(0, 0, -RecentWindowDays)
	recent, err := s.computeWindow(ctx, userID, recentFrom, now)
	if err != nil {
		return nil, err
	}

	prefs, err := s.preferenceService.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Build insights context for LLM
	insightsCtx := &domain.InsightsContext{
		History: *history,
		Recent:  *recent,
		Ceiling: prefs.MaxCaffeinePerDayMg,
		Prefs:   prefs.ToResponse(),
	}

	llmOutput, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	response := &domain.InsightsResponse{
		Insights: *llmOutput,
	}
	response.Metrics.History = *history
	response.Metrics.Recent = *recent

	return response, nil
}

// computeWindow aggregates sleep snapshots, consumption logs and brew logs
// over [from, to] into a HabitWindow.
func (s *insightsService) computeWindow(ctx context.Context, userID uuid.UUID, from, to time.Time) (*domain.HabitWindow, error) {
	snapshots, err := s.snapshotRepo.ListByRecordedRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	consumptions, err := s.consumptionRepo.ListByConsumedRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	brews, err := s.brewLogRepo.ListByCreatedRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	window := &domain.HabitWindow{
		From:          from,
		To:            to,
		SnapshotCount: len(snapshots),
		CoffeesByType: make(map[domain.CoffeeType]int),
	}

	if len(snapshots) > 0 {
		var totalHours, totalQuality, totalDeep float64
		for _, snap := range snapshots {
			totalHours += snap.Hours()
			totalQuality += snap.QualityScore
			totalDeep += snap.DeepSleepPercent
		}
		n := float64(len(snapshots))
		window.AvgSleepHours = totalHours / n
		window.AvgQualityScore = totalQuality / n
		window.AvgDeepSleepPercent = totalDeep / n
	}

	for _, c := range consumptions {
		window.TotalCaffeineMg += c.CaffeineMg
		window.CoffeesByType[c.CoffeeType]++
	}

	days := to.Sub(from).Hours() / 24
	if days >= 1 {
		window.AvgDailyCaffeineMg = window.TotalCaffeineMg / days
	} else {
		window.AvgDailyCaffeineMg = window.TotalCaffeineMg
	}

	for _, b := range brews {
		switch b.Trigger {
		case domain.TriggerRecommended:
			window.RecommendedBrews++
		case domain.TriggerManual:
			window.ManualBrews++
		}
	}

	return window, nil
}
