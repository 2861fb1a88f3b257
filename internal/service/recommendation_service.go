package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bvyvyana/sleepbrew/internal/domain"
	"github.com/bvyvyana/sleepbrew/internal/engine"
	"github.com/bvyvyana/sleepbrew/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RecommendationService assembles the decision engine's inputs and runs it.
// The engine itself is a pure function; everything here is the
// orchestration around it (latest snapshot, preferences, caffeine budget,
// local time context).
type RecommendationService interface {
	// Recommend computes the coffee recommendation for the user as of the
	// given instant.
	Recommend(ctx context.Context, userID uuid.UUID, at time.Time) (*domain.RecommendationResponse, error)
}

type recommendationService struct {
	snapshotRepo       repository.SleepSnapshotRepository
	preferenceService  PreferenceService
	consumptionService ConsumptionService
	userRepo           repository.UserRepository
}

func NewRecommendationService(
	snapshotRepo repository.SleepSnapshotRepository,
	preferenceService PreferenceService,
	consumptionService ConsumptionService,
	userRepo repository.UserRepository,
) RecommendationService {
	return &recommendationService{
		snapshotRepo:       snapshotRepo,
		preferenceService:  preferenceService,
		consumptionService: consumptionService,
		userRepo:           userRepo,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, userID uuid.UUID, at time.Time) (*domain.RecommendationResponse, error) {
	tracer := otel.Tracer("sleepbrew-api/recommendation")
	ctx, span := tracer.Start(ctx, "RecommendationService.Recommend",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("recommendation.at", at.Format(time.RFC3339)),
		),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	snap, err := s.snapshotRepo.GetLatest(ctx, userID)
	if err != nil {
		return nil, err
	}

	prefs, err := s.preferenceService.EnginePreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	consumedMg, _, err := s.consumptionService.ConsumedToday(ctx, userID, at)
	if err != nil {
		return nil, err
	}

	tc := domain.TimeContextAt(at, user.Location())

	rec := engine.Decide(*snap, prefs, tc, consumedMg)

	span.SetAttributes(
		attribute.String("recommendation.type", string(rec.Type)),
		attribute.Float64("recommendation.strength", rec.Strength),
		attribute.Float64("recommendation.urgency", rec.Urgency),
		attribute.Float64("recommendation.confidence", rec.Confidence),
		attribute.Float64("caffeine.consumed_mg", consumedMg),
	)
	if outputJSON, err := json.Marshal(rec); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	response := &domain.RecommendationResponse{
		CoffeeType:          rec.Type,
		Strength:            rec.Strength,
		Urgency:             rec.Urgency,
		Confidence:          rec.Confidence,
		Reasoning:           rec.Reasoning,
		ProjectedCaffeineMg: rec.ProjectedCaffeineMg(),
		ConsumedTodayMg:     consumedMg,
		Snapshot:            snap.ToResponse(),
		ComputedAt:          at,
	}
	return response, nil
}
