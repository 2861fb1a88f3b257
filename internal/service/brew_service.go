package service

import (
	"context"
	"time"

	"github.com/bvyvyana/sleepbrew/internal/device"
	"github.com/bvyvyana/sleepbrew/internal/domain"
	"github.com/bvyvyana/sleepbrew/internal/repository"
	"github.com/bvyvyana/sleepbrew/pkg/pagination"
	"github.com/google/uuid"
)

type BrewService interface {
	// Brew dispatches a brew command. With an explicit coffee type the
	// trigger is MANUAL; otherwise the current recommendation is brewed.
	Brew(ctx context.Context, userID uuid.UUID, req *domain.CreateBrewRequest) (*domain.BrewLog, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.BrewFilter) (*domain.BrewListResponse, error)
}

type brewService struct {
	dispatcher     device.Dispatcher
	recommendation RecommendationService
	brewLogRepo    repository.BrewLogRepository
	userRepo       repository.UserRepository
}

// NewBrewService creates a BrewService. dispatcher may be nil when no
// machine broker is configured; Brew then fails with ErrDeviceUnavailable.
func NewBrewService(
	dispatcher device.Dispatcher,
	recommendation RecommendationService,
	brewLogRepo repository.BrewLogRepository,
	userRepo repository.UserRepository,
) BrewService {
	return &brewService{
		dispatcher:     dispatcher,
		recommendation: recommendation,
		brewLogRepo:    brewLogRepo,
		userRepo:       userRepo,
	}
}

func (s *brewService) Brew(ctx context.Context, userID uuid.UUID, req *domain.CreateBrewRequest) (*domain.BrewLog, error) {
	if s.dispatcher == nil {
		return nil, domain.ErrDeviceUnavailable
	}

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	cmd := domain.BrewCommand{
		CommandID: uuid.New(),
		DeviceID:  req.DeviceID,
	}

	if req.CoffeeType != nil {
		cmd.CoffeeType = *req.CoffeeType
		cmd.Strength = domain.DefaultPreferredStrength
		if req.Strength != nil {
			cmd.Strength = *req.Strength
		}
		cmd.Trigger = domain.TriggerManual
	} else {
		rec, err := s.recommendation.Recommend(ctx, userID, time.Now().UTC())
		if err != nil {
			return nil, err
		}
		cmd.CoffeeType = rec.CoffeeType
		cmd.Strength = rec.Strength
		cmd.Trigger = domain.TriggerRecommended
	}

	result, err := s.dispatcher.Dispatch(ctx, cmd)
	if err != nil {
		return nil, err
	}

	log := &domain.BrewLog{
		UserID:     userID,
		DeviceID:   cmd.DeviceID,
		CoffeeType: cmd.CoffeeType,
		Strength:   cmd.Strength,
		Trigger:    cmd.Trigger,
		Status:     result.Status,
		DurationMs: result.Duration.Milliseconds(),
		Detail:     result.Detail,
	}

	if err := s.brewLogRepo.Create(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *brewService) List(ctx context.Context, userID uuid.UUID, filter domain.BrewFilter) (*domain.BrewListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	logs, err := s.brewLogRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(logs) > limit
	if hasMore {
		logs = logs[:limit]
	}

	response := &domain.BrewListResponse{
		Data: make([]domain.BrewResponse, len(logs)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, log := range logs {
		response.Data[i] = log.ToResponse()
	}

	if hasMore && len(logs) > 0 {
		last := logs[len(logs)-1]
		cursor := &pagination.Cursor{
			ID:        last.ID,
			Timestamp: last.CreatedAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
