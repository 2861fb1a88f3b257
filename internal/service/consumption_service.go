package service

import (
	"context"
	"time"

	"github.com/bvyvyana/sleepbrew/internal/domain"
	"github.com/bvyvyana/sleepbrew/internal/repository"
	"github.com/bvyvyana/sleepbrew/pkg/pagination"
	"github.com/google/uuid"
)

type ConsumptionService interface {
	// Record stores a consumed coffee; caffeine is computed from the
	// type's content scaled by strength.
	Record(ctx context.Context, userID uuid.UUID, req *domain.CreateConsumptionRequest) (*domain.ConsumptionLog, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.ConsumptionFilter) (*domain.ConsumptionListResponse, error)
	// ConsumedToday returns the caffeine consumed since local midnight in
	// the user's timezone, along with the day start used.
	ConsumedToday(ctx context.Context, userID uuid.UUID, at time.Time) (float64, time.Time, error)
}

type consumptionService struct {
	repo     repository.ConsumptionRepository
	userRepo repository.UserRepository
}

func NewConsumptionService(repo repository.ConsumptionRepository, userRepo repository.UserRepository) ConsumptionService {
	return &consumptionService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *consumptionService) Record(ctx context.Context, userID uuid.UUID, req *domain.CreateConsumptionRequest) (*domain.ConsumptionLog, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	consumedAt := time.Now().UTC()
	if req.ConsumedAt != nil {
		consumedAt = req.ConsumedAt.UTC()
	}

	log := &domain.ConsumptionLog{
		UserID:     userID,
		CoffeeType: req.CoffeeType,
		Strength:   req.Strength,
		CaffeineMg: req.CoffeeType.CaffeineContentMg() * req.Strength,
		ConsumedAt: consumedAt,
	}

	if err := s.repo.Create(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *consumptionService) List(ctx context.Context, userID uuid.UUID, filter domain.ConsumptionFilter) (*domain.ConsumptionListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	logs, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(logs) > limit
	if hasMore {
		logs = logs[:limit]
	}

	response := &domain.ConsumptionListResponse{
		Data: make([]domain.ConsumptionResponse, len(logs)),
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
			Timestamp: last.ConsumedAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *consumptionService) ConsumedToday(ctx context.Context, userID uuid.UUID, at time.Time) (float64, time.Time, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return 0, time.Time{}, err
	}

	loc := user.Location()
	local := at.In(loc)
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	total, err := s.repo.SumCaffeineSince(ctx, userID, dayStart.UTC())
	if err != nil {
		return 0, time.Time{}, err
	}
	return total, dayStart, nil
}
