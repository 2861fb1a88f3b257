package service

import (
	"context"
	"errors"

	"github.com/bvyvyana/sleepbrew/internal/domain"
	"github.com/bvyvyana/sleepbrew/internal/repository"
	"github.com/google/uuid"
)

type PreferenceService interface {
	// Get returns stored preferences, or the engine defaults if the user
	// never saved any.
	Get(ctx context.Context, userID uuid.UUID) (*domain.Preferences, error)
	Update(ctx context.Context, userID uuid.UUID, req *domain.UpdatePreferencesRequest) (*domain.Preferences, error)
	// EnginePreferences returns the read-only view the decision engine consumes.
	EnginePreferences(ctx context.Context, userID uuid.UUID) (domain.UserPreferences, error)
}

type preferenceService struct {
	repo     repository.PreferenceRepository
	userRepo repository.UserRepository
}

func NewPreferenceService(repo repository.PreferenceRepository, userRepo repository.UserRepository) PreferenceService {
	return &preferenceService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *preferenceService) Get(ctx context.Context, userID uuid.UUID) (*domain.Preferences, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	prefs, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return defaultPreferences(userID), nil
		}
		return nil, err
	}
	return prefs, nil
}

func (s *preferenceService) Update(ctx context.Context, userID uuid.UUID, req *domain.UpdatePreferencesRequest) (*domain.Preferences, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	prefs := &domain.Preferences{
		UserID:              userID,
		PreferredType:       req.PreferredType,
		PreferredStrength:   req.PreferredStrength,
		MaxCaffeinePerDayMg: req.MaxCaffeinePerDayMg,
	}

	if err := s.repo.Upsert(ctx, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

func (s *preferenceService) EnginePreferences(ctx context.Context, userID uuid.UUID) (domain.UserPreferences, error) {
	prefs, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DefaultUserPreferences(), nil
		}
		return domain.UserPreferences{}, err
	}
	return prefs.ToUserPreferences(), nil
}

func defaultPreferences(userID uuid.UUID) *domain.Preferences {
	return &domain.Preferences{
		UserID:              userID,
		PreferredStrength:   domain.DefaultPreferredStrength,
		MaxCaffeinePerDayMg: domain.DefaultMaxCaffeinePerDayMg,
	}
}
