package repository

import (
	"context"

	"github.com/bvyvyana/sleepbrew/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PreferenceRepository interface {
	// Get returns the stored preferences for a user, or domain.ErrNotFound
	// if the user has never saved any.
	Get(ctx context.Context, userID uuid.UUID) (*domain.Preferences, error)
	Upsert(ctx context.Context, prefs *domain.Preferences) error
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.Preferences, error) {
	var prefs domain.Preferences
	err := r.db.WithContext(ctx).First(&prefs, "user_id = ?", userID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &prefs, nil
}

func (r *preferenceRepository) Upsert(ctx context.Context, prefs *domain.Preferences) error {
	// Save inserts or updates by primary key (UserID).
	return r.db.WithContext(ctx).Save(prefs).Error
}
