package repository

import (
	"context"
	"time"

	"github.com/bvyvyana/sleepbrew/internal/domain"
	"github.com/bvyvyana/sleepbrew/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BrewLogRepository interface {
	Create(ctx context.Context, log *domain.BrewLog) error
	List(ctx context.Context, userID uuid.UUID, filter domain.BrewFilter) ([]domain.BrewLog, error)
	ListByCreatedRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.BrewLog, error)
}

type brewLogRepository struct {
	db *gorm.DB
}

func NewBrewLogRepository(db *gorm.DB) BrewLogRepository {
	return &brewLogRepository{db: db}
}

func (r *brewLogRepository) Create(ctx context.Context, log *domain.BrewLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *brewLogRepository) List(ctx context.Context, userID uuid.UUID, filter domain.BrewFilter) ([]domain.BrewLog, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where(
				"(created_at < ?) OR (created_at = ? AND id < ?)",
				cursor.Timestamp, cursor.Timestamp, cursor.ID,
			)
		}
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var logs []domain.BrewLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *brewLogRepository) ListByCreatedRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.BrewLog, error) {
	var logs []domain.BrewLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at <= ?", userID, from, to).
		Order("created_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
