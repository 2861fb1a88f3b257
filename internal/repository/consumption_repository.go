package repository

import (
	"context"
	"time"

	"github.com/bvyvyana/sleepbrew/internal/domain"
	"github.com/bvyvyana/sleepbrew/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConsumptionRepository interface {
	Create(ctx context.Context, log *domain.ConsumptionLog) error
	List(ctx context.Context, userID uuid.UUID, filter domain.ConsumptionFilter) ([]domain.ConsumptionLog, error)
	ListByConsumedRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.ConsumptionLog, error)
	// SumCaffeineSince returns the total caffeine (mg) consumed at or
	// after the given instant.
	SumCaffeineSince(ctx context.Context, userID uuid.UUID, since time.Time) (float64, error)
}

type consumptionRepository struct {
	db *gorm.DB
}

func NewConsumptionRepository(db *gorm.DB) ConsumptionRepository {
	return &consumptionRepository{db: db}
}

func (r *consumptionRepository) Create(ctx context.Context, log *domain.ConsumptionLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *consumptionRepository) List(ctx context.Context, userID uuid.UUID, filter domain.ConsumptionFilter) ([]domain.ConsumptionLog, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("consumed_at DESC")

	if filter.From != nil {
		query = query.Where("consumed_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("consumed_at <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where(
				"(consumed_at < ?) OR (consumed_at = ? AND id < ?)",
				cursor.Timestamp, cursor.Timestamp, cursor.ID,
			)
		}
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var logs []domain.ConsumptionLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *consumptionRepository) SumCaffeineSince(ctx context.Context, userID uuid.UUID, since time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&domain.ConsumptionLog{}).
		Where("user_id = ? AND consumed_at >= ?", userID, since).
		Select("COALESCE(SUM(caffeine_mg), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *consumptionRepository) ListByConsumedRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.ConsumptionLog, error) {
	var logs []domain.ConsumptionLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND consumed_at >= ? AND consumed_at <= ?", userID, from, to).
		Order("consumed_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
