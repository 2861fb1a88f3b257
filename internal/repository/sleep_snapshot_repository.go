package repository

import (
	"context"
	"time"

	"github.com/bvyvyana/sleepbrew/internal/domain"
	"github.com/bvyvyana/sleepbrew/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SleepSnapshotRepository interface {
	Create(ctx context.Context, snap *domain.SleepSnapshot) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepSnapshot, error)
	// GetLatest returns the most recently recorded snapshot for the user,
	// or domain.ErrNoSleepData if none exists.
	GetLatest(ctx context.Context, userID uuid.UUID) (*domain.SleepSnapshot, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SleepSnapshotFilter) ([]domain.SleepSnapshot, error)
	ListByRecordedRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.SleepSnapshot, error)
	GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.SleepSnapshot, error)
}

type sleepSnapshotRepository struct {
	db *gorm.DB
}

func NewSleepSnapshotRepository(db *gorm.DB) SleepSnapshotRepository {
	return &sleepSnapshotRepository{db: db}
}

func (r *sleepSnapshotRepository) Create(ctx context.Context, snap *domain.SleepSnapshot) error {
	return r.db.WithContext(ctx).Create(snap).Error
}

func (r *sleepSnapshotRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepSnapshot, error) {
	var snap domain.SleepSnapshot
	err := r.db.WithContext(ctx).First(&snap, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &snap, nil
}

func (r *sleepSnapshotRepository) GetLatest(ctx context.Context, userID uuid.UUID) (*domain.SleepSnapshot, error) {
	var snap domain.SleepSnapshot
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC").
		First(&snap).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNoSleepData
		}
		return nil, err
	}
	return &snap, nil
}

func (r *sleepSnapshotRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SleepSnapshotFilter) ([]domain.SleepSnapshot, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC")

	if filter.From != nil {
		query = query.Where("recorded_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("recorded_at <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: records strictly older than the cursor, with
			// the id as tiebreaker.
			query = query.Where(
				"(recorded_at < ?) OR (recorded_at = ? AND id < ?)",
				cursor.Timestamp, cursor.Timestamp, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var snaps []domain.SleepSnapshot
	if err := query.Find(&snaps).Error; err != nil {
		return nil, err
	}

	return snaps, nil
}

func (r *sleepSnapshotRepository) ListByRecordedRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.SleepSnapshot, error) {
	var snaps []domain.SleepSnapshot
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recorded_at >= ? AND recorded_at <= ?", userID, from, to).
		Order("recorded_at DESC").
		Find(&snaps).Error
	if err != nil {
		return nil, err
	}
	return snaps, nil
}

func (r *sleepSnapshotRepository) GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.SleepSnapshot, error) {
	var snap domain.SleepSnapshot
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND client_request_id = ?", userID, clientRequestID).
		First(&snap).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil // Not found is not an error for idempotency check
		}
		return nil, err
	}
	return &snap, nil
}
