package service

import (
	"context"
	"time"

	"github.com/bvyvyana/sleepbrew/internal/domain"
	"github.com/bvyvyana/sleepbrew/internal/repository"
	"github.com/bvyvyana/sleepbrew/pkg/pagination"
	"github.com/google/uuid"
)

type SnapshotService interface {
	// Ingest stores a sleep snapshot. Returns (snapshot, isExisting, error);
	// isExisting is true when an idempotent duplicate was detected.
	Ingest(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepSnapshotRequest) (*domain.SleepSnapshot, bool, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SleepSnapshotFilter) (*domain.SleepSnapshotListResponse, error)
}

type snapshotService struct {
	repo     repository.SleepSnapshotRepository
	userRepo repository.UserRepository
}

func NewSnapshotService(repo repository.SleepSnapshotRepository, userRepo repository.UserRepository) SnapshotService {
	return &snapshotService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *snapshotService) Ingest(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepSnapshotRequest) (*domain.SleepSnapshot, bool, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if !exists {
		return nil, false, domain.ErrNotFound
	}

	// Check for idempotency (duplicate client_request_id)
	if req.ClientRequestID != nil && *req.ClientRequestID != "" {
		existing, err := s.repo.GetByClientRequestID(ctx, userID, *req.ClientRequestID)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, true, nil
		}
	}

	recordedAt := time.Now().UTC()
	if req.RecordedAt != nil {
		recordedAt = req.RecordedAt.UTC()
	}

	var wake *time.Time
	if req.DetectedWakeTime != nil {
		w := req.DetectedWakeTime.UTC()
		wake = &w
	}

	snap := &domain.SleepSnapshot{
		UserID:           userID,
		DurationSeconds:  req.DurationSeconds,
		QualityScore:     req.QualityScore,
		AverageHeartRate: req.AverageHeartRate,
		DeepSleepPercent: req.DeepSleepPercent,
		RemSleepPercent:  req.RemSleepPercent,
		DetectedWakeTime: wake,
		RecordedAt:       recordedAt,
		ClientRequestID:  req.ClientRequestID,
	}

	if err := s.repo.Create(ctx, snap); err != nil {
		return nil, false, err
	}

	return snap, false, nil
}

func (s *snapshotService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepSnapshotFilter) (*domain.SleepSnapshotListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	snaps, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(snaps) > limit
	if hasMore {
		snaps = snaps[:limit]
	}

	response := &domain.SleepSnapshotListResponse{
		Data: make([]domain.SleepSnapshotResponse, len(snaps)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, snap := range snaps {
		response.Data[i] = snap.ToResponse()
	}

	if hasMore && len(snaps) > 0 {
		last := snaps[len(snaps)-1]
		cursor := &pagination.Cursor{
			ID:        last.ID,
			Timestamp: last.RecordedAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
