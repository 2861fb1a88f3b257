package domain

import (
	"time"

	"github.com/google/uuid"
)

// SleepSnapshot is a single night's sleep summary as reported by the
// mobile client from its health platform. Percentages need not sum to
// 100; light sleep is the implied remainder.
type SleepSnapshot struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index:idx_sleep_snapshots_user_recorded" json:"user_id"`
	DurationSeconds  float64    `gorm:"not null" json:"duration_seconds"`
	QualityScore     float64    `gorm:"not null" json:"quality_score"`
	AverageHeartRate float64    `gorm:"not null" json:"average_heart_rate"`
	DeepSleepPercent float64    `gorm:"not null" json:"deep_sleep_percent"`
	RemSleepPercent  float64    `gorm:"not null" json:"rem_sleep_percent"`
	DetectedWakeTime *time.Time `json:"detected_wake_time,omitempty"`
	RecordedAt       time.Time  `gorm:"not null;index:idx_sleep_snapshots_user_recorded,sort:desc" json:"recorded_at"`
	ClientRequestID  *string    `gorm:"type:varchar(255);uniqueIndex:idx_snapshot_client_request,where:client_request_id IS NOT NULL" json:"client_request_id,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SleepSnapshot) TableName() string {
	return "sleep_snapshots"
}

// Hours returns the sleep duration in hours.
func (s *SleepSnapshot) Hours() float64 {
	return s.DurationSeconds / 3600
}

// LightSleepPercent is the implied remainder after deep and REM sleep.
func (s *SleepSnapshot) LightSleepPercent() float64 {
	light := 100 - s.DeepSleepPercent - s.RemSleepPercent
	if light < 0 {
		return 0
	}
	return light
}

// CreateSleepSnapshotRequest is the request body for ingesting a snapshot.
// @Description Request payload for recording a night's sleep summary.
type CreateSleepSnapshotRequest struct {
	// Total sleep duration in seconds
	DurationSeconds float64 `json:"duration_seconds" validate:"required,gt=0" example:"27000"`
	// Quality score from 0 (worst) to 100 (best)
	QualityScore float64 `json:"quality_score" validate:"min=0,max=100" example:"72.5"`
	// Average overnight heart rate in bpm
	AverageHeartRate float64 `json:"average_heart_rate" validate:"omitempty,gt=0" example:"58"`
	// Percentage of the night spent in deep sleep
	DeepSleepPercent float64 `json:"deep_sleep_percent" validate:"min=0,max=100" example:"18"`
	// Percentage of the night spent in REM sleep
	RemSleepPercent float64 `json:"rem_sleep_percent" validate:"min=0,max=100" example:"22"`
	// Detected wake-up time in RFC3339 format, if the platform reported one
	DetectedWakeTime *time.Time `json:"detected_wake_time,omitempty" example:"2024-01-16T07:05:00Z"`
	// When this snapshot was taken (defaults to now)
	RecordedAt *time.Time `json:"recorded_at,omitempty" example:"2024-01-16T07:10:00Z"`
	// Optional client-generated ID for idempotent requests (max 255 chars)
	ClientRequestID *string `json:"client_request_id,omitempty" validate:"omitempty,max=255" example:"client-uuid-12345"`
}

// SleepSnapshotResponse is the response body for snapshot endpoints.
// @Description Stored sleep snapshot.
type SleepSnapshotResponse struct {
	ID               uuid.UUID  `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID           uuid.UUID  `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	DurationSeconds  float64    `json:"duration_seconds" example:"27000"`
	QualityScore     float64    `json:"quality_score" example:"72.5"`
	AverageHeartRate float64    `json:"average_heart_rate" example:"58"`
	DeepSleepPercent float64    `json:"deep_sleep_percent" example:"18"`
	RemSleepPercent  float64    `json:"rem_sleep_percent" example:"22"`
	DetectedWakeTime *time.Time `json:"detected_wake_time,omitempty" example:"2024-01-16T07:05:00Z"`
	RecordedAt       time.Time  `json:"recorded_at" example:"2024-01-16T07:10:00Z"`
	ClientRequestID  *string    `json:"client_request_id,omitempty" example:"client-uuid-12345"`
	CreatedAt        time.Time  `json:"created_at" example:"2024-01-16T07:10:01Z"`
}

func (s *SleepSnapshot) ToResponse() SleepSnapshotResponse {
	return SleepSnapshotResponse{
		ID:               s.ID,
		UserID:           s.UserID,
		DurationSeconds:  s.DurationSeconds,
		QualityScore:     s.QualityScore,
		AverageHeartRate: s.AverageHeartRate,
		DeepSleepPercent: s.DeepSleepPercent,
		RemSleepPercent:  s.RemSleepPercent,
		DetectedWakeTime: s.DetectedWakeTime,
		RecordedAt:       s.RecordedAt,
		ClientRequestID:  s.ClientRequestID,
		CreatedAt:        s.CreatedAt,
	}
}

// SleepSnapshotListResponse is the response body for listing snapshots.
// @Description Paginated list of sleep snapshots.
type SleepSnapshotListResponse struct {
	// Array of snapshot records
	Data []SleepSnapshotResponse `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJpZCI6IjU1MGU4NDAwLWUyOWItNDFkNC1hNzE2LTQ0NjY1NTQ0MDAwMCJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// SleepSnapshotFilter contains filter parameters for listing snapshots
type SleepSnapshotFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
