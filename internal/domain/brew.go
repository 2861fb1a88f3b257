package domain

import (
	"time"

	"github.com/google/uuid"
)

// TriggerKind says what initiated a brew command.
// @Description Brew trigger: MANUAL for user-picked coffee, RECOMMENDED for engine output.
type TriggerKind string

const (
	TriggerManual      TriggerKind = "MANUAL"
	TriggerRecommended TriggerKind = "RECOMMENDED"
)

// Valid reports whether k is a known trigger kind.
func (k TriggerKind) Valid() bool {
	return k == TriggerManual || k == TriggerRecommended
}

// BrewStatus is the outcome of a dispatched brew command.
type BrewStatus string

const (
	BrewStatusSucceeded BrewStatus = "SUCCEEDED"
	BrewStatusFailed    BrewStatus = "FAILED"
)

// BrewCommand is what gets sent to the machine.
type BrewCommand struct {
	CommandID  uuid.UUID   `json:"command_id"`
	DeviceID   string      `json:"device_id"`
	CoffeeType CoffeeType  `json:"coffee_type"`
	Strength   float64     `json:"strength"`
	Trigger    TriggerKind `json:"trigger"`
}

// BrewResult is the device channel's report for a dispatched command.
type BrewResult struct {
	Status   BrewStatus
	Duration time.Duration
	Detail   string
}

// BrewLog is the persisted audit record of a dispatched brew command.
type BrewLog struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID   `gorm:"type:uuid;not null;index:idx_brew_logs_user_created" json:"user_id"`
	DeviceID   string      `gorm:"type:varchar(128);not null" json:"device_id"`
	CoffeeType CoffeeType  `gorm:"type:varchar(20);not null" json:"coffee_type"`
	Strength   float64     `gorm:"not null" json:"strength"`
	Trigger    TriggerKind `gorm:"type:varchar(20);not null" json:"trigger"`
	Status     BrewStatus  `gorm:"type:varchar(20);not null" json:"status"`
	DurationMs int64       `gorm:"not null" json:"duration_ms"`
	Detail     string      `gorm:"type:varchar(255)" json:"detail,omitempty"`
	CreatedAt  time.Time   `gorm:"autoCreateTime;index:idx_brew_logs_user_created,sort:desc" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (BrewLog) TableName() string {
	return "brew_logs"
}

// CreateBrewRequest is the request body for triggering a brew.
// @Description Request payload for brewing. Omit coffee_type to brew the current recommendation.
type CreateBrewRequest struct {
	// Target machine identifier
	DeviceID string `json:"device_id" validate:"required,max=128" example:"kitchen-gaggia"`
	// Coffee type for MANUAL brews; leave empty to brew the engine's recommendation
	CoffeeType *CoffeeType `json:"coffee_type,omitempty" validate:"omitempty,coffee_type" example:"LATTE" enums:"LATTE,LONG_ESPRESSO,SHORT_ESPRESSO"`
	// Strength for MANUAL brews, 0-1; ignored when coffee_type is empty
	Strength *float64 `json:"strength,omitempty" validate:"omitempty,gt=0,max=1" example:"0.7"`
}

// BrewResponse is the response body for brew endpoints.
// @Description Result of a dispatched brew command.
type BrewResponse struct {
	ID         uuid.UUID   `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID     uuid.UUID   `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	DeviceID   string      `json:"device_id" example:"kitchen-gaggia"`
	CoffeeType CoffeeType  `json:"coffee_type" example:"LATTE"`
	Strength   float64     `json:"strength" example:"0.4"`
	Trigger    TriggerKind `json:"trigger" example:"RECOMMENDED"`
	Status     BrewStatus  `json:"status" example:"SUCCEEDED"`
	DurationMs int64       `json:"duration_ms" example:"812"`
	Detail     string      `json:"detail,omitempty" example:""`
	CreatedAt  time.Time   `json:"created_at" example:"2024-01-16T07:12:00Z"`
}

func (b *BrewLog) ToResponse() BrewResponse {
	return BrewResponse{
		ID:         b.ID,
		UserID:     b.UserID,
		DeviceID:   b.DeviceID,
		CoffeeType: b.CoffeeType,
		Strength:   b.Strength,
		Trigger:    b.Trigger,
		Status:     b.Status,
		DurationMs: b.DurationMs,
		Detail:     b.Detail,
		CreatedAt:  b.CreatedAt,
	}
}

// BrewListResponse is the response body for listing brews.
// @Description Recent brew commands, newest first.
type BrewListResponse struct {
	// Array of brew records
	Data []BrewResponse `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// BrewFilter contains filter parameters for listing brew logs
type BrewFilter struct {
	Limit  int
	Cursor string
}
