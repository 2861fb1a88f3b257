package domain

import (
	"time"

	"github.com/google/uuid"
)

// ConsumptionLog records one coffee the user actually drank. The running
// daily caffeine figure is the sum of CaffeineMg for the local day.
type ConsumptionLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_consumptions_user_consumed" json:"user_id"`
	CoffeeType CoffeeType `gorm:"type:varchar(20);not null" json:"coffee_type"`
	Strength   float64    `gorm:"not null" json:"strength"`
	CaffeineMg float64    `gorm:"not null" json:"caffeine_mg"`
	ConsumedAt time.Time  `gorm:"not null;index:idx_consumptions_user_consumed,sort:desc" json:"consumed_at"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ConsumptionLog) TableName() string {
	return "consumption_logs"
}

// CreateConsumptionRequest is the request body for recording a drink.
// @Description Request payload for recording a consumed coffee.
type CreateConsumptionRequest struct {
	// Coffee type that was consumed
	CoffeeType CoffeeType `json:"coffee_type" validate:"required,coffee_type" example:"SHORT_ESPRESSO" enums:"LATTE,LONG_ESPRESSO,SHORT_ESPRESSO"`
	// Strength from 0 to 1; caffeine is scaled by this factor
	Strength float64 `json:"strength" validate:"required,gt=0,max=1" example:"0.8"`
	// When the coffee was consumed (defaults to now)
	ConsumedAt *time.Time `json:"consumed_at,omitempty" example:"2024-01-16T08:30:00Z"`
}

// ConsumptionResponse is the response body for consumption endpoints.
// @Description Recorded coffee consumption.
type ConsumptionResponse struct {
	ID         uuid.UUID  `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID     uuid.UUID  `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	CoffeeType CoffeeType `json:"coffee_type" example:"SHORT_ESPRESSO"`
	Strength   float64    `json:"strength" example:"0.8"`
	CaffeineMg float64    `json:"caffeine_mg" example:"50.4"`
	ConsumedAt time.Time  `json:"consumed_at" example:"2024-01-16T08:30:00Z"`
	CreatedAt  time.Time  `json:"created_at" example:"2024-01-16T08:30:01Z"`
}

func (c *ConsumptionLog) ToResponse() ConsumptionResponse {
	return ConsumptionResponse{
		ID:         c.ID,
		UserID:     c.UserID,
		CoffeeType: c.CoffeeType,
		Strength:   c.Strength,
		CaffeineMg: c.CaffeineMg,
		ConsumedAt: c.ConsumedAt,
		CreatedAt:  c.CreatedAt,
	}
}

// ConsumptionListResponse is the response body for listing consumptions.
// @Description Paginated list of consumed coffees.
type ConsumptionListResponse struct {
	// Array of consumption records
	Data []ConsumptionResponse `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// DailyCaffeineResponse reports the running caffeine total for a local day.
// @Description Caffeine consumed so far in the user's local day.
type DailyCaffeineResponse struct {
	// Start of the local day (UTC instant)
	DayStart time.Time `json:"day_start" example:"2024-01-16T00:00:00+01:00"`
	// Total caffeine consumed since day start, in mg
	ConsumedMg float64 `json:"consumed_mg" example:"126.5"`
	// The user's configured daily ceiling, in mg
	CeilingMg float64 `json:"ceiling_mg" example:"400"`
}

// ConsumptionFilter contains filter parameters for listing consumptions
type ConsumptionFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
