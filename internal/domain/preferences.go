package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultPreferredStrength is used when the user has not stated a preference.
	DefaultPreferredStrength = 0.5
	// DefaultMaxCaffeinePerDayMg is the default daily caffeine ceiling.
	DefaultMaxCaffeinePerDayMg = 400.0
)

// Preferences is the stored per-user coffee preference row.
type Preferences struct {
	UserID              uuid.UUID   `gorm:"type:uuid;primaryKey" json:"user_id"`
	PreferredType       *CoffeeType `gorm:"type:varchar(20)" json:"preferred_type,omitempty"`
	PreferredStrength   float64     `gorm:"not null;default:0.5" json:"preferred_strength"`
	MaxCaffeinePerDayMg float64     `gorm:"not null;default:400" json:"max_caffeine_per_day_mg"`
	UpdatedAt           time.Time   `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Preferences) TableName() string {
	return "preferences"
}

// UserPreferences is the read-only preference view the decision engine consumes.
type UserPreferences struct {
	PreferredType       *CoffeeType
	PreferredStrength   float64
	MaxCaffeinePerDayMg float64
}

// DefaultUserPreferences returns the engine defaults for users with no stored row.
func DefaultUserPreferences() UserPreferences {
	return UserPreferences{
		PreferredStrength:   DefaultPreferredStrength,
		MaxCaffeinePerDayMg: DefaultMaxCaffeinePerDayMg,
	}
}

// ToUserPreferences converts the stored row to the engine view.
func (p *Preferences) ToUserPreferences() UserPreferences {
	return UserPreferences{
		PreferredType:       p.PreferredType,
		PreferredStrength:   p.PreferredStrength,
		MaxCaffeinePerDayMg: p.MaxCaffeinePerDayMg,
	}
}

// UpdatePreferencesRequest is the request body for storing preferences.
// @Description Request payload for updating coffee preferences.
type UpdatePreferencesRequest struct {
	// Preferred coffee type; omit to let the engine decide
	PreferredType *CoffeeType `json:"preferred_type,omitempty" validate:"omitempty,coffee_type" example:"LONG_ESPRESSO" enums:"LATTE,LONG_ESPRESSO,SHORT_ESPRESSO"`
	// Preferred strength from 0 to 1
	PreferredStrength float64 `json:"preferred_strength" validate:"min=0,max=1" example:"0.6"`
	// Daily caffeine ceiling in mg
	MaxCaffeinePerDayMg float64 `json:"max_caffeine_per_day_mg" validate:"gt=0" example:"400"`
}

// PreferencesResponse is the response body for preference endpoints.
// @Description Stored coffee preferences (defaults if never set).
type PreferencesResponse struct {
	UserID              uuid.UUID   `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	PreferredType       *CoffeeType `json:"preferred_type,omitempty" example:"LONG_ESPRESSO"`
	PreferredStrength   float64     `json:"preferred_strength" example:"0.6"`
	MaxCaffeinePerDayMg float64     `json:"max_caffeine_per_day_mg" example:"400"`
	UpdatedAt           time.Time   `json:"updated_at" example:"2024-01-16T07:10:00Z"`
}

func (p *Preferences) ToResponse() PreferencesResponse {
	return PreferencesResponse{
		UserID:              p.UserID,
		PreferredType:       p.PreferredType,
		PreferredStrength:   p.PreferredStrength,
		MaxCaffeinePerDayMg: p.MaxCaffeinePerDayMg,
		UpdatedAt:           p.UpdatedAt,
	}
}
