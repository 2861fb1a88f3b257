package domain

// CoffeeType represents the kind of coffee the machine can brew.
// @Description Coffee type: LATTE (gentlest), LONG_ESPRESSO, SHORT_ESPRESSO (strongest).
type CoffeeType string

const (
	// CoffeeTypeLatte is the gentlest option, used whenever intake must be limited
	CoffeeTypeLatte CoffeeType = "LATTE"
	// CoffeeTypeLongEspresso is the middle-strength option
	CoffeeTypeLongEspresso CoffeeType = "LONG_ESPRESSO"
	// CoffeeTypeShortEspresso is the strongest option
	CoffeeTypeShortEspresso CoffeeType = "SHORT_ESPRESSO"
)

// CaffeineContentMg returns the caffeine content of a full-strength serving.
func (t CoffeeType) CaffeineContentMg() float64 {
	switch t {
	case CoffeeTypeLatte:
		return 68
	case CoffeeTypeLongEspresso:
		return 77
	case CoffeeTypeShortEspresso:
		return 63
	default:
		return 0
	}
}

// Rank orders types from gentlest (0) to strongest (2).
// The rank ordering is independent of caffeine content.
func (t CoffeeType) Rank() int {
	switch t {
	case CoffeeTypeLatte:
		return 0
	case CoffeeTypeLongEspresso:
		return 1
	case CoffeeTypeShortEspresso:
		return 2
	default:
		return -1
	}
}

// Valid reports whether t is a known coffee type.
func (t CoffeeType) Valid() bool {
	return t.Rank() >= 0
}

// FatigueLevel is a discrete tiredness classification derived from a
// sleep snapshot. It is never persisted, only computed.
type FatigueLevel string

const (
	FatigueLow      FatigueLevel = "low"
	FatigueModerate FatigueLevel = "moderate"
	FatigueHigh     FatigueLevel = "high"
	FatigueSevere   FatigueLevel = "severe"
)

// RecommendedStrength returns the fixed strength contribution for each level.
func (f FatigueLevel) RecommendedStrength() float64 {
	switch f {
	case FatigueLow:
		return 0.3
	case FatigueModerate:
		return 0.6
	case FatigueHigh:
		return 0.8
	case FatigueSevere:
		return 1.0
	default:
		return 0
	}
}
