package domain

import (
	"strings"
	"time"
)

// TimeContext carries the time-of-day inputs the decision engine branches on.
// It is derived by the caller, in the user's local timezone.
type TimeContext struct {
	HourOfDay int
	IsWeekend bool
}

// TimeContextAt derives a TimeContext from an instant in the given location.
func TimeContextAt(t time.Time, loc *time.Location) TimeContext {
	local := t.In(loc)
	wd := local.Weekday()
	return TimeContext{
		HourOfDay: local.Hour(),
		IsWeekend: wd == time.Saturday || wd == time.Sunday,
	}
}

// Recommendation is the decision engine's output: a single coffee with
// normalized scores and a human-readable rationale. Once returned by the
// engine it is final; callers must not mutate it.
type Recommendation struct {
	Type       CoffeeType
	Strength   float64
	Urgency    float64
	Confidence float64
	Reasoning  []string
}

// ReasoningText joins the rationale fragments for display.
func (r Recommendation) ReasoningText() string {
	return strings.Join(r.Reasoning, ". ")
}

// ProjectedCaffeineMg is the caffeine this recommendation would add if brewed.
func (r Recommendation) ProjectedCaffeineMg() float64 {
	return r.Type.CaffeineContentMg() * r.Strength
}

// RecommendationResponse is the response body for the recommendation endpoint.
// @Description Coffee recommendation derived from the latest sleep snapshot.
type RecommendationResponse struct {
	// Recommended coffee type
	CoffeeType CoffeeType `json:"coffee_type" example:"LONG_ESPRESSO"`
	// Recommended strength, 0.1-1.0
	Strength float64 `json:"strength" example:"0.65"`
	// How time-sensitive the recommendation is, 0.1-1.0
	Urgency float64 `json:"urgency" example:"0.5"`
	// How reliable the engine considers the input data, 0.3-1.0
	Confidence float64 `json:"confidence" example:"0.9"`
	// Rationale fragments accumulated across the scoring stages
	Reasoning []string `json:"reasoning"`
	// Caffeine this coffee would add at the recommended strength, in mg
	ProjectedCaffeineMg float64 `json:"projected_caffeine_mg" example:"50.1"`
	// Caffeine already consumed today, in mg
	ConsumedTodayMg float64 `json:"consumed_today_mg" example:"126.5"`
	// Snapshot the recommendation was computed from
	Snapshot SleepSnapshotResponse `json:"snapshot"`
	// When the recommendation was computed
	ComputedAt time.Time `json:"computed_at" example:"2024-01-16T07:12:00Z"`
}
