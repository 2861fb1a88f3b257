package domain

import "time"

// HabitWindow summarizes sleep and caffeine behavior over a time range.
// @Description Aggregated sleep and caffeine figures for a window.
type HabitWindow struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
	// Number of sleep snapshots in the window
	SnapshotCount int `json:"snapshot_count" example:"7"`
	// Average sleep duration in hours
	AvgSleepHours float64 `json:"avg_sleep_hours" example:"6.8"`
	// Average sleep quality score (0-100)
	AvgQualityScore float64 `json:"avg_quality_score" example:"71.4"`
	// Average deep sleep percentage
	AvgDeepSleepPercent float64 `json:"avg_deep_sleep_percent" example:"17.2"`
	// Total caffeine consumed in mg
	TotalCaffeineMg float64 `json:"total_caffeine_mg" example:"1830"`
	// Average caffeine per day in mg
	AvgDailyCaffeineMg float64 `json:"avg_daily_caffeine_mg" example:"261.4"`
	// Count of consumed coffees by type
	CoffeesByType map[CoffeeType]int `json:"coffees_by_type"`
	// Number of brews dispatched from recommendations
	RecommendedBrews int `json:"recommended_brews" example:"5"`
	// Number of manually triggered brews
	ManualBrews int `json:"manual_brews" example:"3"`
}

// InsightsContext is the full payload handed to the LLM.
type InsightsContext struct {
	History HabitWindow         `json:"history"`
	Recent  HabitWindow         `json:"recent"`
	Ceiling float64             `json:"max_caffeine_per_day_mg"`
	Prefs   PreferencesResponse `json:"preferences"`
}

// LLMInsightsOutput is the strict-JSON shape the LLM must return.
// @Description Generated habit insights.
type LLMInsightsOutput struct {
	// Short summary of how caffeine habits relate to recent sleep
	Summary string `json:"summary"`
	// Observed patterns in sleep and consumption
	Observations []string `json:"observations"`
	// Concrete, non-medical habit suggestions
	Guidance []string `json:"guidance"`
}

// InsightsResponse is the response body for the insights endpoint.
// @Description Habit insights combining sleep and caffeine history.
type InsightsResponse struct {
	Insights LLMInsightsOutput `json:"insights"`
	// Trace ID for linking feedback to this generation
	TraceID string `json:"trace_id,omitempty"`
	Metrics  struct {
		History HabitWindow `json:"history"`
		Recent  HabitWindow `json:"recent"`
	} `json:"metrics"`
}
