// Package engine implements the coffee recommendation decision engine:
// a fixed pipeline that turns a sleep snapshot, the time of day, user
// preferences and the caffeine already consumed today into a single
// coffee recommendation.
//
// The engine is a pure function. It performs no I/O, holds no state and
// never returns an error: out-of-range inputs are normalized by clamping
// so that a caller always gets some recommendation. It is safe to call
// from any number of goroutines.
package engine

import (
	"github.com/bvyvyana/sleepbrew/internal/domain"
)

// Decide runs the full pipeline. Stages run in strict order, each
// consuming the previous stage's output:
//
//	fatigue classification -> base scoring -> time-of-day adjustment ->
//	preference merge -> caffeine constraint -> safety finalization
func Decide(snap domain.SleepSnapshot, prefs domain.UserPreferences, tc domain.TimeContext, consumedTodayMg float64) domain.Recommendation {
	fatigue := classifyFatigue(snap)
	rec := scoreBase(snap, fatigue)
	rec = adjustForTime(rec, tc)
	rec = mergePreferences(rec, prefs)
	rec = enforceCaffeineLimit(rec, consumedTodayMg, prefs)
	rec = finalizeSafety(rec, tc)
	return rec
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
