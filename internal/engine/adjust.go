package engine

import "github.com/bvyvyana/sleepbrew/internal/domain"

// Time-of-day policy constants.
const (
	morningBump        = 0.1
	earlyAfternoonDamp = 0.9
	lateAfternoonDamp  = 0.6
	nightDamp          = 0.7

	weekendUrgencyDamp  = 0.7
	weekendStrengthDamp = 0.9

	lateDayStrengthCeiling = 0.6
	lateDayCutoffHour      = 16
	eveningCutoffHour      = 18
	eveningStrengthCap     = 0.4
)

// adjustForTime rescales the draft by hour of day. The hour branches are
// mutually exclusive; the weekend damping applies afterwards regardless
// of which branch fired.
func adjustForTime(rec domain.Recommendation, tc domain.TimeContext) domain.Recommendation {
	switch {
	case tc.HourOfDay >= 6 && tc.HourOfDay <= 8:
		rec.Strength = min(1.0, rec.Strength+morningBump)
	case tc.HourOfDay >= 9 && tc.HourOfDay <= 11:
		// Mid-morning: the draft stands.
	case tc.HourOfDay >= 12 && tc.HourOfDay <= 14:
		rec.Strength *= earlyAfternoonDamp
	case tc.HourOfDay >= eveningCutoffHour:
		rec.Strength *= lateAfternoonDamp
		rec.Type = domain.CoffeeTypeLatte
		rec.Strength = min(rec.Strength, eveningStrengthCap)
	case tc.HourOfDay >= 15:
		rec.Strength *= lateAfternoonDamp
	default: // 0-5
		rec.Strength *= nightDamp
	}

	if tc.IsWeekend {
		rec.Urgency *= weekendUrgencyDamp
		rec.Strength *= weekendStrengthDamp
	}
	return rec
}

// mergePreferences blends the draft with the user's declared taste. A
// stated type preference wins over all prior scoring; strength is always
// averaged with the preferred strength, type override or not.
func mergePreferences(rec domain.Recommendation, prefs domain.UserPreferences) domain.Recommendation {
	if prefs.PreferredType != nil {
		rec.Type = *prefs.PreferredType
	}
	rec.Strength = (rec.Strength + prefs.PreferredStrength) / 2
	return rec
}

// enforceCaffeineLimit keeps the projected intake under the user's daily
// ceiling. When the budget is exhausted entirely the engine still
// recommends the gentlest possible coffee rather than nothing.
func enforceCaffeineLimit(rec domain.Recommendation, consumedTodayMg float64, prefs domain.UserPreferences) domain.Recommendation {
	projectedMg := rec.Type.CaffeineContentMg() * rec.Strength
	if consumedTodayMg+projectedMg <= prefs.MaxCaffeinePerDayMg {
		return rec
	}

	remainingMg := max(0, prefs.MaxCaffeinePerDayMg-consumedTodayMg)
	if remainingMg <= 0 {
		rec.Type = domain.CoffeeTypeLatte
		rec.Strength = minStrength
		rec.Reasoning = append(rec.Reasoning, "Daily caffeine limit reached, keeping this one symbolic")
		return rec
	}

	rec.Strength = min(rec.Strength, remainingMg/rec.Type.CaffeineContentMg())
	rec.Reasoning = append(rec.Reasoning, "Strength reduced to stay within the daily caffeine limit")
	return rec
}

// finalizeSafety applies the hard late-day overrides and the
// authoritative final clamps. The evening override may repeat what
// adjustForTime already did; both are idempotent so the duplication is
// harmless.
func finalizeSafety(rec domain.Recommendation, tc domain.TimeContext) domain.Recommendation {
	if tc.HourOfDay >= lateDayCutoffHour && rec.Strength > lateDayStrengthCeiling {
		rec.Strength = lateDayStrengthCeiling
		rec.Reasoning = append(rec.Reasoning, "Capped for late afternoon")
	}

	if tc.HourOfDay >= eveningCutoffHour {
		rec.Type = domain.CoffeeTypeLatte
		rec.Strength = min(rec.Strength, eveningStrengthCap)
		rec.Reasoning = append(rec.Reasoning, "Evening: switched to a gentle latte")
	}

	// No earlier stage is trusted to have produced in-range values.
	rec.Strength = clamp(rec.Strength, minStrength, maxStrength)
	rec.Urgency = clamp(rec.Urgency, minStrength, maxStrength)
	return rec
}
