package engine

import (
	"fmt"

	"github.com/bvyvyana/sleepbrew/internal/domain"
)

// Base scoring weights and bounds.
const (
	strengthBaseOffset   = 0.5
	durationWeight       = 0.40
	qualityWeight        = 0.35
	fatigueWeight        = 0.25
	targetSleepHours     = 8.0
	targetQualityScore   = 80.0
	minStrength          = 0.1
	maxStrength          = 1.0

	shortEspressoStrengthCutoff = 0.8
	longEspressoStrengthCutoff  = 0.5

	urgencyShortSleepBonus = 0.3
	urgencyLowQualityBonus = 0.2

	baseConfidence          = 0.8
	minConfidence           = 0.3
	implausibleDurationDrop = 0.3
	implausibleQualityDrop  = 0.2
	typicalNightBonus       = 0.1
)

// scoreBase creates the draft recommendation from the snapshot and
// fatigue level. Confidence is set here once and never re-derived by
// later stages.
func scoreBase(snap domain.SleepSnapshot, fatigue domain.FatigueLevel) domain.Recommendation {
	hours := snap.Hours()
	quality := snap.QualityScore

	strength := baseStrength(hours, quality, fatigue)

	rec := domain.Recommendation{
		Type:       selectType(strength, fatigue),
		Strength:   strength,
		Urgency:    baseUrgency(hours, quality, fatigue),
		Confidence: baseConfidenceScore(hours, quality),
	}
	rec.Reasoning = baseReasoning(rec, hours, quality, fatigue)
	return rec
}

// baseStrength is a weighted sum over a deficit model: the further the
// night falls short of 8 hours and a quality of 80, the stronger the
// coffee. Each deficit term floors at zero so surplus sleep never
// subtracts.
func baseStrength(hours, quality float64, fatigue domain.FatigueLevel) float64 {
	durationTerm := max(0, (targetSleepHours-hours)/targetSleepHours) * durationWeight
	qualityTerm := max(0, (targetQualityScore-quality)/targetQualityScore) * qualityWeight
	fatigueTerm := fatigue.RecommendedStrength() * fatigueWeight

	return clamp(strengthBaseOffset+durationTerm+qualityTerm+fatigueTerm, minStrength, maxStrength)
}

// baseUrgency starts from a per-level baseline and adds bonuses for very
// short or very poor sleep. The two bonuses apply independently, each
// capped at 1.0 on its own.
func baseUrgency(hours, quality float64, fatigue domain.FatigueLevel) float64 {
	var urgency float64
	switch fatigue {
	case domain.FatigueLow:
		urgency = 0.3
	case domain.FatigueModerate:
		urgency = 0.5
	case domain.FatigueHigh:
		urgency = 0.7
	default:
		urgency = 0.9
	}

	if hours < 5 {
		urgency = min(1.0, urgency+urgencyShortSleepBonus)
	}
	if quality < 40 {
		urgency = min(1.0, urgency+urgencyLowQualityBonus)
	}
	return urgency
}

// baseConfidenceScore penalizes implausible readings (a 2-hour or
// 13-hour "night", quality pinned at the extremes) and rewards a typical
// night. Adjustments apply unconditionally in this fixed order.
func baseConfidenceScore(hours, quality float64) float64 {
	confidence := baseConfidence
	if hours < 3 || hours > 12 {
		confidence -= implausibleDurationDrop
	}
	if quality < 20 || quality > 95 {
		confidence -= implausibleQualityDrop
	}
	if hours >= 6 && hours <= 9 && quality >= 60 {
		confidence = min(1.0, confidence+typicalNightBonus)
	}
	return max(minConfidence, confidence)
}

// selectType picks the draft coffee type. Checks run strongest-first so
// a severe fatigue level wins regardless of the strength score.
func selectType(strength float64, fatigue domain.FatigueLevel) domain.CoffeeType {
	switch {
	case strength >= shortEspressoStrengthCutoff || fatigue == domain.FatigueSevere:
		return domain.CoffeeTypeShortEspresso
	case strength >= longEspressoStrengthCutoff || fatigue == domain.FatigueHigh:
		return domain.CoffeeTypeLongEspresso
	default:
		return domain.CoffeeTypeLatte
	}
}

func baseReasoning(rec domain.Recommendation, hours, quality float64, fatigue domain.FatigueLevel) []string {
	var fragments []string

	switch {
	case hours < 6:
		fragments = append(fragments, fmt.Sprintf("Short night (%.1fh of sleep)", hours))
	case hours > 9:
		fragments = append(fragments, fmt.Sprintf("Unusually long night (%.1fh of sleep)", hours))
	default:
		fragments = append(fragments, "Sleep duration in the optimal range")
	}

	if quality < 50 {
		fragments = append(fragments, fmt.Sprintf("Low sleep quality (score %.0f)", quality))
	} else if quality > 80 {
		fragments = append(fragments, "Excellent sleep quality")
	}

	fragments = append(fragments, fmt.Sprintf("Fatigue level: %s", fatigue))
	fragments = append(fragments, fmt.Sprintf("Suggesting %s", displayName(rec.Type)))

	if rec.Strength > 0.8 {
		fragments = append(fragments, "A maximal-intensity brew is warranted")
	} else if rec.Strength < 0.3 {
		fragments = append(fragments, "Keeping the brew gentle")
	}

	return fragments
}

func displayName(t domain.CoffeeType) string {
	switch t {
	case domain.CoffeeTypeLatte:
		return "a latte"
	case domain.CoffeeTypeLongEspresso:
		return "a long espresso"
	case domain.CoffeeTypeShortEspresso:
		return "a short espresso"
	default:
		return string(t)
	}
}
