package engine

import "github.com/bvyvyana/sleepbrew/internal/domain"

// Fatigue classification thresholds. Rows are evaluated top to bottom,
// first match wins; anything unmatched is severe. The bands deliberately
// leave gaps (e.g. quality 90 with 5h of sleep) that fall through to
// severe rather than being smoothed over.
const (
	lowFatigueMinQuality = 80
	lowFatigueMinHours   = 7

	moderateFatigueMinQuality = 60
	moderateFatigueMinHours   = 6

	highFatigueMinQuality = 40
	highFatigueMinHours   = 5
)

// classifyFatigue derives a discrete fatigue level from sleep duration
// and quality. Every input classifies; there is no error branch.
func classifyFatigue(snap domain.SleepSnapshot) domain.FatigueLevel {
	hours := snap.Hours()
	quality := snap.QualityScore

	switch {
	case quality >= lowFatigueMinQuality && hours >= lowFatigueMinHours:
		return domain.FatigueLow
	case quality >= moderateFatigueMinQuality && quality < lowFatigueMinQuality &&
		hours >= moderateFatigueMinHours && hours < lowFatigueMinHours:
		return domain.FatigueModerate
	case quality >= highFatigueMinQuality && quality < moderateFatigueMinQuality &&
		hours >= highFatigueMinHours && hours < moderateFatigueMinHours:
		return domain.FatigueHigh
	default:
		return domain.FatigueSevere
	}
}
