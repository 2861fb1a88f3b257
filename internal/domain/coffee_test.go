package domain

import (
	"testing"
	"time"
)

func TestCoffeeTypeRankOrdering(t *testing.T) {
	if !(CoffeeTypeLatte.Rank() < CoffeeTypeLongEspresso.Rank() &&
		CoffeeTypeLongEspresso.Rank() < CoffeeTypeShortEspresso.Rank()) {
		t.Errorf("rank ordering broken: latte=%d long=%d short=%d",
			CoffeeTypeLatte.Rank(), CoffeeTypeLongEspresso.Rank(), CoffeeTypeShortEspresso.Rank())
	}
	if CoffeeType("FLAT_WHITE").Rank() != -1 {
		t.Error("unknown type should rank -1")
	}
}

func TestCoffeeTypeCaffeineContent(t *testing.T) {
	tests := []struct {
		coffee CoffeeType
		wantMg float64
	}{
		{CoffeeTypeLatte, 68},
		{CoffeeTypeLongEspresso, 77},
		{CoffeeTypeShortEspresso, 63},
		{CoffeeType("unknown"), 0},
	}
	for _, tt := range tests {
		if got := tt.coffee.CaffeineContentMg(); got != tt.wantMg {
			t.Errorf("CaffeineContentMg(%s) = %v, want %v", tt.coffee, got, tt.wantMg)
		}
	}
}

func TestFatigueLevelRecommendedStrength(t *testing.T) {
	tests := []struct {
		level FatigueLevel
		want  float64
	}{
		{FatigueLow, 0.3},
		{FatigueModerate, 0.6},
		{FatigueHigh, 0.8},
		{FatigueSevere, 1.0},
	}
	for _, tt := range tests {
		if got := tt.level.RecommendedStrength(); got != tt.want {
			t.Errorf("RecommendedStrength(%s) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestSleepSnapshotHelpers(t *testing.T) {
	snap := SleepSnapshot{
		DurationSeconds:  27000,
		DeepSleepPercent: 20,
		RemSleepPercent:  25,
	}
	if got := snap.Hours(); got != 7.5 {
		t.Errorf("Hours() = %v, want 7.5", got)
	}
	if got := snap.LightSleepPercent(); got != 55 {
		t.Errorf("LightSleepPercent() = %v, want 55", got)
	}

	// Percentages reported by some platforms can overshoot; remainder floors at 0.
	snap.DeepSleepPercent = 60
	snap.RemSleepPercent = 55
	if got := snap.LightSleepPercent(); got != 0 {
		t.Errorf("LightSleepPercent() = %v, want 0", got)
	}
}

func TestTimeContextAtWeekend(t *testing.T) {
	// 2024-01-13 is a Saturday.
	sat := mustTime(t, "2024-01-13T07:30:00Z")
	tc := TimeContextAt(sat, time.UTC)
	if !tc.IsWeekend || tc.HourOfDay != 7 {
		t.Errorf("TimeContextAt(saturday) = %+v", tc)
	}

	mon := mustTime(t, "2024-01-15T19:05:00Z")
	tc = TimeContextAt(mon, time.UTC)
	if tc.IsWeekend || tc.HourOfDay != 19 {
		t.Errorf("TimeContextAt(monday) = %+v", tc)
	}
}
