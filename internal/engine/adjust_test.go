package engine

import (
	"strings"
	"testing"

	"github.com/bvyvyana/sleepbrew/internal/domain"
)

func draft(coffee domain.CoffeeType, strength float64) domain.Recommendation {
	return domain.Recommendation{
		Type:       coffee,
		Strength:   strength,
		Urgency:    0.5,
		Confidence: 0.8,
	}
}

func TestAdjustForTimeHourBranches(t *testing.T) {
	tests := []struct {
		name         string
		hour         int
		strength     float64
		wantStrength float64
		wantType     domain.CoffeeType
	}{
		{"early morning bump", 7, 0.6, 0.7, domain.CoffeeTypeLongEspresso},
		{"morning bump caps at one", 6, 0.95, 1.0, domain.CoffeeTypeLongEspresso},
		{"mid morning untouched", 10, 0.6, 0.6, domain.CoffeeTypeLongEspresso},
		{"lunchtime damp", 13, 0.6, 0.54, domain.CoffeeTypeLongEspresso},
		{"late afternoon damp", 16, 0.6, 0.36, domain.CoffeeTypeLongEspresso},
		{"evening forces latte", 19, 0.9, 0.4, domain.CoffeeTypeLatte},
		{"evening cap only binds above 0.4", 20, 0.5, 0.3, domain.CoffeeTypeLatte},
		{"small hours damp", 2, 0.6, 0.42, domain.CoffeeTypeLongEspresso},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := adjustForTime(draft(domain.CoffeeTypeLongEspresso, tt.strength), domain.TimeContext{HourOfDay: tt.hour})
			if !almostEqual(rec.Strength, tt.wantStrength) {
				t.Errorf("hour %d: strength = %v, want %v", tt.hour, rec.Strength, tt.wantStrength)
			}
			if rec.Type != tt.wantType {
				t.Errorf("hour %d: type = %s, want %s", tt.hour, rec.Type, tt.wantType)
			}
		})
	}
}

func TestAdjustForTimeWeekendDampsAfterHourBranch(t *testing.T) {
	rec := adjustForTime(draft(domain.CoffeeTypeLongEspresso, 0.6), domain.TimeContext{HourOfDay: 7, IsWeekend: true})
	if !almostEqual(rec.Strength, 0.7*0.9) {
		t.Errorf("weekend strength = %v, want %v", rec.Strength, 0.7*0.9)
	}
	if !almostEqual(rec.Urgency, 0.5*0.7) {
		t.Errorf("weekend urgency = %v, want %v", rec.Urgency, 0.5*0.7)
	}
}

func TestMergePreferences(t *testing.T) {
	latte := domain.CoffeeTypeLatte

	t.Run("preferred type wins over scoring", func(t *testing.T) {
		prefs := domain.UserPreferences{PreferredType: &latte, PreferredStrength: 0.8, MaxCaffeinePerDayMg: 400}
		rec := mergePreferences(draft(domain.CoffeeTypeShortEspresso, 0.6), prefs)
		if rec.Type != domain.CoffeeTypeLatte {
			t.Errorf("type = %s, want latte", rec.Type)
		}
		if !almostEqual(rec.Strength, 0.7) {
			t.Errorf("strength = %v, want 0.7", rec.Strength)
		}
	})

	t.Run("strength averages even without type preference", func(t *testing.T) {
		rec := mergePreferences(draft(domain.CoffeeTypeLongEspresso, 0.9), domain.DefaultUserPreferences())
		if rec.Type != domain.CoffeeTypeLongEspresso {
			t.Errorf("type = %s, want long espresso", rec.Type)
		}
		if !almostEqual(rec.Strength, 0.7) {
			t.Errorf("strength = %v, want 0.7", rec.Strength)
		}
	})
}

func TestEnforceCaffeineLimit(t *testing.T) {
	prefs := domain.DefaultUserPreferences() // 400 mg ceiling

	t.Run("under ceiling untouched", func(t *testing.T) {
		rec := enforceCaffeineLimit(draft(domain.CoffeeTypeShortEspresso, 1.0), 0, prefs)
		if !almostEqual(rec.Strength, 1.0) || len(rec.Reasoning) != 0 {
			t.Errorf("expected no change, got strength=%v reasoning=%v", rec.Strength, rec.Reasoning)
		}
	})

	t.Run("clamps strength to remaining budget", func(t *testing.T) {
		// 390 consumed of 400 leaves 10mg; a short espresso carries 63mg.
		rec := enforceCaffeineLimit(draft(domain.CoffeeTypeShortEspresso, 1.0), 390, prefs)
		want := 10.0 / 63.0
		if !almostEqual(rec.Strength, want) {
			t.Errorf("strength = %v, want %v", rec.Strength, want)
		}
		if len(rec.Reasoning) != 1 || !strings.Contains(strings.ToLower(rec.Reasoning[0]), "limit") {
			t.Errorf("expected a limit rationale fragment, got %v", rec.Reasoning)
		}
	})

	t.Run("exhausted budget forces symbolic latte", func(t *testing.T) {
		rec := enforceCaffeineLimit(draft(domain.CoffeeTypeShortEspresso, 1.0), 450, prefs)
		if rec.Type != domain.CoffeeTypeLatte {
			t.Errorf("type = %s, want latte", rec.Type)
		}
		if !almostEqual(rec.Strength, 0.1) {
			t.Errorf("strength = %v, want 0.1", rec.Strength)
		}
		if len(rec.Reasoning) != 1 || !strings.Contains(strings.ToLower(rec.Reasoning[0]), "limit reached") {
			t.Errorf("expected a limit-reached rationale fragment, got %v", rec.Reasoning)
		}
	})
}

func TestFinalizeSafety(t *testing.T) {
	t.Run("late afternoon ceiling", func(t *testing.T) {
		rec := finalizeSafety(draft(domain.CoffeeTypeShortEspresso, 0.9), domain.TimeContext{HourOfDay: 16})
		if !almostEqual(rec.Strength, 0.6) {
			t.Errorf("strength = %v, want 0.6", rec.Strength)
		}
		if rec.Type != domain.CoffeeTypeShortEspresso {
			t.Errorf("type should be untouched before 18h, got %s", rec.Type)
		}
	})

	t.Run("evening override", func(t *testing.T) {
		rec := finalizeSafety(draft(domain.CoffeeTypeShortEspresso, 0.9), domain.TimeContext{HourOfDay: 21})
		if rec.Type != domain.CoffeeTypeLatte {
			t.Errorf("type = %s, want latte", rec.Type)
		}
		if rec.Strength > 0.4+floatEps {
			t.Errorf("strength = %v, want <= 0.4", rec.Strength)
		}
	})

	t.Run("final clamps are authoritative", func(t *testing.T) {
		rec := domain.Recommendation{Type: domain.CoffeeTypeLatte, Strength: 0.02, Urgency: 1.7}
		rec = finalizeSafety(rec, domain.TimeContext{HourOfDay: 10})
		if !almostEqual(rec.Strength, 0.1) {
			t.Errorf("strength = %v, want floor 0.1", rec.Strength)
		}
		if !almostEqual(rec.Urgency, 1.0) {
			t.Errorf("urgency = %v, want cap 1.0", rec.Urgency)
		}
	})
}
