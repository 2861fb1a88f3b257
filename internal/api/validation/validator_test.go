package validation

import (
	"testing"
)

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"DeviceID", "device_id"},
		{"UserID", "user_id"},
		{"IDToken", "id_token"},
		{"QualityScore", "quality_score"},
		{"DurationHours", "duration_hours"},
		{"CaffeineCeilingMg", "caffeine_ceiling_mg"},
		{"Timezone", "timezone"},
		{"HTTPStatus", "http_status"},
		{"already_snake", "already_snake"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := toSnakeCase(tt.in); got != tt.want {
				t.Errorf("toSnakeCase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_FieldNames(t *testing.T) {
	type brewForm struct {
		DeviceID   string  `validate:"required"`
		CoffeeType string  `validate:"required,coffee_type"`
		Strength   float64 `validate:"min=0,max=1"`
	}

	fieldErrors := Validate(brewForm{
		CoffeeType: "FLAT_WHITE",
		Strength:   1.5,
	})

	want := map[string]bool{
		"device_id":   false,
		"coffee_type": false,
		"strength":    false,
	}
	for _, fe := range fieldErrors {
		if _, ok := want[fe.Field]; !ok {
			t.Errorf("unexpected field name %q", fe.Field)
			continue
		}
		want[fe.Field] = true
	}
	for field, seen := range want {
		if !seen {
			t.Errorf("expected a field error for %q", field)
		}
	}
}

func TestValidate_Valid(t *testing.T) {
	type form struct {
		Timezone string `validate:"required,timezone"`
	}

	if errs := Validate(form{Timezone: "Europe/Warsaw"}); errs != nil {
		t.Errorf("expected no field errors, got %v", errs)
	}
}
