package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/bvyvyana/sleepbrew/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const seededDays = 40

// Run seeds the database with sample users, sleep snapshots, preferences,
// and consumption history. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.SleepSnapshot{},
		&domain.Preferences{},
		&domain.ConsumptionLog{},
		&domain.BrewLog{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo"},
		{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney"},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	coffeeTypes := []domain.CoffeeType{
		domain.CoffeeTypeLatte,
		domain.CoffeeTypeLongEspresso,
		domain.CoffeeTypeShortEspresso,
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i, user := range users {
		if err := seedSnapshotsForUser(db, user, rng); err != nil {
			return err
		}
		if err := seedConsumptionForUser(db, user, coffeeTypes, rng); err != nil {
			return err
		}

		// Give half the users explicit preferences; the rest exercise defaults.
		if i%2 == 0 {
			preferred := coffeeTypes[rng.Intn(len(coffeeTypes))]
			prefs := domain.Preferences{
				UserID:              user.ID,
				PreferredType:       &preferred,
				PreferredStrength:   0.4 + rng.Float64()*0.4,
				MaxCaffeinePerDayMg: 300 + float64(rng.Intn(3))*50,
			}
			if err := db.Save(&prefs).Error; err != nil {
				return fmt.Errorf("failed to create preferences for %s: %w", user.ID, err)
			}
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedSnapshotsForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 0; i < seededDays; i++ {
		date := now.AddDate(0, 0, -i)
		recorded := time.Date(date.Year(), date.Month(), date.Day(), 6+rng.Intn(3), rng.Intn(60), 0, 0, time.UTC)
		wake := recorded.Add(-time.Duration(rng.Intn(30)) * time.Minute)

		clientReqID := fmt.Sprintf("seed-snap-%s-%d", user.ID, i)
		snapshot := domain.SleepSnapshot{
			UserID:           user.ID,
			DurationSeconds:  float64(5*3600 + rng.Intn(4*3600)),
			QualityScore:     30 + rng.Float64()*65,
			AverageHeartRate: 50 + rng.Float64()*20,
			DeepSleepPercent: 10 + rng.Float64()*15,
			RemSleepPercent:  15 + rng.Float64()*15,
			DetectedWakeTime: &wake,
			RecordedAt:       recorded,
			ClientRequestID:  &clientReqID,
		}

		if err := db.Where("client_request_id = ?", clientReqID).FirstOrCreate(&snapshot).Error; err != nil {
			return fmt.Errorf("failed to create sleep snapshot: %w", err)
		}
	}
	return nil
}

func seedConsumptionForUser(db *gorm.DB, user domain.User, coffeeTypes []domain.CoffeeType, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 0; i < seededDays; i++ {
		date := now.AddDate(0, 0, -i)
		coffees := 1 + rng.Intn(3)
		for j := 0; j < coffees; j++ {
			consumedAt := time.Date(date.Year(), date.Month(), date.Day(), 7+rng.Intn(9), rng.Intn(60), 0, 0, time.UTC)
			coffeeType := coffeeTypes[rng.Intn(len(coffeeTypes))]
			strength := 0.3 + rng.Float64()*0.7

			entry := domain.ConsumptionLog{
				UserID:     user.ID,
				CoffeeType: coffeeType,
				Strength:   strength,
				CaffeineMg: coffeeType.CaffeineContentMg() * strength,
				ConsumedAt: consumedAt,
			}

			if err := db.Create(&entry).Error; err != nil {
				return fmt.Errorf("failed to create consumption log: %w", err)
			}
		}
	}
	return nil
}
