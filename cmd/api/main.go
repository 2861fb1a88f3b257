// SleepBrew API
//
// REST API that turns sleep snapshots into coffee recommendations and
// dispatches brew commands to a networked espresso machine.
//
//	@title			SleepBrew API
//	@version		1.0
//	@description	Sleep-driven coffee recommendations and machine brewing.
//
//	@BasePath	/
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			sleep-snapshots
//	@tag.description	Sleep snapshot ingestion and history
//
//	@tag.name			recommendations
//	@tag.description	Deterministic coffee recommendations
//
//	@tag.name			brews
//	@tag.description	Machine brew dispatch and history
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/bvyvyana/sleepbrew/internal/api"
	"github.com/bvyvyana/sleepbrew/internal/api/handler"
	"github.com/bvyvyana/sleepbrew/internal/config"
	"github.com/bvyvyana/sleepbrew/internal/device"
	"github.com/bvyvyana/sleepbrew/internal/domain"
	"github.com/bvyvyana/sleepbrew/internal/langfuse"
	"github.com/bvyvyana/sleepbrew/internal/llm"
	"github.com/bvyvyana/sleepbrew/internal/repository"
	"github.com/bvyvyana/sleepbrew/internal/seed"
	"github.com/bvyvyana/sleepbrew/internal/service"
	"github.com/bvyvyana/sleepbrew/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op unless Langfuse is configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "sleepbrew-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Failed to shut down tracer: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.SleepSnapshot{},
		&domain.Preferences{},
		&domain.ConsumptionLog{},
		&domain.BrewLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	snapshotRepo := repository.NewSleepSnapshotRepository(db)
	preferenceRepo := repository.NewPreferenceRepository(db)
	consumptionRepo := repository.NewConsumptionRepository(db)
	brewLogRepo := repository.NewBrewLogRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	snapshotService := service.NewSnapshotService(snapshotRepo, userRepo)
	preferenceService := service.NewPreferenceService(preferenceRepo, userRepo)
	consumptionService := service.NewConsumptionService(consumptionRepo, userRepo)
	recommendationService := service.NewRecommendationService(snapshotRepo, preferenceService, consumptionService, userRepo)

	// Connect to the machine broker (optional; brewing is unavailable without it)
	var dispatcher device.Dispatcher
	if cfg.MQTTBroker != "" {
		mqttClient, err := device.Connect(device.ClientConfig{
			Broker:   cfg.MQTTBroker,
			ClientID: cfg.MQTTClientID,
			Username: cfg.MQTTUsername,
			Password: cfg.MQTTPassword,
		})
		if err != nil {
			log.Fatalf("Failed to connect to MQTT broker: %v", err)
		}
		dispatcher, err = device.NewMQTTDispatcher(mqttClient, device.DispatcherConfig{
			CommandTopic: cfg.MQTTCommandTopic,
			StatusTopic:  cfg.MQTTStatusTopic,
			AckTimeout:   cfg.MQTTAckTimeout,
		})
		if err != nil {
			log.Fatalf("Failed to initialize brew dispatcher: %v", err)
		}
	} else {
		log.Println("Warning: MQTT broker not configured, brew endpoint will be unavailable")
	}

	brewService := service.NewBrewService(dispatcher, recommendationService, brewLogRepo, userRepo)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIInsightsModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	} else if cfg.LangfusePromptName != "" || cfg.PromptCachePath != "" {
		// Prefer a Langfuse-managed insights prompt over the built-in one.
		prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
			BaseURL:     cfg.LangfuseBaseURL,
			PublicKey:   cfg.LangfusePublicKey,
			SecretKey:   cfg.LangfuseSecretKey,
			PromptName:  cfg.LangfusePromptName,
			PromptLabel: cfg.LangfusePromptLabel,
			SavePath:    cfg.PromptCachePath,
		})
		if err != nil {
			log.Printf("Warning: falling back to built-in insights prompt: %v", err)
		} else {
			openaiClient.SetSystemPrompt(prompt)
		}
	}

	insightsService := service.NewInsightsService(preferenceService, openaiClient, snapshotRepo, consumptionRepo, brewLogRepo, userRepo)

	// Langfuse client for insight feedback scores
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	snapshotHandler := handler.NewSnapshotHandler(snapshotService)
	preferenceHandler := handler.NewPreferenceHandler(preferenceService)
	consumptionHandler := handler.NewConsumptionHandler(consumptionService, preferenceService)
	recommendationHandler := handler.NewRecommendationHandler(recommendationService)
	brewHandler := handler.NewBrewHandler(brewService)
	insightsHandler := handler.NewInsightsHandler(insightsService, langfuseClient)

	// Setup router
	router := api.NewRouter(
		userHandler,
		snapshotHandler,
		preferenceHandler,
		consumptionHandler,
		recommendationHandler,
		brewHandler,
		insightsHandler,
	)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
