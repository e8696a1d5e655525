package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai-task-planner/config"
	_ "ai-task-planner/docs" // Swagger docs
	"ai-task-planner/internal/httpserver"
	"ai-task-planner/internal/migration"
	"ai-task-planner/pkg/database"
	"ai-task-planner/pkg/datemath"
	"ai-task-planner/pkg/encrypter"
	"ai-task-planner/pkg/gcalendar"
	"ai-task-planner/pkg/llmprovider"
	"ai-task-planner/pkg/log"
	"ai-task-planner/pkg/scope"
)

// @title       AI Task Planner API
// @description Breaks goals into tasks with an AI assistant, stores them as lists and reports progress.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AI Task Planner...")
	logger.Infof(ctx, "Environment: %s, timezone: %s", cfg.Environment.Name, cfg.Environment.Timezone)

	// 3. Database
	db, err := database.Open(ctx, database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to open database: %v", err)
		return
	}
	defer db.Close()

	applied, err := database.Migrate(ctx, db, migration.All())
	if err != nil {
		logger.Errorf(ctx, "Failed to migrate database: %v", err)
		return
	}
	logger.Infof(ctx, "Database ready (%s), %d migration(s) applied", cfg.Database.Driver, applied)

	// 4. Shared components
	dateMathParser, err := datemath.NewParser(cfg.Environment.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Invalid timezone: %v", err)
		return
	}
	jwtManager := scope.New(cfg.JWT.SecretKey, cfg.JWT.TTL)
	passwordEncrypter := encrypter.New(cfg.Encrypter.BcryptCost)

	// 5. LLM providers (optional)
	llmManager := initLLM(ctx, logger, &cfg.LLM)

	// 6. Google Calendar (optional)
	var calendarClient gcalendar.Calendar
	if cfg.GoogleCalendar.Enabled {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run ./scripts/gcal-auth` to generate the token file")
		} else {
			calendarClient = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		JWTManager:  jwtManager,
		Encrypter:   passwordEncrypter,
		DateMath:    dateMathParser,
		LLM:         llmManager,
		Calendar:    calendarClient,
		Cookie:      cfg.Cookie,
		RateLimit:   cfg.RateLimit,
		Planner:     cfg.Planner,
		Analysis:    cfg.Analysis,
		CalendarID:  cfg.GoogleCalendar.CalendarID,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// initLLM builds the provider manager, or returns nil when no provider is usable.
func initLLM(ctx context.Context, logger log.Logger, cfg *config.LLMConfig) *llmprovider.Manager {
	if len(cfg.Providers) == 0 {
		logger.Warn(ctx, "No LLM provider configured, planner chat is disabled")
		return nil
	}

	providers, warnings, err := llmprovider.InitializeProviders(cfg)
	for _, w := range warnings {
		logger.Warn(ctx, w)
	}
	if err != nil {
		logger.Warnf(ctx, "LLM providers unavailable, planner chat is disabled: %v", err)
		return nil
	}

	// durations were checked by config.Load
	retryDelay, _ := time.ParseDuration(cfg.RetryDelay)
	maxTotal, _ := time.ParseDuration(cfg.MaxTotalTimeout)

	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}
	return llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, logger)
}
