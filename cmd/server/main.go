package main

import (
	"context"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/talentdesk/interview-scheduler/internal/app"
	"github.com/talentdesk/interview-scheduler/internal/config"
	"github.com/talentdesk/interview-scheduler/internal/controller"
	"github.com/talentdesk/interview-scheduler/internal/repository"
	"github.com/talentdesk/interview-scheduler/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting interview scheduler",
		zap.String("environment", cfg.Environment),
		zap.String("addr", cfg.HTTPAddr),
		zap.Int("horizon_days", cfg.SlotHorizonDays),
	)

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, cfg.MigrationsDir, logger)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	availabilityRepo := repository.NewAvailabilityRepository(pool)
	interviewRepo := repository.NewInterviewRepository(pool)
	companyRepo := repository.NewCompanyRepository(pool)
	bookingStore := repository.NewBookingStore(pool)

	tokens := service.NewSlotTokenIssuer(cfg.JWTSecret)
	scheduleService := service.NewScheduleService(availabilityRepo, logger)
	slotService := service.NewSlotService(availabilityRepo, interviewRepo, tokens, cfg.SlotHorizonDays, logger)
	bookingService := service.NewBookingService(bookingStore, logger)

	ctl := controller.NewController(
		scheduleService,
		slotService,
		bookingService,
		tokens,
		companyRepo,
		interviewRepo,
		controller.NewRoleAuthorizer(controller.ScheduleManagementRoles...),
		logger,
	)

	router := controller.NewRouter(ctl, pool, logger, cfg.JWTSecret, cfg.StaticTokens)

	if err := router.Run(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
		logger.Fatal("HTTP server stopped", zap.Error(err))
	}
}
