package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Crystallized21/spacecase/internal/app"
	"github.com/Crystallized21/spacecase/internal/cache"
	"github.com/Crystallized21/spacecase/internal/clients"
	"github.com/Crystallized21/spacecase/internal/config"
	"github.com/Crystallized21/spacecase/internal/httpapi"
	"github.com/Crystallized21/spacecase/internal/repository"
	"github.com/Crystallized21/spacecase/internal/service"
	"github.com/Crystallized21/spacecase/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	if err := telemetry.Init(cfg.SentryDSN, cfg.Environment); err != nil {
		logger.Warn("Sentry disabled", zap.Error(err))
	}
	defer telemetry.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	// Применяем миграции до старта HTTP
	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	refCache := cache.New(cfg.RedisAddr, logger)
	defer refCache.Close()

	userRepo := repository.NewUserRepository(pool)
	subjectRepo := repository.NewSubjectRepository(pool)
	commonRepo := repository.NewCommonRepository(pool)
	roomRepo := repository.NewRoomRepository(pool)
	slotRepo := repository.NewSlotTimeRepository(pool)
	lineSlotRepo := repository.NewLineSlotRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	rules := service.EmailRules{
		TeacherDomain: cfg.TeacherEmailDomain,
		StudentPrefix: cfg.StudentEmailPrefix,
		DevPrefix:     cfg.DevEmailPrefix,
	}

	userService := service.NewUserService(userRepo, subjectRepo, rules, logger)
	bookingService := service.NewBookingService(userRepo, commonRepo, roomRepo, bookingRepo, logger)
	roomService := service.NewRoomService(commonRepo, roomRepo, bookingRepo, refCache, logger)
	slotService := service.NewSlotService(slotRepo, lineSlotRepo, roomRepo, commonRepo, bookingRepo, refCache, logger)

	clerkClient := clients.NewClerkClient(cfg.ClerkSecretKey)

	server, err := httpapi.NewServer(cfg, userService, bookingService, roomService, slotService, clerkClient, logger)
	if err != nil {
		logger.Fatal("Failed to create server", zap.Error(err))
	}

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: server.Router(),
	}

	go func() {
		logger.Info("Starting spacecase server",
			zap.String("environment", cfg.Environment),
			zap.String("addr", cfg.HTTPAddr),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
	}
}
