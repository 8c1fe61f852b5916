package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	natsbroker "github.com/lothronx/cm3070-lawtime-sub001/internal/adapters/eventbroker/nats"
	"github.com/lothronx/cm3070-lawtime-sub001/internal/adapters/handlers/http/chi"
	attachment2 "github.com/lothronx/cm3070-lawtime-sub001/internal/adapters/handlers/http/chi/v1/attachment"
	"github.com/lothronx/cm3070-lawtime-sub001/internal/adapters/repository/postgres"
	"github.com/lothronx/cm3070-lawtime-sub001/internal/adapters/storage/minio"
	"github.com/lothronx/cm3070-lawtime-sub001/internal/config"
	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/port"
	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/service/cleanup"
	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/service/session"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			logger.Error("failed to close database", "error", err)
			os.Exit(1)
		}
	}(db)
	logger.Info("db connection established")

	//storage
	minioAdapter, err := minio.NewAdapter(ctx, cfg.Minio, logger)
	if err != nil {
		logger.Error("failed to init minio", "error", err)
		os.Exit(1)
	}

	//event broker
	publisher, err := natsbroker.NewNATSPublisher(ctx, cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to init nats publisher", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	//repositories
	attachmentRepo := postgres.NewSqlAttachmentRepository(db)

	//services
	sessionManager := session.NewManager(minioAdapter, attachmentRepo, publisher, cfg.Staging, logger)
	cleanupService := cleanup.NewCleanupService(sessionManager, minioAdapter, cfg.Staging.SessionTTL, logger)

	//http
	attachmentHandler := attachment2.NewAttachmentHandlerV1(sessionManager, logger)

	router := chi.NewRouter(logger, attachmentHandler, cfg.Env.Env)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	// init cleanup task
	wg.Add(1)
	go func() {
		defer wg.Done()
		initCleanupTask(ctx, cleanupService, cfg.Staging.CleanupEvery, logger)
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

func initCleanupTask(ctx context.Context, service port.CleanupService, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	logger.Info("cleanup task initialized", "interval", every)

	for {
		select {
		case <-ticker.C:
			logger.Info("cleanup task starting")
			expired := service.CleanupIdleSessions(ctx)
			if expired > 0 {
				logger.Info("idle sessions expired", "count", expired)
			}
			if err := service.CleanupOrphanedStaging(ctx); err != nil {
				logger.Error("failed to cleanup orphaned staging objects", "error", err)
			} else {
				logger.Info("cleanup task completed successfully")
			}
		case <-ctx.Done():
			logger.Info("cleanup task stopped")
			return
		}
	}

}
