package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/vivemap/internal/config"
	"github.com/vivemap/internal/pkg/logger"
	"github.com/vivemap/internal/repository/cache"
	redisRepo "github.com/vivemap/internal/repository/redis"
	"github.com/vivemap/internal/repository/static"
	"github.com/vivemap/internal/usecase"
	"github.com/vivemap/internal/worker"
	"github.com/vivemap/internal/worker/search"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.NewWithService(cfg.Log.Level, "vivemap-worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting popular searches worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.Int("max_retries", cfg.Worker.MaxRetries))

	catalog, err := static.Load(log)
	if err != nil {
		log.Fatal("Failed to load catalog", zap.Error(err))
	}

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Initialize repositories and use cases
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	statsRepo := redisRepo.NewSearchStatsRepository(redisClient.Client(), cfg.Session.TTL, log)
	searchUC := usecase.NewSearchUseCase(catalog, statsRepo, log, cfg.Search.PopularLimit)

	// 5. Initialize workers
	popularWorker := search.NewPopularSearchWorker(streamRepo, searchUC, search.Options{
		ConsumerGroup: cfg.Worker.ConsumerGroup,
		BatchSize:     cfg.Worker.BatchSize,
		MaxRetries:    cfg.Worker.MaxRetries,
	}, log)

	workerManager := worker.NewWorkerManager(log, worker.DefaultShutdownTimeout)
	if err := workerManager.Register(popularWorker); err != nil {
		log.Fatal("Failed to register worker", zap.Error(err))
	}

	// 6. Start workers
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("Received shutdown signal")

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
	cancel()

	log.Info("Worker shutdown complete")
}
