package main

// @title ViVeMap API
// @version 1.0.0
// @description API каталога мест Huancayo Vive: фильтры по категориям, подкатегориям, временным рамкам и флагам,
// @description сессии фильтров с действиями toggle/set/preset/reset, представления reels, list и map,
// @description готовые и популярные поиски.

// @contact.name API Support
// @contact.email support@vivemap.pe

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/vivemap/docs"
	"github.com/vivemap/internal/config"
	httpDelivery "github.com/vivemap/internal/delivery/http"
	"github.com/vivemap/internal/delivery/http/handler"
	"github.com/vivemap/internal/domain"
	"github.com/vivemap/internal/domain/repository"
	"github.com/vivemap/internal/pkg/logger"
	"github.com/vivemap/internal/repository/cache"
	"github.com/vivemap/internal/repository/postgres"
	redisRepo "github.com/vivemap/internal/repository/redis"
	"github.com/vivemap/internal/repository/static"
	"github.com/vivemap/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting ViVeMap API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("places_source", cfg.Catalog.Source),
	)

	// 3. Static catalog: taxonomy and presets always come from it
	catalog, err := static.Load(log)
	if err != nil {
		log.Fatal("Failed to load catalog", zap.Error(err))
	}

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	checks := map[string]handler.HealthChecker{"redis": redisClient}

	// 5. Places source
	var (
		placeRepo repository.PlaceRepository = catalog
		cacheRepo repository.CacheRepository
		db        *postgres.DB
	)
	if cfg.UsesPostgres() {
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		placeRepo = postgres.NewPlaceRepository(db)
		cacheRepo = cache.NewCacheRepository(redisClient)
		checks["postgres"] = db
		log.Info("PostgreSQL connected")
	}

	// 6. Initialize repositories
	sessionRepo := redisRepo.NewSessionRepository(redisClient.Client(), log)
	statsRepo := redisRepo.NewSearchStatsRepository(redisClient.Client(), cfg.Session.TTL, log)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 7. Initialize use cases
	placeUC := usecase.NewPlaceUseCase(placeRepo, cacheRepo, log, cfg.Cache.CatalogCacheTTL, usecase.MapOptions{
		AccessToken: cfg.Map.AccessToken,
		Center:      domain.Point{Lat: cfg.Map.CenterLat, Lon: cfg.Map.CenterLon},
		Zoom:        cfg.Map.Zoom,
		PlaceZoom:   cfg.Map.PlaceZoom,
	})
	categoryUC := usecase.NewCategoryUseCase(catalog, log)
	sessionUC := usecase.NewSessionUseCase(
		sessionRepo,
		statsRepo,
		streamRepo,
		catalog,
		catalog,
		placeUC,
		log,
		cfg.Session.TTL,
		cfg.Search.RecentLimit,
	)
	searchUC := usecase.NewSearchUseCase(catalog, statsRepo, log, cfg.Search.PopularLimit)

	if cfg.Map.AccessToken == "" {
		log.Warn("MAPBOX_ACCESS_TOKEN is not set, map view will be reported as unavailable")
	}

	// 8. Initialize HTTP server
	server := httpDelivery.NewServer(cfg, log, httpDelivery.Handlers{
		Place:    handler.NewPlaceHandler(placeUC, log),
		Category: handler.NewCategoryHandler(categoryUC, log),
		Session:  handler.NewSessionHandler(sessionUC, log),
		Search:   handler.NewSearchHandler(searchUC, log),
		Health:   handler.NewHealthHandler(checks, log),
	})

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if db != nil {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL", zap.Error(err))
		}
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
