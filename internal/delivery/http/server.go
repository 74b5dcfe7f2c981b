package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/vivemap/internal/config"
	"github.com/vivemap/internal/delivery/http/handler"
	"github.com/vivemap/internal/delivery/http/middleware"
	"github.com/vivemap/internal/pkg/errors"
	"github.com/vivemap/internal/pkg/utils"
)

// Handlers - обработчики, которые регистрирует сервер
type Handlers struct {
	Place    *handler.PlaceHandler
	Category *handler.CategoryHandler
	Session  *handler.SessionHandler
	Search   *handler.SearchHandler
	Health   *handler.HealthHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
}

// NewServer - создание нового HTTP сервера
func NewServer(cfg *config.Config, logger *zap.Logger, handlers Handlers) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "ViVeMap API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - доступ к fiber.App (для тестов через app.Test)
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.handlers.Health.Health)

	// Taxonomy
	api.Get("/categories", s.handlers.Category.GetCategories)
	api.Get("/categories/:id", s.handlers.Category.GetCategory)
	api.Get("/categories/:id/subcategories", s.handlers.Category.GetSubcategories)

	// Stateless filtering
	api.Get("/places", s.handlers.Place.ListPlaces)
	api.Get("/places/:id", s.handlers.Place.GetPlace)
	api.Get("/places/:id/map", s.handlers.Place.PlaceMap)
	api.Get("/summary", s.handlers.Place.Summary)
	api.Get("/map/config", s.handlers.Place.MapConfig)

	// Filter sessions
	api.Post("/sessions", s.handlers.Session.CreateSession)
	api.Get("/sessions/:id", s.handlers.Session.GetSession)
	api.Post("/sessions/:id/actions", s.handlers.Session.Dispatch)
	api.Get("/sessions/:id/places", s.handlers.Session.SessionPlaces)
	api.Get("/sessions/:id/recent", s.handlers.Session.RecentSearches)

	// Searches
	api.Get("/searches/presets", s.handlers.Search.GetPresets)
	api.Get("/searches/popular", s.handlers.Search.GetPopular)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не обработанные в handler-ах (404 роутера, паники).
// Ответ в том же формате, что и utils.SendError.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			appErr := errors.New(routeErrorCode(fe.Code), fe.Message, fe.Code)
			return c.Status(fe.Code).JSON(utils.ErrorResponse{Error: appErr})
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}

func routeErrorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	}
	return "INTERNAL_SERVER_ERROR"
}
