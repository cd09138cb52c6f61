package http

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/asset-map-service/internal/config"
	"github.com/asset-map-service/internal/delivery/http/handler"
	"github.com/asset-map-service/internal/delivery/http/middleware"
	"github.com/asset-map-service/internal/metrics"
	"github.com/asset-map-service/internal/pkg/errors"
	"github.com/asset-map-service/internal/pkg/utils"
)

// Handlers - набор обработчиков HTTP API
type Handlers struct {
	Health   *handler.HealthHandler
	Asset    *handler.AssetHandler
	Cluster  *handler.ClusterHandler
	Viewport *handler.ViewportHandler
	Session  *handler.SessionHandler
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
	s := &Server{
		app:      NewApp(logger),
		config:   cfg,
		logger:   logger,
		handlers: handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// NewApp - fiber-приложение с общими настройками сервиса
func NewApp(logger *zap.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:                  "Asset Map Service",
		ReadTimeout:              10 * time.Second,
		WriteTimeout:             10 * time.Second,
		IdleTimeout:              60 * time.Second,
		JSONEncoder:              json.Marshal,
		JSONDecoder:              json.Unmarshal,
		EnableSplittingOnParsers: true,
		ErrorHandler:             customErrorHandler(logger),
	})
}

// App возвращает fiber-приложение
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Metrics())
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	h := s.handlers
	api := s.app.Group("/api/v1")

	api.Get("/health", h.Health.Health)

	// Assets
	api.Get("/assets/geojson", h.Asset.GetGeoJSON)
	api.Get("/assets/groups", h.Asset.GetGroups)

	// Clusters
	api.Get("/clusters", h.Cluster.GetClusters)
	api.Get("/clusters/:id/expansion-zoom", h.Cluster.GetExpansionZoom)
	api.Get("/clusters/:id/children", h.Cluster.GetChildren)
	api.Get("/clusters/:id/leaves", h.Cluster.GetLeaves)

	// Viewport and click disambiguation
	api.Get("/viewport/assets", h.Viewport.GetVisible)
	api.Post("/proximity/resolve", h.Viewport.ResolveProximity)

	// Map sessions
	sessions := api.Group("/map/sessions")
	sessions.Post("/", h.Session.Create)
	sessions.Get("/:id", h.Session.Get)
	sessions.Post("/:id/events", h.Session.HandleEvent)
	sessions.Put("/:id/filter", h.Session.SetFilter)
	sessions.Delete("/:id", h.Session.Delete)
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

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if e, ok := err.(*fiber.Error); ok {
			if e.Code >= fiber.StatusInternalServerError {
				logger.Error("HTTP Error", zap.String("path", c.Path()), zap.Int("status", e.Code), zap.Error(err))
			}
			return c.Status(e.Code).JSON(utils.ErrorResponse{
				Error: errors.New(httpErrorCode(e.Code), e.Message, e.Code),
			})
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}

func httpErrorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE"
	default:
		if status < fiber.StatusInternalServerError {
			return "BAD_REQUEST"
		}
		return "INTERNAL_SERVER_ERROR"
	}
}
