package api

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"path/filepath"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/papercomputeco/rizz/api/mcp"
	"github.com/papercomputeco/rizz/pkg/metrics"
)

//go:embed templates/home.html
var templateFS embed.FS

// Translator runs the translation pipeline for a single request.
type Translator interface {
	Translate(ctx context.Context, input string, contextText *string) (string, error)
}

// Server is the rizz web server.
type Server struct {
	config     Config
	translator Translator
	logger     *zap.Logger
	app        *fiber.App
	page       *template.Template
}

// NewServer creates a new API server.
// The translator is injected so the CLI and MCP tool can share one pipeline.
func NewServer(config Config, translator Translator, logger *zap.Logger) (*Server, error) {
	if translator == nil {
		return nil, errors.New("translator is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	page, err := template.ParseFS(templateFS, "templates/home.html")
	if err != nil {
		return nil, fmt.Errorf("parsing home template: %w", err)
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	s := &Server{
		config:     config,
		translator: translator,
		logger:     logger,
		app:        app,
		page:       page,
	}

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(s.observe)
	app.Use(recover.New())
	app.Use(compress.New())

	staticDir := config.StaticDir
	if staticDir == "" {
		staticDir = "static"
	}
	app.Static("/static", staticDir)
	app.Get("/robots.txt", s.sendStatic(filepath.Join(staticDir, "robots.txt")))
	app.Get("/ads.txt", s.sendStatic(filepath.Join(staticDir, "ads.txt")))

	app.Get("/healthz", s.handleHealth)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	if config.EnableMCP {
		mcpServer, err := mcp.NewServer(mcp.Config{
			Translator: translator,
			Logger:     logger,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create MCP server: %w", err)
		}
		app.All("/mcp", adaptor.HTTPHandler(mcpServer.Handler()))
	}

	app.Get("/", s.handleHome)
	app.Post("/", s.handleTranslate)

	return s, nil
}

// RunWithListener serves on the provided listener until Shutdown.
func (s *Server) RunWithListener(listener net.Listener) error {
	s.logger.Info("starting rizz server",
		zap.String("listen", listener.Addr().String()),
		zap.Bool("mcp", s.config.EnableMCP),
	)
	return s.app.Listener(listener)
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// errorHandler answers with the status of a *fiber.Error and a generic 500
// for everything else, so error detail never reaches the client.
func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).SendString(fiberErr.Message)
	}
	return c.Status(fiber.StatusInternalServerError).SendString(internalServerError)
}
