package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/app"
	"alfredoptarigan/resume-screener/internal/config"
	"alfredoptarigan/resume-screener/internal/handlers"
	"alfredoptarigan/resume-screener/internal/logger"
)

// multipart overhead on top of the largest accepted file
const bodyLimitHeadroom = 1 << 20

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("creating a logger: %v", err)
	}
	defer zlog.Sync()

	zlog.Info("config loaded",
		zap.String("env", cfg.Server.Env),
		zap.Bool("dotenv", cfg.DotEnvLoaded),
		zap.String("tmp_dir", cfg.Storage.TempDir),
		zap.Int64("max_file_size", cfg.Storage.MaxFileSize),
	)

	// Initialize session, repositories and services
	components, err := app.Build(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to initialize services", zap.Error(err))
	}
	zlog.Info("services initialized")

	// Initialize Handlers
	jobHandler := handlers.NewJobHandler(
		components.Screening,
		components.Jobs,
		cfg.Storage.MaxFileSize,
	)
	evaluateHandler := handlers.NewEvaluationHandler(
		components.Screening,
		cfg.Storage.MaxFileSize,
		zlog,
	)
	resultHandler := handlers.NewResultHandler(components.Screening, components.Evaluations)

	// Create Fiber app
	server := fiber.New(fiber.Config{
		AppName:      "Resume Relevance Check API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + bodyLimitHeadroom,
		ErrorHandler: handlers.ErrorHandler(zlog),
	})

	// Middleware
	server.Use(recover.New())
	server.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	server.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	api := server.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/jobs", jobHandler.HandleCreate)
	api.Get("/jobs", jobHandler.HandleList)
	api.Get("/jobs/:id", jobHandler.HandleGet)
	api.Post("/evaluate", evaluateHandler.HandleEvaluate)
	api.Get("/results", resultHandler.HandleSummary)
	api.Get("/results/:id", resultHandler.HandleGetResult)
	api.Get("/about", handlers.HandleAbout)

	// Root route
	server.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Relevance Check API",
			"version": handlers.Version,
			"endpoints": []string{
				"POST /api/v1/jobs",
				"GET /api/v1/jobs",
				"GET /api/v1/jobs/:id",
				"POST /api/v1/evaluate",
				"GET /api/v1/results",
				"GET /api/v1/results/:id",
				"GET /api/v1/about",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zlog.Info("shutting down server")
		if err := server.Shutdown(); err != nil {
			zlog.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("server starting", zap.String("addr", addr))

	if err := server.Listen(addr); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}
