// @title Backend Gemini API
// @version 1.0
// @description Exam generation API backed by the Gemini generative-language service.
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/loismiguel15/backendgemini/internal/adapter/modelclient"
	"github.com/loismiguel15/backendgemini/internal/config"
	"github.com/loismiguel15/backendgemini/internal/domain"
	"github.com/loismiguel15/backendgemini/internal/handler"
	"github.com/loismiguel15/backendgemini/internal/logger"
	"github.com/loismiguel15/backendgemini/internal/middleware"
	"github.com/loismiguel15/backendgemini/internal/service"
	"github.com/loismiguel15/backendgemini/internal/validation"

	_ "github.com/loismiguel15/backendgemini/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// The credential is resolved once at startup. Its absence is a
	// deployment misconfiguration: the server still boots so the condition
	// is observable, but every generation request fails with a
	// CONFIGURATION_ERROR until the key is provided.
	var generator domain.TextGenerator
	if cfg.Gemini.APIKey == "" {
		appLogger.Warn("GEMINI_API_KEY is not set; exam generation will fail with a configuration error")
	} else {
		geminiGenerator, err := modelclient.NewGeminiGenerator(context.Background(), cfg.Gemini)
		if err != nil {
			appLogger.Fatal("Failed to create Gemini client", zap.Error(err))
		}
		generator = geminiGenerator
		appLogger.Info("Gemini client initialized",
			zap.Strings("models", cfg.Gemini.Models),
			zap.Duration("timeout", cfg.Gemini.Timeout),
		)
	}

	validator := validation.NewValidator(cfg.Exam)
	examService := service.NewExamService(generator, validator)
	examHandler := handler.NewExamHandler(examService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/health", examHandler.Health)

	apiGroup := app.Group("/api")
	apiGroup.Post("/exams/generate", examHandler.GenerateExam)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
