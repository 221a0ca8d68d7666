package server

import (
	"errors"
	"strings"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/localnerve/imoveis/internal/config"
	"github.com/localnerve/imoveis/internal/handlers"
	"github.com/localnerve/imoveis/internal/middleware"
	"github.com/localnerve/imoveis/internal/routes"
	"github.com/localnerve/imoveis/internal/types"
	"github.com/localnerve/imoveis/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	_ "github.com/localnerve/imoveis/docs/api" // Swagger docs
)

// New assembles the application: global middleware, the resource routes
// under /api, health, metrics, docs and the front-end entry page.
func New(cfg *config.Config, db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		ErrorHandler:          errorHandler,
		DisableStartupMessage: !cfg.Debug,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		Output: utils.Logger.WriterLevel(logrus.InfoLevel),
	}))
	app.Use(compress.New())
	app.Use(middleware.AllowedHosts(cfg.AllowedHosts, cfg.Debug))
	if len(cfg.CORSAllowedOrigins) > 0 {
		app.Use(cors.New(cors.Config{
			AllowOrigins: strings.Join(cfg.CORSAllowedOrigins, ","),
			AllowHeaders: "Origin, Content-Type, Accept, X-Api-Version",
		}))
	}

	// Prometheus metrics, one registry per app
	metrics := fiberprometheus.NewWithRegistry(prometheus.NewRegistry(), cfg.AppName, "http", "", nil)
	metrics.RegisterAt(app, "/metrics")
	app.Use(metrics.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health
	health := &handlers.HealthHandler{Config: cfg, DB: db}
	app.Get("/health", health.Check)

	// Collected static assets
	app.Static("/static", cfg.StaticDir)

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())
	routes.Register(api, routes.Table(db))

	// Front-end entry page
	index := &handlers.IndexHandler{IndexFile: cfg.IndexFile}
	app.Get("/", index.Index)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "[404] Resource Not Found")
	})

	return app
}

// errorHandler renders errors returned by middleware and routing
func errorHandler(c *fiber.Ctx, err error) error {
	var custom *types.CustomError
	if errors.As(err, &custom) {
		return utils.ErrorResponse(c, custom.Message, custom.Code, custom.Type)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return utils.ErrorResponse(c, fe.Message, fe.Code, "http")
	}

	utils.Logger.WithError(err).WithField("url", c.OriginalURL()).Error("Unhandled error")
	return utils.ErrorResponse(c, "Internal server error", fiber.StatusInternalServerError, "unknown")
}
