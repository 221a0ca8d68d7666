package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/localnerve/imoveis/internal/config"
	"github.com/localnerve/imoveis/internal/database"
	"github.com/localnerve/imoveis/internal/server"
	"github.com/localnerve/imoveis/internal/utils"
)

// @title Imoveis API
// @version 1.0.0
// @description Property-management back office REST API
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/imoveis
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:8000
// @BasePath /
// @schemes http https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	utils.InitLogger(cfg.AppName, cfg.LogLevel)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		utils.Logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		utils.Logger.Fatalf("Failed to run migrations: %v", err)
	}

	app := server.New(cfg, db)

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		utils.Logger.Info("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	utils.Logger.Infof("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		utils.Logger.Fatalf("Failed to start server: %v", err)
	}

	utils.Logger.Info("Server stopped")
}
