package services

import (
	"context"
	"fmt"
	"time"

	"github.com/localnerve/imoveis/internal/config"
	"github.com/localnerve/imoveis/internal/utils"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck pings the database within a short deadline
func HealthCheck(ctx context.Context, cfg *config.Config, db *gorm.DB) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database connection error: %v", err)
		utils.Logger.WithError(err).Warn("Health check failed - database connection")
		return result
	}

	ctx, cancel := context.WithTimeout(ctx, 1500*time.Millisecond)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		result.Status = "unhealthy"
		result.Database = "unreachable"
		result.Details["database_ping_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database ping failed: %v", err)
		utils.Logger.WithError(err).Warn("Health check failed - database ping")
		return result
	}

	result.Database = "ok"
	result.Details["database_type"] = db.Dialector.Name()
	result.Details["database_name"] = cfg.DBDatabase
	utils.Logger.Debug("Health check passed - all systems operational")
	return result
}
