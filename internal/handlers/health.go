package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/imoveis/internal/config"
	"github.com/localnerve/imoveis/internal/services"
	"gorm.io/gorm"
)

// HealthHandler reports database reachability
type HealthHandler struct {
	Config *config.Config
	DB     *gorm.DB
}

// Check handles GET /health
// @Summary Service health
// @Description Pings the database
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	result := services.HealthCheck(c.UserContext(), h.Config, h.DB)
	if result.Status != "healthy" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(result)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
