package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/counselor-go-api/internal/utils"
)

// Version is the API version reported by the health endpoint.
const Version = "1.0.0"

// HealthHandler reports service liveness.
type HealthHandler struct {
	appName string
	env     string
}

// NewHealthHandler constructs a health handler.
func NewHealthHandler(appName, env string) *HealthHandler {
	return &HealthHandler{appName: appName, env: env}
}

// Check responds with the service status.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return utils.SendJSON(c, fiber.StatusOK, fiber.Map{
		"status":      "healthy",
		"version":     Version,
		"service":     h.appName,
		"environment": h.env,
	})
}
