package http

import "github.com/gofiber/fiber/v2"

// Handler struct - Miscellaneous HTTP endpoints
type Handler struct{}

// New func - Creates the handler
func New() *Handler {
	return &Handler{}
}

// HealthCheck func
// @Summary Health check
// @Description Reports whether the service is up
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "ok",
	})
}
