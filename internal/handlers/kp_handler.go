package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/medtrack-app/medtrack-backend/internal/services"
)

type KpHandler struct {
	service *services.KpService
}

func NewKpHandler(service *services.KpService) *KpHandler {
	return &KpHandler{service: service}
}

// Range handles GET /api/kp-index?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *KpHandler) Range(c *fiber.Ctx) error {
	startRaw := c.Query("start")
	endRaw := c.Query("end")
	if startRaw == "" || endRaw == "" {
		return badRequest(c, "start and end query parameters are required")
	}

	start, err := time.Parse("2006-01-02", startRaw)
	if err != nil {
		return badRequest(c, "Invalid start date")
	}
	end, err := time.Parse("2006-01-02", endRaw)
	if err != nil {
		return badRequest(c, "Invalid end date")
	}
	if end.Before(start) {
		return badRequest(c, "End date must not precede start date")
	}

	entries, err := h.service.GetRange(c.UserContext(), start, end)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(entries)
}

// Forecast handles GET /api/kp-index/forecast
func (h *KpHandler) Forecast(c *fiber.Ctx) error {
	entries, err := h.service.Forecast()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(entries)
}
