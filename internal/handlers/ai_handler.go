package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/medtrack-app/medtrack-backend/internal/dto"
	"github.com/medtrack-app/medtrack-backend/internal/middleware"
	"github.com/medtrack-app/medtrack-backend/internal/services"
)

type AIHandler struct {
	service *services.AIService
}

func NewAIHandler(service *services.AIService) *AIHandler {
	return &AIHandler{service: service}
}

// Recommendations handles POST /api/ai/recommendations
func (h *AIHandler) Recommendations(c *fiber.Ctx) error {
	subject, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.RecommendationsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.UserID != subject {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "You can only request recommendations for your own records",
		})
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return badRequest(c, "Invalid start date")
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return badRequest(c, "Invalid end date")
	}

	answer, err := h.service.Recommendations(c.UserContext(), req.UserID, start, end)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(dto.RecommendationsResponse{Recommendations: answer})
}
