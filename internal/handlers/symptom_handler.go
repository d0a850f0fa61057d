package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/medtrack-app/medtrack-backend/internal/dto"
	"github.com/medtrack-app/medtrack-backend/internal/middleware"
	"github.com/medtrack-app/medtrack-backend/internal/services"
)

type SymptomHandler struct {
	service *services.SymptomService
}

func NewSymptomHandler(service *services.SymptomService) *SymptomHandler {
	return &SymptomHandler{service: service}
}

// ListAll handles GET /api/symptom
func (h *SymptomHandler) ListAll(c *fiber.Ctx) error {
	symptoms, err := h.service.ListAll()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(symptoms)
}

// ListByUser handles GET /api/symptom/user/:userId
func (h *SymptomHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	symptoms, err := h.service.ListByUser(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(symptoms)
}

// ListForUser handles GET /api/symptom/all/:userId — templates plus custom.
func (h *SymptomHandler) ListForUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	symptoms, err := h.service.ListForUser(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(symptoms)
}

// Get handles GET /api/symptom/:id
func (h *SymptomHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid symptom id")
	}

	symptom, err := h.service.Get(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(symptom)
}

// Create handles POST /api/symptom
func (h *SymptomHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCatalogItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	symptom, err := h.service.Create(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(symptom)
}

// Update handles PUT /api/symptom/:id
func (h *SymptomHandler) Update(c *fiber.Ctx) error {
	subject, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid symptom id")
	}

	var req dto.UpdateCatalogItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	symptom, err := h.service.Update(id, subject, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(symptom)
}

// Delete handles DELETE /api/symptom/:id
func (h *SymptomHandler) Delete(c *fiber.Ctx) error {
	subject, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid symptom id")
	}

	if err := h.service.Delete(id, subject); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Symptom deleted successfully"})
}
