package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/medtrack-app/medtrack-backend/internal/dto"
	"github.com/medtrack-app/medtrack-backend/internal/middleware"
	"github.com/medtrack-app/medtrack-backend/internal/services"
)

type MedicationHandler struct {
	service *services.MedicationService
}

func NewMedicationHandler(service *services.MedicationService) *MedicationHandler {
	return &MedicationHandler{service: service}
}

// ListAll handles GET /api/medication
func (h *MedicationHandler) ListAll(c *fiber.Ctx) error {
	medications, err := h.service.ListAll()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(medications)
}

// ListByUser handles GET /api/medication/user/:userId
func (h *MedicationHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	medications, err := h.service.ListByUser(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(medications)
}

// ListForUser handles GET /api/medication/all/:userId — templates plus custom.
func (h *MedicationHandler) ListForUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	medications, err := h.service.ListForUser(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(medications)
}

// Get handles GET /api/medication/:id
func (h *MedicationHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid medication id")
	}

	medication, err := h.service.Get(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(medication)
}

// Create handles POST /api/medication
func (h *MedicationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCatalogItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	medication, err := h.service.Create(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(medication)
}

// Update handles PUT /api/medication/:id
func (h *MedicationHandler) Update(c *fiber.Ctx) error {
	subject, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid medication id")
	}

	var req dto.UpdateCatalogItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	medication, err := h.service.Update(id, subject, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(medication)
}

// Delete handles DELETE /api/medication/:id
func (h *MedicationHandler) Delete(c *fiber.Ctx) error {
	subject, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid medication id")
	}

	if err := h.service.Delete(id, subject); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Medication deleted successfully"})
}
