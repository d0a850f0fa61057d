package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/medtrack-app/medtrack-backend/internal/dto"
	"github.com/medtrack-app/medtrack-backend/internal/middleware"
	"github.com/medtrack-app/medtrack-backend/internal/services"
)

type RecordHandler struct {
	service *services.RecordService
}

func NewRecordHandler(service *services.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

// ListAll handles GET /api/healthRecords
func (h *RecordHandler) ListAll(c *fiber.Ctx) error {
	records, err := h.service.ListAll()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(records)
}

// ListByUser handles GET /api/healthRecords/user/:userId
func (h *RecordHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	records, err := h.service.ListByUser(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(records)
}

// ListByUserAndDate handles GET /api/healthRecords/user/:userId/date/:recordDate
func (h *RecordHandler) ListByUserAndDate(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}
	day, err := time.Parse("2006-01-02", c.Params("recordDate"))
	if err != nil {
		return badRequest(c, "Invalid record date, expected YYYY-MM-DD")
	}

	records, err := h.service.ListByUserAndDate(userID, day)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(records)
}

// Get handles GET /api/healthRecords/:id
func (h *RecordHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid record id")
	}

	record, err := h.service.Get(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(record)
}

// CreateSymptom handles POST /api/healthRecords/symptoms
func (h *RecordHandler) CreateSymptom(c *fiber.Ctx) error {
	subject, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateSymptomRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	record, err := h.service.CreateSymptomRecord(subject, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// CreateMedication handles POST /api/healthRecords/medications
func (h *RecordHandler) CreateMedication(c *fiber.Ctx) error {
	subject, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateMedicationRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	record, err := h.service.CreateMedicationRecord(subject, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// Update handles PUT /api/healthRecords/:id
func (h *RecordHandler) Update(c *fiber.Ctx) error {
	subject, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid record id")
	}

	var req dto.UpdateHealthRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	record, err := h.service.Update(id, subject, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(record)
}

// Delete handles DELETE /api/healthRecords/:id
func (h *RecordHandler) Delete(c *fiber.Ctx) error {
	subject, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid record id")
	}

	if err := h.service.Delete(id, subject); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Health record deleted successfully"})
}
