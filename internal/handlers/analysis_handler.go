package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/medtrack-app/medtrack-backend/internal/dto"
	"github.com/medtrack-app/medtrack-backend/internal/middleware"
	"github.com/medtrack-app/medtrack-backend/internal/services"
)

type AnalysisHandler struct {
	service *services.AnalysisService
}

func NewAnalysisHandler(service *services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// Upload handles POST /api/analysis/upload (multipart: file, title, recordDate)
func (h *AnalysisHandler) Upload(c *fiber.Ctx) error {
	subject, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	title := c.FormValue("title")
	recordDateRaw := c.FormValue("recordDate")
	if title == "" || recordDateRaw == "" {
		return badRequest(c, "title and recordDate are required")
	}
	recordDate, err := time.Parse("2006-01-02", recordDateRaw)
	if err != nil {
		if recordDate, err = time.Parse(time.RFC3339, recordDateRaw); err != nil {
			return badRequest(c, "Invalid record date")
		}
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "File was not uploaded")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "Could not read uploaded file")
	}
	defer src.Close()

	analysis, err := h.service.Upload(subject, title, recordDate,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), fileHeader.Size, src)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Analysis uploaded successfully",
		"analysis": analysis,
	})
}

// ListByUser handles GET /api/analysis/user/:userId
func (h *AnalysisHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	analyses, err := h.service.ListByUser(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(analyses)
}

// File handles GET /api/analysis/file/:analysisId — inline download.
func (h *AnalysisHandler) File(c *fiber.Ctx) error {
	subject, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("analysisId"))
	if err != nil {
		return badRequest(c, "Invalid analysis id")
	}

	path, contentType, err := h.service.File(id, subject)
	if err != nil {
		return serviceError(c, err)
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, "inline")
	return c.SendFile(path)
}

// Delete handles DELETE /api/analysis/:analysisId
func (h *AnalysisHandler) Delete(c *fiber.Ctx) error {
	subject, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("analysisId"))
	if err != nil {
		return badRequest(c, "Invalid analysis id")
	}

	if err := h.service.Delete(id, subject); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Analysis deleted successfully"})
}
