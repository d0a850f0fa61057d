package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/medtrack-app/medtrack-backend/internal/dto"
	"github.com/medtrack-app/medtrack-backend/internal/middleware"
	"github.com/medtrack-app/medtrack-backend/internal/reportgen"
	"github.com/medtrack-app/medtrack-backend/internal/services"
)

type ReportHandler struct {
	service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Generate handles POST /api/reports/:type/:format
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	subject, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var kind reportgen.Kind
	switch c.Params("type") {
	case "symptoms":
		kind = reportgen.KindSymptoms
	case "medications":
		kind = reportgen.KindMedications
	default:
		return badRequest(c, "Report type must be symptoms or medications")
	}

	var format reportgen.Format
	switch c.Params("format") {
	case "pdf":
		format = reportgen.FormatPDF
	case "excel":
		format = reportgen.FormatExcel
	default:
		return badRequest(c, "Report format must be pdf or excel")
	}

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return badRequest(c, "Invalid start date")
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return badRequest(c, "Invalid end date")
	}
	if end.Before(start) {
		return badRequest(c, "End date must not precede start date")
	}

	report, err := h.service.Generate(subject, kind, format, start, end)
	if err != nil {
		return serviceError(c, err)
	}

	c.Set("X-Report-Id", report.ID.String())
	return c.Status(fiber.StatusCreated).JSON(report)
}

// ListByUser handles GET /api/reports/user/:userId
func (h *ReportHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	reports, err := h.service.ListByUser(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(reports)
}

// File handles GET /api/reports/:reportId/download
func (h *ReportHandler) File(c *fiber.Ctx) error {
	subject, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("reportId"))
	if err != nil {
		return badRequest(c, "Invalid report id")
	}

	path, contentType, err := h.service.File(id, subject)
	if err != nil {
		return serviceError(c, err)
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, "inline")
	return c.SendFile(path)
}

// Delete handles DELETE /api/reports/:reportId
func (h *ReportHandler) Delete(c *fiber.Ctx) error {
	subject, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("reportId"))
	if err != nil {
		return badRequest(c, "Invalid report id")
	}

	if err := h.service.Delete(id, subject); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Report deleted successfully"})
}
