package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/medtrack-app/medtrack-backend/internal/dto"
	"github.com/medtrack-app/medtrack-backend/internal/services"
)

func serviceErrorResponse(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return serviceError(c, err)
	})

	resp, reqErr := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	if reqErr != nil {
		t.Fatalf("test request failed: %v", reqErr)
	}
	defer resp.Body.Close()

	var body dto.ErrorResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&body); decodeErr != nil {
		t.Fatalf("decode body: %v", decodeErr)
	}
	return resp.StatusCode, body
}

func TestServiceErrorSentinelStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", services.ErrNotFound, fiber.StatusNotFound},
		{"user not found", services.ErrUserNotFound, fiber.StatusNotFound},
		{"no records", services.ErrNoRecords, fiber.StatusNotFound},
		{"forbidden", services.ErrForbidden, fiber.StatusForbidden},
		{"bad credentials", services.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{"email taken", services.ErrEmailTaken, fiber.StatusConflict},
		{"invalid input", fmt.Errorf("%w: weight must be between 0 and 5", services.ErrInvalidInput), fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := serviceErrorResponse(t, tt.err)
			if status != tt.status {
				t.Errorf("status = %d, want %d", status, tt.status)
			}
			if !body.Error || body.Message == "" {
				t.Errorf("body = %+v, want error flag with the sentinel message", body)
			}
		})
	}
}

func TestServiceErrorHidesInternalDetail(t *testing.T) {
	upstream := fmt.Errorf("failed to list reports: %w", errors.New("pq: connection refused"))

	status, body := serviceErrorResponse(t, upstream)
	if status != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", status, fiber.StatusInternalServerError)
	}
	if body.Message != "Internal server error" {
		t.Errorf("Message = %q, want the sanitized text", body.Message)
	}
	if strings.Contains(body.Message, "connection refused") {
		t.Error("internal error detail leaked to the client")
	}
}
