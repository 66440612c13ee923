package handlers

import (
	"errors"
	"log/slog"

	"github.com/confessly/confessly-backend/internal/dto"
	"github.com/confessly/confessly-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AdviceHandler struct {
	advice *services.AdviceService
}

func NewAdviceHandler(advice *services.AdviceService) *AdviceHandler {
	return &AdviceHandler{advice: advice}
}

func (h *AdviceHandler) Generate(c *fiber.Ctx) error {
	var req dto.AdviceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	advice, err := h.advice.Generate(req.Title, req.Confession)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAdviceRateLimited):
			return c.Status(fiber.StatusTooManyRequests).JSON(
				dto.Fail("AI service is currently busy. Please try again later."))
		case errors.Is(err, services.ErrAdviceNotConfigured), errors.Is(err, services.ErrAdviceUpstream):
			slog.Error("advice generation failed", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(
				dto.Fail("Failed to generate advice. Please try again later."))
		default:
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
		}
	}

	return c.JSON(dto.OK(advice))
}
