package handlers

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/confessly/confessly-backend/internal/dto"
	"github.com/confessly/confessly-backend/internal/middleware"
	"github.com/confessly/confessly-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ConfessionHandler struct {
	confessions *services.ConfessionService
	votes       *services.VoteService
}

func NewConfessionHandler(confessions *services.ConfessionService, votes *services.VoteService) *ConfessionHandler {
	return &ConfessionHandler{confessions: confessions, votes: votes}
}

// Create accepts an anonymous confession. No session is required; the
// client IP is recorded for moderation only.
func (h *ConfessionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateConfessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	confession, err := h.confessions.Create(req.Title, req.Body, req.Tag, c.IP())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(
		dto.OKMessage(confession, "Confession created successfully"))
}

func (h *ConfessionHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	sortMode := c.Query("sort", services.SortRecent)
	tag := c.Query("tag")

	result, err := h.confessions.List(tag, sortMode, page, limit)
	if err != nil {
		slog.Error("failed to list confessions", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}
	return c.JSON(dto.OK(result))
}

func (h *ConfessionHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid confession ID"))
	}

	detail, err := h.confessions.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrConfessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Confession not found"))
		}
		slog.Error("failed to fetch confession", "error", err, "confession_id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}
	return c.JSON(dto.OK(detail))
}

// Vote casts, removes or switches the caller's vote on a confession.
func (h *ConfessionHandler) Vote(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Authentication required to vote"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid confession ID"))
	}

	var req dto.VoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	result, err := h.votes.CastVote(userID, id, req.VoteType)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidVoteType):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid vote type"))
		case errors.Is(err, services.ErrConfessionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Confession not found"))
		default:
			slog.Error("failed to cast vote", "error", err, "confession_id", id, "user_id", userID.String())
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
		}
	}

	messages := map[string]string{
		services.VoteActionCreated: "Vote recorded",
		services.VoteActionRemoved: "Vote removed",
		services.VoteActionUpdated: "Vote updated",
	}
	return c.JSON(dto.OKMessage(result, messages[result.Action]))
}

func (h *ConfessionHandler) Trending(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	limit := c.QueryInt("limit", 10)

	confessions, err := h.confessions.Trending(days, limit)
	if err != nil {
		slog.Error("failed to fetch trending confessions", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}

	return c.JSON(dto.OK(dto.TrendingPage{
		Confessions: confessions,
		Period:      fmt.Sprintf("%d days", days),
	}))
}

// Delete is admin-only and cascades to the confession's comments and votes.
func (h *ConfessionHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid confession ID"))
	}

	if err := h.confessions.Delete(id); err != nil {
		if errors.Is(err, services.ErrConfessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Confession not found"))
		}
		slog.Error("failed to delete confession", "error", err, "confession_id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}
	return c.JSON(dto.Response{Success: true, Message: "Confession deleted successfully"})
}

// Feature is admin-only.
func (h *ConfessionHandler) Feature(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid confession ID"))
	}

	var req dto.FeatureRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	confession, err := h.confessions.SetFeatured(id, req.IsFeatured)
	if err != nil {
		if errors.Is(err, services.ErrConfessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Confession not found"))
		}
		slog.Error("failed to feature confession", "error", err, "confession_id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}

	message := "Confession unfeatured successfully"
	if req.IsFeatured {
		message = "Confession featured successfully"
	}
	return c.JSON(dto.OKMessage(confession, message))
}
