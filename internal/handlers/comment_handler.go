package handlers

import (
	"errors"
	"log/slog"

	"github.com/confessly/confessly-backend/internal/dto"
	"github.com/confessly/confessly-backend/internal/middleware"
	"github.com/confessly/confessly-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

func (h *CommentHandler) Add(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Authentication required to comment"))
	}

	confessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid confession ID"))
	}

	var req dto.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	comment, err := h.comments.Add(userID, confessionID, req.Content)
	if err != nil {
		if errors.Is(err, services.ErrConfessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Confession not found"))
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(
		dto.OKMessage(comment, "Comment added successfully"))
}

// Delete is admin-only.
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid comment ID"))
	}

	if err := h.comments.Delete(id); err != nil {
		if errors.Is(err, services.ErrCommentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Comment not found"))
		}
		slog.Error("failed to delete comment", "error", err, "comment_id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}
	return c.JSON(dto.Response{Success: true, Message: "Comment deleted successfully"})
}
