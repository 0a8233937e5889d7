package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-service/internal/api/dto"
	"github.com/spec-kit/complaint-service/internal/auth"
	"github.com/spec-kit/complaint-service/internal/service"
	"github.com/spec-kit/complaint-service/internal/validation"
	apperrors "github.com/spec-kit/complaint-service/pkg/util"
)

// CommentsHandler manages the staff comment thread endpoints.
type CommentsHandler struct {
	service *service.CommentService
}

// NewCommentsHandler constructs handler.
func NewCommentsHandler(commentService *service.CommentService) *CommentsHandler {
	return &CommentsHandler{service: commentService}
}

// Add handles POST /api/complaints/:id/comments (staff).
func (h *CommentsHandler) Add(c *fiber.Ctx) error {
	account, ok := auth.AccountFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	var errs validation.Errors
	validation.ID(&errs, "id", c.Params("id"))
	validation.Body(&errs, "comment_text", req.CommentText, validation.MinCommentLength, validation.MaxCommentLength)
	if len(errs) > 0 {
		return apperrors.NewValidationError("validation failed", errs.Details())
	}

	comment, err := h.service.Add(c.UserContext(), account, c.Params("id"), req.CommentText, req.IsInternal)
	if err != nil {
		return apperrors.MapError(err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    commentResponse(comment),
		"message": "comment added",
	})
}

// List handles GET /api/complaints/:id/comments (staff, full thread).
func (h *CommentsHandler) List(c *fiber.Ctx) error {
	var errs validation.Errors
	validation.ID(&errs, "id", c.Params("id"))
	if len(errs) > 0 {
		return apperrors.NewValidationError("validation failed", errs.Details())
	}

	comments, err := h.service.ListForComplaint(c.UserContext(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}

	items := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		items = append(items, commentResponse(&comments[i]))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
	})
}
