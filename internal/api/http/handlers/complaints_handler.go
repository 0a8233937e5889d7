package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-service/internal/api/dto"
	"github.com/spec-kit/complaint-service/internal/auth"
	"github.com/spec-kit/complaint-service/internal/domain"
	"github.com/spec-kit/complaint-service/internal/service"
	"github.com/spec-kit/complaint-service/internal/validation"
	apperrors "github.com/spec-kit/complaint-service/pkg/util"
)

// ComplaintsHandler manages complaint endpoints, public and staff.
type ComplaintsHandler struct {
	service *service.ComplaintService
}

// NewComplaintsHandler constructs handler.
func NewComplaintsHandler(complaintService *service.ComplaintService) *ComplaintsHandler {
	return &ComplaintsHandler{service: complaintService}
}

// Submit handles POST /api/complaints (public).
func (h *ComplaintsHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	var errs validation.Errors
	validation.Name(&errs, "name", req.Name)
	validation.Email(&errs, "email", req.Email)
	validation.Body(&errs, "complaint", req.Complaint, validation.MinComplaintLength, validation.MaxComplaintLength)
	if len(errs) > 0 {
		return apperrors.NewValidationError("validation failed", errs.Details())
	}

	attachments := make([]service.AttachmentInput, 0, len(req.Attachments))
	for _, att := range req.Attachments {
		attachments = append(attachments, service.AttachmentInput{
			StorageKey: att.StorageKey,
			FileName:   att.FileName,
			MimeType:   att.MimeType,
			SizeBytes:  att.SizeBytes,
		})
	}

	complaint, err := h.service.Submit(c.UserContext(), service.SubmitInput{
		Name:        req.Name,
		Email:       req.Email,
		Body:        req.Complaint,
		IP:          c.IP(),
		UserAgent:   c.Get("User-Agent"),
		Attachments: attachments,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": dto.SubmitComplaintResponse{
			ID:         complaint.ID,
			TrackingID: complaint.TrackingID,
		},
		"message": "complaint submitted",
	})
}

// List handles GET /api/complaints (staff).
func (h *ComplaintsHandler) List(c *fiber.Ctx) error {
	page, limit, errs := validation.Pagination(c.Query("page"), c.Query("limit"))

	var status *domain.ComplaintStatus
	if raw := c.Query("status"); raw != "" {
		candidate := domain.ComplaintStatus(raw)
		validation.FilterStatus(&errs, "status", candidate)
		status = &candidate
	}
	if len(errs) > 0 {
		return apperrors.NewValidationError("validation failed", errs.Details())
	}

	complaints, total, err := h.service.List(c.UserContext(), service.ListInput{
		Status: status,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	items := make([]dto.ComplaintSummary, 0, len(complaints))
	for i := range complaints {
		items = append(items, complaintSummary(&complaints[i]))
	}

	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": dto.ListComplaintsResponse{
			Complaints: items,
			Pagination: dto.Pagination{
				Page:       page,
				Limit:      limit,
				Total:      total,
				TotalPages: totalPages,
			},
		},
	})
}

// Get handles GET /api/complaints/:id (staff). Internal comments included.
func (h *ComplaintsHandler) Get(c *fiber.Ctx) error {
	var errs validation.Errors
	validation.ID(&errs, "id", c.Params("id"))
	if len(errs) > 0 {
		return apperrors.NewValidationError("validation failed", errs.Details())
	}

	complaint, comments, attachments, err := h.service.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    complaintDetail(complaint, comments, attachments),
	})
}

// UpdateStatus handles PATCH /api/complaints/:id (staff).
func (h *ComplaintsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	var errs validation.Errors
	validation.ID(&errs, "id", c.Params("id"))
	validation.AdminStatus(&errs, "status", req.Status)
	if len(errs) > 0 {
		return apperrors.NewValidationError("validation failed", errs.Details())
	}

	account, _ := auth.AccountFromContext(c)
	complaint, err := h.service.UpdateStatus(c.UserContext(), account, c.Params("id"), req.Status)
	if err != nil {
		return apperrors.MapError(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    complaintSummary(complaint),
		"message": "status updated",
	})
}

// Delete handles DELETE /api/complaints/:id (admin only).
func (h *ComplaintsHandler) Delete(c *fiber.Ctx) error {
	var errs validation.Errors
	validation.ID(&errs, "id", c.Params("id"))
	if len(errs) > 0 {
		return apperrors.NewValidationError("validation failed", errs.Details())
	}

	account, _ := auth.AccountFromContext(c)
	if err := h.service.Delete(c.UserContext(), account, c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "complaint deleted",
	})
}

// GetPublic handles GET /api/complaints/public/:trackingId (public).
func (h *ComplaintsHandler) GetPublic(c *fiber.Ctx) error {
	complaint, comments, err := h.service.GetByTrackingID(c.UserContext(), c.Params("trackingId"))
	if err != nil {
		return apperrors.MapError(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    publicComplaint(complaint, comments),
	})
}

// Withdraw handles PATCH /api/complaints/public/:trackingId/withdraw (public).
func (h *ComplaintsHandler) Withdraw(c *fiber.Ctx) error {
	complaint, err := h.service.Withdraw(c.UserContext(), c.Params("trackingId"))
	if err != nil {
		return apperrors.MapError(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    publicComplaint(complaint, nil),
		"message": "complaint withdrawn",
	})
}

func complaintSummary(complaint *domain.Complaint) dto.ComplaintSummary {
	return dto.ComplaintSummary{
		ID:         complaint.ID,
		TrackingID: complaint.TrackingID,
		Name:       complaint.SubmitterName,
		Email:      complaint.SubmitterEmail,
		Status:     complaint.Status,
		CreatedAt:  complaint.CreatedAt,
		UpdatedAt:  complaint.UpdatedAt,
		ResolvedAt: complaint.ResolvedAt,
	}
}

func complaintDetail(complaint *domain.Complaint, comments []domain.Comment, attachments []domain.AttachmentReference) dto.ComplaintDetailResponse {
	commentItems := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		commentItems = append(commentItems, commentResponse(&comments[i]))
	}
	attachmentItems := make([]dto.AttachmentResponse, 0, len(attachments))
	for _, att := range attachments {
		attachmentItems = append(attachmentItems, dto.AttachmentResponse{
			ID:        att.ID,
			FileName:  att.FileName,
			MimeType:  att.MimeType,
			SizeBytes: att.SizeBytes,
		})
	}
	return dto.ComplaintDetailResponse{
		ComplaintSummary: complaintSummary(complaint),
		Complaint:        complaint.Body,
		ComplaintHTML:    complaint.BodyHTML,
		Comments:         commentItems,
		Attachments:      attachmentItems,
	}
}

func publicComplaint(complaint *domain.Complaint, comments []domain.Comment) dto.PublicComplaintResponse {
	commentItems := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		commentItems = append(commentItems, commentResponse(&comments[i]))
	}
	return dto.PublicComplaintResponse{
		TrackingID:    complaint.TrackingID,
		Name:          complaint.SubmitterName,
		Complaint:     complaint.Body,
		ComplaintHTML: complaint.BodyHTML,
		Status:        complaint.Status,
		CreatedAt:     complaint.CreatedAt,
		UpdatedAt:     complaint.UpdatedAt,
		ResolvedAt:    complaint.ResolvedAt,
		Comments:      commentItems,
	}
}

func commentResponse(comment *domain.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:          comment.ID,
		AuthorName:  comment.AuthorName,
		CommentText: comment.Body,
		CommentHTML: comment.BodyHTML,
		IsInternal:  comment.IsInternal,
		CreatedAt:   comment.CreatedAt,
	}
}
