package dto

import (
	"time"

	"github.com/spec-kit/complaint-service/internal/domain"
)

// SubmitComplaintRequest is the public intake payload.
type SubmitComplaintRequest struct {
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Complaint   string              `json:"complaint"`
	Attachments []AttachmentRequest `json:"attachments,omitempty"`
}

// AttachmentRequest references a file already placed in external storage.
type AttachmentRequest struct {
	StorageKey string `json:"storage_key"`
	FileName   string `json:"file_name"`
	MimeType   string `json:"mime_type"`
	SizeBytes  int64  `json:"size_bytes"`
}

// SubmitComplaintResponse returns the identifiers for a new complaint.
type SubmitComplaintResponse struct {
	ID         string `json:"id"`
	TrackingID string `json:"trackingId"`
}

// UpdateStatusRequest is the staff status transition payload.
type UpdateStatusRequest struct {
	Status domain.ComplaintStatus `json:"status"`
}

// ComplaintSummary is the dashboard listing row.
type ComplaintSummary struct {
	ID         string                 `json:"id"`
	TrackingID string                 `json:"trackingId"`
	Name       string                 `json:"name"`
	Email      string                 `json:"email"`
	Status     domain.ComplaintStatus `json:"status"`
	CreatedAt  time.Time              `json:"createdAt"`
	UpdatedAt  time.Time              `json:"updatedAt"`
	ResolvedAt *time.Time             `json:"resolvedAt"`
}

// ComplaintDetailResponse is the full staff view including the comment thread.
type ComplaintDetailResponse struct {
	ComplaintSummary
	Complaint     string               `json:"complaint"`
	ComplaintHTML string               `json:"complaintHtml"`
	Comments      []CommentResponse    `json:"comments"`
	Attachments   []AttachmentResponse `json:"attachments"`
}

// PublicComplaintResponse is the tracking view. It carries no internal
// identifier beyond the tracking id and no internal comments.
type PublicComplaintResponse struct {
	TrackingID    string                 `json:"trackingId"`
	Name          string                 `json:"name"`
	Complaint     string                 `json:"complaint"`
	ComplaintHTML string                 `json:"complaintHtml"`
	Status        domain.ComplaintStatus `json:"status"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
	ResolvedAt    *time.Time             `json:"resolvedAt"`
	Comments      []CommentResponse      `json:"comments"`
}

// AttachmentResponse metadata.
type AttachmentResponse struct {
	ID        string `json:"id"`
	FileName  string `json:"file_name"`
	MimeType  string `json:"mime_type"`
	SizeBytes int64  `json:"size_bytes"`
}

// Pagination describes a listing page.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ListComplaintsResponse wraps a dashboard page.
type ListComplaintsResponse struct {
	Complaints []ComplaintSummary `json:"complaints"`
	Pagination Pagination         `json:"pagination"`
}
