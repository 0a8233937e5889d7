package events

import (
	"time"

	"github.com/spec-kit/complaint-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventComplaintSubmitted     EventType = "complaint_submitted"
	EventComplaintStatusChanged EventType = "complaint_status_changed"
	EventComplaintWithdrawn     EventType = "complaint_withdrawn"
	EventComplaintDeleted       EventType = "complaint_deleted"
	EventCommentAdded           EventType = "comment_added"
)

// Actor encapsulates who triggered an event. AccountID is nil for
// unauthenticated public actions.
type Actor struct {
	AccountID *string `json:"account_id,omitempty"`
	Public    bool    `json:"public,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	ComplaintID string      `json:"complaint_id"`
	Actor       Actor       `json:"actor"`
	Timestamp   time.Time   `json:"timestamp"`
	Payload     interface{} `json:"payload"`
}

// ComplaintSubmittedPayload payload.
type ComplaintSubmittedPayload struct {
	TrackingID     string `json:"tracking_id"`
	SubmitterEmail string `json:"submitter_email"`
}

// ComplaintStatusChangedPayload payload.
type ComplaintStatusChangedPayload struct {
	OldStatus domain.ComplaintStatus `json:"old_status"`
	NewStatus domain.ComplaintStatus `json:"new_status"`
}

// ComplaintDeletedPayload payload.
type ComplaintDeletedPayload struct {
	TrackingID string `json:"tracking_id"`
}

// CommentAddedPayload payload.
type CommentAddedPayload struct {
	CommentID  string  `json:"comment_id"`
	AuthorID   *string `json:"author_id,omitempty"`
	IsInternal bool    `json:"is_internal"`
}
