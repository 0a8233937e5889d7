package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/complaint-service/internal/domain"
	"github.com/spec-kit/complaint-service/internal/events"
	"github.com/spec-kit/complaint-service/internal/markdown"
	"github.com/spec-kit/complaint-service/internal/repository"
	"github.com/spec-kit/complaint-service/internal/validation"
)

// ComplaintService coordinates the complaint lifecycle.
type ComplaintService struct {
	complaints  repository.ComplaintRepository
	comments    repository.CommentRepository
	attachments repository.AttachmentRepository
	renderer    *markdown.Renderer
	dispatcher  events.Dispatcher
}

// ComplaintDependencies bundles collaborators for the complaint service.
type ComplaintDependencies struct {
	ComplaintRepo  repository.ComplaintRepository
	CommentRepo    repository.CommentRepository
	AttachmentRepo repository.AttachmentRepository
	Renderer       *markdown.Renderer
	Dispatcher     events.Dispatcher
}

// SubmitInput describes a public submission payload.
type SubmitInput struct {
	Name        string
	Email       string
	Body        string
	IP          string
	UserAgent   string
	Attachments []AttachmentInput
}

// AttachmentInput carries metadata for files already placed in external storage.
type AttachmentInput struct {
	StorageKey string
	FileName   string
	MimeType   string
	SizeBytes  int64
}

// ListInput describes dashboard listing parameters.
type ListInput struct {
	Status *domain.ComplaintStatus
	Page   int
	Limit  int
}

// NewComplaintService constructs the service.
func NewComplaintService(deps ComplaintDependencies) *ComplaintService {
	return &ComplaintService{
		complaints:  deps.ComplaintRepo,
		comments:    deps.CommentRepo,
		attachments: deps.AttachmentRepo,
		renderer:    deps.Renderer,
		dispatcher:  deps.Dispatcher,
	}
}

// Submit creates a complaint from the public form. The initial status is
// always Pending regardless of anything the client supplied.
func (s *ComplaintService) Submit(ctx context.Context, input SubmitInput) (*domain.Complaint, error) {
	id := uuid.NewString()

	complaint := &domain.Complaint{
		ID:             id,
		TrackingID:     domain.TrackingIDFromID(id),
		SubmitterName:  strings.TrimSpace(input.Name),
		SubmitterEmail: validation.NormalizeEmail(input.Email),
		Body:           strings.TrimSpace(input.Body),
		Status:         domain.ComplaintStatusPending,
	}
	complaint.BodyHTML = s.renderer.Render(complaint.Body)
	if ip := strings.TrimSpace(input.IP); ip != "" {
		complaint.SubmitterIP = &ip
	}
	if ua := strings.TrimSpace(input.UserAgent); ua != "" {
		complaint.SubmitterUserAgent = &ua
	}

	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, err
	}

	for _, att := range input.Attachments {
		record := &domain.AttachmentReference{
			ComplaintID: complaint.ID,
			StorageKey:  att.StorageKey,
			FileName:    att.FileName,
			MimeType:    att.MimeType,
			SizeBytes:   att.SizeBytes,
		}
		if err := s.attachments.Create(ctx, record); err != nil {
			return nil, err
		}
	}

	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintSubmitted,
		ComplaintID: complaint.ID,
		Actor:       events.Actor{Public: true},
		Payload: events.ComplaintSubmittedPayload{
			TrackingID:     complaint.TrackingID,
			SubmitterEmail: complaint.SubmitterEmail,
		},
	})
	return complaint, nil
}

// List returns a page of complaints newest-first plus the total count.
func (s *ComplaintService) List(ctx context.Context, input ListInput) ([]domain.Complaint, int, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = validation.DefaultLimit
	}

	filter := repository.ComplaintFilter{
		Status: input.Status,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
	complaints, err := s.complaints.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.complaints.Count(ctx, input.Status)
	if err != nil {
		return nil, 0, err
	}
	return complaints, total, nil
}

// GetByID returns a complaint with its full comment thread and attachments.
// Internal comments are included; this is the staff view.
func (s *ComplaintService) GetByID(ctx context.Context, id string) (*domain.Complaint, []domain.Comment, []domain.AttachmentReference, error) {
	complaint, err := s.complaints.GetByID(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	comments, err := s.comments.ListByComplaint(ctx, complaint.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	attachments, err := s.attachments.ListByComplaint(ctx, complaint.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	return complaint, comments, attachments, nil
}

// GetByTrackingID resolves the public tracking handle case-insensitively and
// returns the complaint with public comments only.
func (s *ComplaintService) GetByTrackingID(ctx context.Context, trackingID string) (*domain.Complaint, []domain.Comment, error) {
	complaint, err := s.complaints.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, nil, err
	}
	comments, err := s.comments.ListByComplaint(ctx, complaint.ID)
	if err != nil {
		return nil, nil, err
	}
	public := make([]domain.Comment, 0, len(comments))
	for _, comment := range comments {
		if comment.IsInternal {
			continue
		}
		public = append(public, comment)
	}
	return complaint, public, nil
}

// UpdateStatus moves a complaint to the target status. Resolved stamps
// resolved_at; any other target clears it. No transition restrictions apply
// and repeating the same target is a no-op on the final state.
func (s *ComplaintService) UpdateStatus(ctx context.Context, account *domain.Account, id string, target domain.ComplaintStatus) (*domain.Complaint, error) {
	complaint, err := s.complaints.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldStatus := complaint.Status
	applyStatus(complaint, target)
	if err := s.complaints.Update(ctx, complaint); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintStatusChanged,
		ComplaintID: complaint.ID,
		Actor:       accountActor(account),
		Payload: events.ComplaintStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: complaint.Status,
		},
	})
	return complaint, nil
}

// Withdraw sets the complaint matching the tracking id to Withdrawn. No
// precondition on the prior status is enforced: a Resolved complaint can be
// withdrawn. Intentional; see the pinning test before changing this.
func (s *ComplaintService) Withdraw(ctx context.Context, trackingID string) (*domain.Complaint, error) {
	complaint, err := s.complaints.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, err
	}
	oldStatus := complaint.Status
	applyStatus(complaint, domain.ComplaintStatusWithdrawn)
	if err := s.complaints.Update(ctx, complaint); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintWithdrawn,
		ComplaintID: complaint.ID,
		Actor:       events.Actor{Public: true},
		Payload: events.ComplaintStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: complaint.Status,
		},
	})
	return complaint, nil
}

// Delete hard-deletes a complaint; comments and attachments cascade in the
// schema.
func (s *ComplaintService) Delete(ctx context.Context, account *domain.Account, id string) error {
	complaint, err := s.complaints.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.complaints.Delete(ctx, complaint.ID); err != nil {
		return err
	}
	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintDeleted,
		ComplaintID: complaint.ID,
		Actor:       accountActor(account),
		Payload: events.ComplaintDeletedPayload{
			TrackingID: complaint.TrackingID,
		},
	})
	return nil
}

func applyStatus(complaint *domain.Complaint, target domain.ComplaintStatus) {
	complaint.Status = target
	if target == domain.ComplaintStatusResolved {
		if complaint.ResolvedAt == nil {
			now := time.Now()
			complaint.ResolvedAt = &now
		}
		return
	}
	complaint.ResolvedAt = nil
}

func (s *ComplaintService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func accountActor(account *domain.Account) events.Actor {
	if account == nil {
		return events.Actor{Public: true}
	}
	return events.Actor{AccountID: &account.ID}
}
