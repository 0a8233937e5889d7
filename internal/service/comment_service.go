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
)

// CommentService manages the staff comment thread on a complaint. Comments
// are immutable once created; there is no edit or delete.
type CommentService struct {
	complaints repository.ComplaintRepository
	comments   repository.CommentRepository
	renderer   *markdown.Renderer
	dispatcher events.Dispatcher
}

// CommentDependencies bundles collaborators for the comment service.
type CommentDependencies struct {
	ComplaintRepo repository.ComplaintRepository
	CommentRepo   repository.CommentRepository
	Renderer      *markdown.Renderer
	Dispatcher    events.Dispatcher
}

// NewCommentService constructs the service.
func NewCommentService(deps CommentDependencies) *CommentService {
	return &CommentService{
		complaints: deps.ComplaintRepo,
		comments:   deps.CommentRepo,
		renderer:   deps.Renderer,
		dispatcher: deps.Dispatcher,
	}
}

// Add appends a comment authored by the given account. The author display
// name is denormalized onto the comment at write time.
func (s *CommentService) Add(ctx context.Context, account *domain.Account, complaintID, body string, isInternal bool) (*domain.Comment, error) {
	complaint, err := s.complaints.GetByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}

	authorID := account.ID
	comment := &domain.Comment{
		ComplaintID: complaint.ID,
		AuthorID:    &authorID,
		AuthorName:  account.Name,
		Body:        strings.TrimSpace(body),
		IsInternal:  isInternal,
	}
	comment.BodyHTML = s.renderer.Render(comment.Body)

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:          uuid.NewString(),
			Type:        events.EventCommentAdded,
			ComplaintID: complaint.ID,
			Actor:       accountActor(account),
			Timestamp:   time.Now(),
			Payload: events.CommentAddedPayload{
				CommentID:  comment.ID,
				AuthorID:   comment.AuthorID,
				IsInternal: comment.IsInternal,
			},
		})
	}
	return comment, nil
}

// ListForComplaint returns the full thread oldest-first, internal comments
// included. Errors with not-found when the complaint is absent.
func (s *CommentService) ListForComplaint(ctx context.Context, complaintID string) ([]domain.Comment, error) {
	complaint, err := s.complaints.GetByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}
	return s.comments.ListByComplaint(ctx, complaint.ID)
}
