package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/spec-kit/complaint-service/internal/domain"
	"github.com/spec-kit/complaint-service/internal/events"
	"github.com/spec-kit/complaint-service/internal/repository"
)

type complaintRepoMock struct{ mock.Mock }

func (m *complaintRepoMock) Create(ctx context.Context, complaint *domain.Complaint) error {
	return m.Called(ctx, complaint).Error(0)
}

func (m *complaintRepoMock) Update(ctx context.Context, complaint *domain.Complaint) error {
	return m.Called(ctx, complaint).Error(0)
}

func (m *complaintRepoMock) GetByID(ctx context.Context, id string) (*domain.Complaint, error) {
	args := m.Called(ctx, id)
	if complaint, ok := args.Get(0).(*domain.Complaint); ok {
		return complaint, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *complaintRepoMock) GetByTrackingID(ctx context.Context, trackingID string) (*domain.Complaint, error) {
	args := m.Called(ctx, trackingID)
	if complaint, ok := args.Get(0).(*domain.Complaint); ok {
		return complaint, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *complaintRepoMock) List(ctx context.Context, filter repository.ComplaintFilter) ([]domain.Complaint, error) {
	args := m.Called(ctx, filter)
	if complaints, ok := args.Get(0).([]domain.Complaint); ok {
		return complaints, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *complaintRepoMock) Count(ctx context.Context, status *domain.ComplaintStatus) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

func (m *complaintRepoMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type commentRepoMock struct{ mock.Mock }

func (m *commentRepoMock) Create(ctx context.Context, comment *domain.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *commentRepoMock) ListByComplaint(ctx context.Context, complaintID string) ([]domain.Comment, error) {
	args := m.Called(ctx, complaintID)
	if comments, ok := args.Get(0).([]domain.Comment); ok {
		return comments, args.Error(1)
	}
	return nil, args.Error(1)
}

type attachmentRepoMock struct{ mock.Mock }

func (m *attachmentRepoMock) Create(ctx context.Context, attachment *domain.AttachmentReference) error {
	return m.Called(ctx, attachment).Error(0)
}

func (m *attachmentRepoMock) ListByComplaint(ctx context.Context, complaintID string) ([]domain.AttachmentReference, error) {
	args := m.Called(ctx, complaintID)
	if attachments, ok := args.Get(0).([]domain.AttachmentReference); ok {
		return attachments, args.Error(1)
	}
	return nil, args.Error(1)
}

type accountRepoMock struct{ mock.Mock }

func (m *accountRepoMock) Create(ctx context.Context, account *domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *accountRepoMock) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if account, ok := args.Get(0).(*domain.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *accountRepoMock) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if account, ok := args.Get(0).(*domain.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *accountRepoMock) UpdateLastLogin(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// recordingDispatcher captures published events for assertions.
type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) lastEvent() *events.Event {
	if len(d.published) == 0 {
		return nil
	}
	return &d.published[len(d.published)-1]
}
