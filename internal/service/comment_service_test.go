package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/complaint-service/internal/domain"
	"github.com/spec-kit/complaint-service/internal/events"
	"github.com/spec-kit/complaint-service/internal/markdown"
)

type commentFixture struct {
	complaints *complaintRepoMock
	comments   *commentRepoMock
	dispatcher *recordingDispatcher
	service    *CommentService
}

func newCommentFixture() *commentFixture {
	f := &commentFixture{
		complaints: &complaintRepoMock{},
		comments:   &commentRepoMock{},
		dispatcher: &recordingDispatcher{},
	}
	f.service = NewCommentService(CommentDependencies{
		ComplaintRepo: f.complaints,
		CommentRepo:   f.comments,
		Renderer:      markdown.NewRenderer(),
		Dispatcher:    f.dispatcher,
	})
	return f
}

func TestAddDenormalizesAuthor(t *testing.T) {
	f := newCommentFixture()
	complaint := &domain.Complaint{ID: uuid.NewString()}
	f.complaints.On("GetByID", mock.Anything, complaint.ID).Return(complaint, nil)
	f.comments.On("Create", mock.Anything, mock.Anything).Return(nil)

	account := staffAccount(domain.RoleAgent)
	comment, err := f.service.Add(context.Background(), account, complaint.ID, "We have scheduled a **repair visit**.", false)
	require.NoError(t, err)

	assert.Equal(t, complaint.ID, comment.ComplaintID)
	require.NotNil(t, comment.AuthorID)
	assert.Equal(t, account.ID, *comment.AuthorID)
	assert.Equal(t, account.Name, comment.AuthorName)
	assert.False(t, comment.IsInternal)
	assert.Contains(t, comment.BodyHTML, "<strong>repair visit</strong>")
}

func TestAddInternalFlagPersists(t *testing.T) {
	f := newCommentFixture()
	complaint := &domain.Complaint{ID: uuid.NewString()}
	f.complaints.On("GetByID", mock.Anything, complaint.ID).Return(complaint, nil)
	f.comments.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
		return c.IsInternal
	})).Return(nil)

	comment, err := f.service.Add(context.Background(), staffAccount(domain.RoleAgent), complaint.ID, "escalating to facilities", true)
	require.NoError(t, err)
	assert.True(t, comment.IsInternal)

	event := f.dispatcher.lastEvent()
	require.NotNil(t, event)
	assert.Equal(t, events.EventCommentAdded, event.Type)
	payload, ok := event.Payload.(events.CommentAddedPayload)
	require.True(t, ok)
	assert.True(t, payload.IsInternal)
}

func TestAddUnknownComplaint(t *testing.T) {
	f := newCommentFixture()
	f.complaints.On("GetByID", mock.Anything, mock.Anything).Return(nil, pgx.ErrNoRows)

	_, err := f.service.Add(context.Background(), staffAccount(domain.RoleAgent), uuid.NewString(), "hello there", false)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	f.comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListForComplaintReturnsFullThread(t *testing.T) {
	f := newCommentFixture()
	complaint := &domain.Complaint{ID: uuid.NewString()}
	f.complaints.On("GetByID", mock.Anything, complaint.ID).Return(complaint, nil)
	f.comments.On("ListByComplaint", mock.Anything, complaint.ID).Return([]domain.Comment{
		{ID: "c1", IsInternal: false},
		{ID: "c2", IsInternal: true},
	}, nil)

	comments, err := f.service.ListForComplaint(context.Background(), complaint.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 2)
}

func TestListForUnknownComplaint(t *testing.T) {
	f := newCommentFixture()
	f.complaints.On("GetByID", mock.Anything, mock.Anything).Return(nil, pgx.ErrNoRows)

	_, err := f.service.ListForComplaint(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}
