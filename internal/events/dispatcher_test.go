package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishInvokesSubscribersInOrder(t *testing.T) {
	d := NewInMemoryDispatcher()

	var calls []string
	d.Subscribe(EventComplaintSubmitted, func(_ context.Context, e Event) error {
		calls = append(calls, "first:"+e.ComplaintID)
		return nil
	})
	d.Subscribe(EventComplaintSubmitted, func(_ context.Context, e Event) error {
		calls = append(calls, "second:"+e.ComplaintID)
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventComplaintSubmitted, ComplaintID: "c1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first:c1", "second:c1"}, calls)
}

func TestPublishContinuesPastHandlerError(t *testing.T) {
	d := NewInMemoryDispatcher()

	var reached bool
	d.Subscribe(EventCommentAdded, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventCommentAdded, func(context.Context, Event) error {
		reached = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventCommentAdded})
	require.NoError(t, err)
	assert.True(t, reached)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventComplaintDeleted}))
}

func TestPublishIgnoresOtherEventTypes(t *testing.T) {
	d := NewInMemoryDispatcher()

	var called bool
	d.Subscribe(EventComplaintWithdrawn, func(context.Context, Event) error {
		called = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventComplaintStatusChanged}))
	assert.False(t, called)
}
