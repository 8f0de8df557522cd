package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var received []Event
	d.Subscribe(EventJobCreated, func(ctx context.Context, event Event) error {
		received = append(received, event)
		return nil
	})
	d.Subscribe(EventJobStatusChanged, func(ctx context.Context, event Event) error {
		t.Fatal("should not receive other event types")
		return nil
	})

	err := d.Publish(context.Background(), Event{ID: "e1", Type: EventJobCreated, EntityID: "job-1"})
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, "job-1", received[0].EntityID)
}

func TestDispatcherHandlerErrorDoesNotStopDelivery(t *testing.T) {
	d := NewInMemoryDispatcher()

	secondCalled := false
	d.Subscribe(EventUserRegistered, func(ctx context.Context, event Event) error {
		return errors.New("handler failure")
	})
	d.Subscribe(EventUserRegistered, func(ctx context.Context, event Event) error {
		secondCalled = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventUserRegistered})
	require.NoError(t, err)
	assert.True(t, secondCalled)
}

func TestDispatcherNoSubscribersIsNoop(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventProductCreated}))
}
