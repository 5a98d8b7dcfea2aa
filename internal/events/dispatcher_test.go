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

	var got []Event
	d.Subscribe(EventTicketEscalated, func(ctx context.Context, event Event) error {
		got = append(got, event)
		return nil
	})
	d.Subscribe(EventMessageIngested, func(ctx context.Context, event Event) error {
		t.Fatal("handler for a different event type must not fire")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventTicketEscalated, TicketID: "t-1"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t-1", got[0].TicketID)
}

func TestDispatcherToleratesHandlerErrors(t *testing.T) {
	d := NewInMemoryDispatcher()

	var secondCalled bool
	d.Subscribe(EventTicketCreated, func(ctx context.Context, event Event) error {
		return errors.New("handler blew up")
	})
	d.Subscribe(EventTicketCreated, func(ctx context.Context, event Event) error {
		secondCalled = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventTicketCreated})
	require.NoError(t, err)
	assert.True(t, secondCalled, "one failing handler must not block the rest")
}

func TestDispatcherIgnoresUnknownEventTypes(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventTicketAssigned}))
}
