package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan DomainEvent) DomainEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestPublishDeliversInOrder(t *testing.T) {
	bus := New()
	defer bus.Close()

	got := make(chan DomainEvent, 4)
	bus.Subscribe(EventTransactionDeleted, func(e DomainEvent) { got <- e })

	bus.Publish(TransactionDeletedEvent{ID: "a"})
	bus.Publish(TransactionDeletedEvent{ID: "b"})

	assert.Equal(t, "a", receive(t, got).(TransactionDeletedEvent).ID)
	assert.Equal(t, "b", receive(t, got).(TransactionDeletedEvent).ID)
}

func TestUnsubscribe(t *testing.T) {
	bus := New()
	defer bus.Close()

	first := make(chan DomainEvent, 2)
	second := make(chan DomainEvent, 2)
	unsub := bus.Subscribe(EventError, func(e DomainEvent) { first <- e })
	bus.Subscribe(EventError, func(e DomainEvent) { second <- e })

	unsub()
	bus.Publish(ErrorEvent{Message: "x"})

	receive(t, second)
	assert.Empty(t, first, "Unsubscribed handler should not run")
}

func TestHandlerPanicDoesNotStopDispatch(t *testing.T) {
	bus := New()
	defer bus.Close()

	got := make(chan DomainEvent, 1)
	bus.Subscribe(EventSessionCreated, func(DomainEvent) { panic("boom") })
	bus.Subscribe(EventSessionCreated, func(e DomainEvent) { got <- e })

	bus.Publish(SessionCreatedEvent{ExpiresIn: 60})
	ev := receive(t, got)
	require.IsType(t, SessionCreatedEvent{}, ev)
}

func TestPublishAfterClose(t *testing.T) {
	bus := New()
	bus.Close()
	bus.Close()
	assert.NotPanics(t, func() { bus.Publish(ErrorEvent{}) })
}
