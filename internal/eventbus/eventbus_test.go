package eventbus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublishDispatchesSynchronouslyInOrder(t *testing.T) {
	t.Parallel()

	bus := New()

	var order []string
	bus.Subscribe(EventStoreBuilt, func(e DomainEvent) {
		order = append(order, "first")
	})
	bus.Subscribe(EventStoreBuilt, func(e DomainEvent) {
		order = append(order, "second")
	})

	bus.Publish(StoreBuiltEvent{Types: 2})

	// Handlers ran on this goroutine before Publish returned.
	require.Equal(t, []string{"first", "second"}, order)
}

func TestPublishOnlyReachesMatchingType(t *testing.T) {
	t.Parallel()

	bus := New()

	called := false
	bus.Subscribe(EventError, func(e DomainEvent) {
		called = true
	})

	bus.Publish(StoreBuiltEvent{})
	require.False(t, called)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()

	bus := New()

	count := 0
	unsubscribe := bus.Subscribe(EventStoreBuilt, func(e DomainEvent) {
		count++
	})

	bus.Publish(StoreBuiltEvent{})
	unsubscribe()
	bus.Publish(StoreBuiltEvent{})

	require.Equal(t, 1, count)
}

func TestHandlerPanicDoesNotPoisonTheBus(t *testing.T) {
	t.Parallel()

	bus := New()

	bus.Subscribe(EventStoreBuilt, func(e DomainEvent) {
		panic("boom")
	})
	reached := false
	bus.Subscribe(EventStoreBuilt, func(e DomainEvent) {
		reached = true
	})

	bus.Publish(StoreBuiltEvent{})
	require.True(t, reached, "a panicking handler must not block later handlers")
}
