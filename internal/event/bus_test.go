package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBus_Publish(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var got []any
	bus.Subscribe("basket:changed", func(payload any) {
		got = append(got, payload)
	})

	bus.Publish("basket:changed", 42)

	require.Len(t, got, 1)
	assert.Equal(t, 42, got[0])
}

func TestBus_Publish_ExactNameMatch(t *testing.T) {
	bus := NewBus(zap.NewNop())

	called := false
	bus.Subscribe("basket:changed", func(any) { called = true })

	bus.Publish("basket", nil)
	bus.Publish("basket:changed:extra", nil)

	assert.False(t, called)
}

func TestBus_Publish_NoSubscribers(t *testing.T) {
	bus := NewBus(zap.NewNop())

	// Publishing into the void is a no-op, not an error.
	assert.NotPanics(t, func() {
		bus.Publish("nobody:listens", "payload")
	})
}

func TestBus_Publish_RegistrationOrder(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		bus.Subscribe("evt", func(any) { order = append(order, i) })
	}

	bus.Publish("evt", nil)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestBus_Publish_ReentrantCompletesFirst(t *testing.T) {
	bus := NewBus(zap.NewNop())

	// The first handler for "outer" re-publishes "inner"; the inner dispatch
	// must fully resolve before the second "outer" handler runs.
	var trace []string
	bus.Subscribe("inner", func(any) { trace = append(trace, "inner") })
	bus.Subscribe("outer", func(any) {
		trace = append(trace, "outer-1")
		bus.Publish("inner", nil)
	})
	bus.Subscribe("outer", func(any) { trace = append(trace, "outer-2") })

	bus.Publish("outer", nil)

	assert.Equal(t, []string{"outer-1", "inner", "outer-2"}, trace)
}

func TestBus_Publish_ReentrantMutationObservedByLaterHandlers(t *testing.T) {
	bus := NewBus(zap.NewNop())

	// Models the counter-update pattern: a handler mutates state and
	// re-publishes; the outer publish's later handlers see the final state.
	state := 0
	bus.Subscribe("changed", func(payload any) {
		if bump, ok := payload.(int); ok && bump > 0 {
			state += bump
			bus.Publish("changed", 0)
		}
	})

	var seen []int
	bus.Subscribe("changed", func(any) { seen = append(seen, state) })

	bus.Publish("changed", 3)

	// Inner publish (payload 0) observes state=3 first, then the outer one.
	assert.Equal(t, []int{3, 3}, seen)
}

func TestBus_Publish_PanickingHandlerDoesNotStopOthers(t *testing.T) {
	bus := NewBus(zap.NewNop())

	reached := false
	bus.Subscribe("evt", func(any) { panic("boom") })
	bus.Subscribe("evt", func(any) { reached = true })

	require.NotPanics(t, func() { bus.Publish("evt", nil) })
	assert.True(t, reached)
}

func TestBus_Subscribe_NilHandlerIgnored(t *testing.T) {
	bus := NewBus(zap.NewNop())

	bus.Subscribe("evt", nil)

	assert.NotPanics(t, func() { bus.Publish("evt", nil) })
}

func TestBus_HandlerSubscribedDuringPublishNotInvoked(t *testing.T) {
	bus := NewBus(zap.NewNop())

	late := false
	bus.Subscribe("evt", func(any) {
		bus.Subscribe("evt", func(any) { late = true })
	})

	bus.Publish("evt", nil)
	assert.False(t, late, "handlers registered mid-dispatch join the next publish")

	bus.Publish("evt", nil)
	assert.True(t, late)
}
