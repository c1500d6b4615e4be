package libevents

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestHasListenerFuncs(t *testing.T) {
	t.Run("seeded events have no listeners", func(t *testing.T) {
		emitter := NewEventBus[string, int]([]string{"testEvent", "testEvent2"})
		assert.False(t, emitter.HasListenerFuncs("testEvent"))
	})

	t.Run("own listener", func(t *testing.T) {
		emitter := NewEventBus[string, int](nil)
		emitter.On("testEvent", func(Event[string, int]) {})
		assert.True(t, emitter.HasListenerFuncs("testEvent"))
		assert.False(t, emitter.HasListenerFuncs("other"))
	})

	t.Run("listener on a descendant", func(t *testing.T) {
		parent := NewEventBus[string, int](nil)
		child := NewEventBus[string, int](nil)
		grandchild := NewEventBus[string, int](nil)
		parent.Pipe(child)
		child.Pipe(grandchild)

		grandchild.On("testEvent", func(Event[string, int]) {})
		assert.True(t, parent.HasListenerFuncs("testEvent"))
	})

	t.Run("only and any do not count", func(t *testing.T) {
		emitter := NewEventBus[string, int](nil)
		emitter.Only("testEvent", "k", func(Event[string, int]) {})
		emitter.OnAny(func(Event[string, int]) {})
		assert.False(t, emitter.HasListenerFuncs("testEvent"))
	})

	t.Run("removed listener", func(t *testing.T) {
		emitter := NewEventBus[string, int](nil)
		listener := emitter.On("testEvent", func(Event[string, int]) {})
		emitter.RemoveListener("testEvent", listener)
		assert.False(t, emitter.HasListenerFuncs("testEvent"))
	})
}

func TestHasOnlyListener(t *testing.T) {
	emitter := NewEventBus[string, int](nil)
	emitter.Only("x", "k", func(Event[string, int]) {})

	assert.True(t, emitter.HasOnlyListener("x", "k"))
	assert.False(t, emitter.HasOnlyListener("x", "other"))
	assert.False(t, emitter.HasOnlyListener("y", "k"))
}

func TestListAllListeners(t *testing.T) {
	emitter := NewEventBus[string, int](nil)

	all := emitter.ListAllListeners()
	_, found := all["testEvent"]
	assert.False(t, found)

	listener := emitter.On("testEvent", func(Event[string, int]) {})

	all = emitter.ListAllListeners()
	require.Contains(t, all, "testEvent")
	require.Len(t, all["testEvent"].Listeners, 1)
	assert.Same(t, listener, all["testEvent"].Listeners[0])
	assert.Empty(t, all["testEvent"].Children)
}

func TestListAllListeners_SeededEvents(t *testing.T) {
	emitter := NewEventBus[string, int]([]string{"a", "b"})

	all := emitter.ListAllListeners()
	require.Len(t, all, 2)
	assert.Empty(t, all["a"].Listeners)
}

func TestListAllListeners_WithChildEmitters(t *testing.T) {
	parent := NewEventBus[string, int](nil)
	silent := NewEventBus[string, int](nil)
	child := NewEventBus[string, int](nil)
	grandchild := NewEventBus[string, int](nil)

	parent.Pipe(silent)
	parent.Pipe(child)
	child.Pipe(grandchild)

	childListener := child.On("testEvent", func(Event[string, int]) {})
	parent.On("testEvent", func(Event[string, int]) {})
	grandchild.On("testEvent", func(Event[string, int]) {})
	child.On("childOnly", func(Event[string, int]) {})

	all := parent.ListAllListeners()

	require.Contains(t, all, "testEvent")
	assert.NotContains(t, all, "childOnly")

	children := all["testEvent"].Children
	require.Len(t, children, 1)
	assert.Equal(t, 1, children[0].ChildIndex)
	require.Len(t, children[0].Listeners, 1)
	assert.Same(t, childListener, children[0].Listeners[0])
}

func TestValidate(t *testing.T) {
	t.Run("healthy bus", func(t *testing.T) {
		emitter := NewEventBus[string, int](nil)
		emitter.On("x", func(Event[string, int]) {})
		emitter.Only("x", "k", func(Event[string, int]) {})
		emitter.OnAny(func(Event[string, int]) {})

		assert.NoError(t, emitter.Validate())
	})

	t.Run("reports every invalid listener", func(t *testing.T) {
		parent := NewEventBus[string, int](nil)
		child := NewEventBus[string, int](nil)
		parent.Pipe(child)

		parent.On("x", nil)
		parent.Only("x", "k", nil)
		parent.OnAny(nil)
		child.OnListener("y", nil)

		err := parent.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidListener))

		errs := multierr.Errors(err)
		require.Len(t, errs, 4)

		channels := make(map[Channel]int)
		for _, e := range errs {
			var invalid InvalidListenerError
			require.True(t, errors.As(e, &invalid))
			channels[invalid.Channel]++
		}
		assert.Equal(t, map[Channel]int{ChannelOn: 2, ChannelOnly: 1, ChannelAny: 1}, channels)
	})
}
