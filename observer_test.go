package libevents

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddObserverHook_NotifiedOnEveryOn(t *testing.T) {
	emitter := NewEventBus[string, int](nil)
	var got []Registration[string, int]

	require.NoError(t, emitter.AddObserverHook("h", func(r Registration[string, int]) {
		got = append(got, r)
	}))

	listener := emitter.On("x", func(Event[string, int]) {})

	require.Len(t, got, 1)
	assert.Equal(t, "x", got[0].EventID)
	assert.Same(t, listener, got[0].Listener)
	assert.Equal(t, "h", got[0].HookName)

	emitter.OnListener("y", listener)
	require.Len(t, got, 2)
	assert.Equal(t, "y", got[1].EventID)
}

func TestAddObserverHook_IgnoresOnlyAndOnAny(t *testing.T) {
	emitter := NewEventBus[string, int](nil)
	calls := 0

	require.NoError(t, emitter.AddObserverHook("h", func(Registration[string, int]) { calls++ }))

	emitter.Only("x", "k", func(Event[string, int]) {})
	emitter.OnAny(func(Event[string, int]) {})

	assert.Equal(t, 0, calls)
}

func TestAddObserverHook_HooksRunInRegistrationOrder(t *testing.T) {
	emitter := NewEventBus[string, int](nil)
	var order []string

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, emitter.AddObserverHook(name, func(r Registration[string, int]) {
			order = append(order, r.HookName)
		}))
	}

	emitter.On("x", func(Event[string, int]) {})
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestAddObserverHook_DuplicateName(t *testing.T) {
	emitter := NewEventBus[string, int](nil)

	require.NoError(t, emitter.AddObserverHook("h", func(Registration[string, int]) {}))
	err := emitter.AddObserverHook("h", func(Registration[string, int]) {})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateKey))

	var dup DuplicateKeyError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "h", dup.Name)
	assert.Len(t, emitter.ListObserverHooks(), 1)
}

func TestRemoveObserverHook(t *testing.T) {
	emitter := NewEventBus[string, int](nil)
	calls := 0

	require.NoError(t, emitter.AddObserverHook("a", func(Registration[string, int]) { calls++ }))
	require.NoError(t, emitter.AddObserverHook("b", func(Registration[string, int]) {}))
	require.NoError(t, emitter.AddObserverHook("c", func(Registration[string, int]) {}))

	emitter.RemoveObserverHook("a")
	emitter.RemoveObserverHook("missing")

	emitter.On("x", func(Event[string, int]) {})
	assert.Equal(t, 0, calls)

	hooks := emitter.ListObserverHooks()
	require.Len(t, hooks, 2)
	assert.Equal(t, "b", hooks[0].Name)
	assert.Equal(t, "c", hooks[1].Name)

	// A removed name can be registered again.
	assert.NoError(t, emitter.AddObserverHook("a", func(Registration[string, int]) {}))
}

func TestListObserverHooks_Empty(t *testing.T) {
	emitter := NewEventBus[string, int](nil)
	assert.Empty(t, emitter.ListObserverHooks())
}
