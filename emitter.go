package libevents

// Emitter is the registration and dispatch surface of an EventBus.
type Emitter[K comparable, V any] interface {
	// On registers a new listener for the given event.
	On(event K, callback Callback[K, V]) *Listener[K, V]

	// Only registers a listener for the given event under key, replacing the previous one.
	Only(event K, key string, callback Callback[K, V]) *Listener[K, V]

	// OnAny registers a listener for every event.
	OnAny(callback Callback[K, V]) *Listener[K, V]

	// RemoveListener removes the first occurrence of listener from the given event.
	RemoveListener(event K, listener *Listener[K, V])

	// Emit triggers all listeners registered for the given event synchronously.
	Emit(event K, body V) error

	// ClearAll removes all listeners for all events.
	ClearAll()
}

var _ Emitter[string, any] = (*EventBus[string, any])(nil)
