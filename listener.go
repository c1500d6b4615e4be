package libevents

import (
	"github.com/google/uuid"
)

type (
	// Event is the envelope every callback receives. Type always holds the
	// identifier the bus is dispatching, Body the value handed to Emit.
	Event[K comparable, V any] struct {
		Type K
		Body V
	}

	Callback[K comparable, V any] func(Event[K, V])

	// Listener is a registration handle. Two listeners are the same listener
	// only if they are the same pointer; callbacks themselves are not compared.
	Listener[K comparable, V any] struct {
		id       string
		callback Callback[K, V]
	}
)

// NewListener wraps callback in a handle that can be registered, possibly
// several times, with OnListener and later removed with RemoveListener.
func NewListener[K comparable, V any](callback Callback[K, V]) *Listener[K, V] {
	return newListener(uuid.NewString(), callback)
}

func newListener[K comparable, V any](id string, callback Callback[K, V]) *Listener[K, V] {
	return &Listener[K, V]{id: id, callback: callback}
}

// ID returns the identifier of the listener. It is safe to call on nil.
func (l *Listener[K, V]) ID() string {
	if l == nil {
		return ""
	}
	return l.id
}

func (l *Listener[K, V]) invocable() bool {
	return l != nil && l.callback != nil
}

func (l *Listener[K, V]) call(ev Event[K, V]) {
	l.callback(ev)
}
