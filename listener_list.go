package libevents

// listenerList is an insertion ordered sequence of listeners for one event.
// The same listener may appear more than once and every occurrence fires.
type listenerList[K comparable, V any] struct {
	listeners []*Listener[K, V]
}

func newListenerList[K comparable, V any]() *listenerList[K, V] {
	return &listenerList[K, V]{}
}

func (l *listenerList[K, V]) add(listener *Listener[K, V]) {
	l.listeners = append(l.listeners, listener)
}

// remove drops the first occurrence of listener and reports whether it was found.
func (l *listenerList[K, V]) remove(listener *Listener[K, V]) bool {
	for i, candidate := range l.listeners {
		if candidate != listener {
			continue
		}
		l.listeners = append(l.listeners[:i:i], l.listeners[i+1:]...)
		return true
	}
	return false
}

func (l *listenerList[K, V]) has() bool {
	return len(l.listeners) > 0
}

// snapshot returns a copy, so callers can iterate without holding locks.
func (l *listenerList[K, V]) snapshot() []*Listener[K, V] {
	if len(l.listeners) == 0 {
		return nil
	}
	out := make([]*Listener[K, V], len(l.listeners))
	copy(out, l.listeners)
	return out
}

func (l *listenerList[K, V]) clear() {
	l.listeners = nil
}
