package libevents

// listenerMap holds at most one listener per key. Keys keep the position of
// their first insertion; replacing a listener does not move its key.
type listenerMap[K comparable, V any] struct {
	keys      []string
	listeners map[string]*Listener[K, V]
}

func newListenerMap[K comparable, V any]() *listenerMap[K, V] {
	return &listenerMap[K, V]{
		listeners: make(map[string]*Listener[K, V]),
	}
}

// put stores listener under key and returns the listener it replaced, if any.
func (m *listenerMap[K, V]) put(key string, listener *Listener[K, V]) *Listener[K, V] {
	prev, found := m.listeners[key]
	if !found {
		m.keys = append(m.keys, key)
	}
	m.listeners[key] = listener
	return prev
}

func (m *listenerMap[K, V]) has(key string) bool {
	_, found := m.listeners[key]
	return found
}

// snapshot returns the listeners in key insertion order.
func (m *listenerMap[K, V]) snapshot() []*Listener[K, V] {
	if len(m.keys) == 0 {
		return nil
	}
	out := make([]*Listener[K, V], 0, len(m.keys))
	for _, key := range m.keys {
		out = append(out, m.listeners[key])
	}
	return out
}

func (m *listenerMap[K, V]) clear() {
	m.keys = nil
	m.listeners = make(map[string]*Listener[K, V])
}
