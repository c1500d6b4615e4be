package libevents

import (
	"sync"

	"github.com/pkg/errors"
)

// EventBus maps events (of type K) to listeners receiving an Event envelope
// around a body of type V. Listeners live in three channels: "on" (ordered,
// duplicates allowed), "only" (one listener per key) and "any" (every event).
// Emissions cascade to piped child buses.
//
// Callbacks run synchronously on the goroutine calling Emit, and the bus never
// holds its lock while user code runs. Each channel is copied before dispatch,
// so registrations made from inside a callback take effect on the next Emit.
type EventBus[K comparable, V any] struct {
	lock sync.RWMutex

	onListeners   map[K]*listenerList[K, V]
	onlyListeners map[K]*listenerMap[K, V]
	anyListeners  *listenerList[K, V]
	hooks         *hookRegistry[K, V]
	children      []*EventBus[K, V]

	logger logger
	newID  IDGenerator
}

// NewEventBus creates an EventBus. Every identifier in events is prepared with
// an empty listener list.
func NewEventBus[K comparable, V any](events []K, opts ...Option) *EventBus[K, V] {
	cfg := defaultBusConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	bus := &EventBus[K, V]{
		onListeners:   make(map[K]*listenerList[K, V], len(events)),
		onlyListeners: make(map[K]*listenerMap[K, V]),
		hooks:         newHookRegistry[K, V](),
		logger:        cfg.logger.WithField("bus", cfg.name),
		newID:         cfg.idGenerator,
	}

	for _, event := range events {
		bus.onListeners[event] = newListenerList[K, V]()
	}

	return bus
}

// On registers callback for the given event and returns its handle.
func (e *EventBus[K, V]) On(event K, callback Callback[K, V]) *Listener[K, V] {
	listener := newListener(e.newID(), callback)
	e.OnListener(event, listener)
	return listener
}

// OnListener appends listener to the listeners of event. Observer hooks are
// notified before it returns.
func (e *EventBus[K, V]) OnListener(event K, listener *Listener[K, V]) {
	e.lock.Lock()
	list, found := e.onListeners[event]
	if !found {
		list = newListenerList[K, V]()
		e.onListeners[event] = list
	}
	list.add(listener)
	hooks := e.hooks.list()
	e.lock.Unlock()

	e.logger.Debugf("listener %s registered on %v", listener.ID(), event)

	e.notifyHooks(hooks, event, listener)
}

// Only registers callback under key for the given event. Only one listener
// is kept per key: a later call with the same key replaces the earlier one.
func (e *EventBus[K, V]) Only(event K, key string, callback Callback[K, V]) *Listener[K, V] {
	listener := newListener(e.newID(), callback)

	e.lock.Lock()
	listeners, found := e.onlyListeners[event]
	if !found {
		listeners = newListenerMap[K, V]()
		e.onlyListeners[event] = listeners
	}
	prev := listeners.put(key, listener)
	e.lock.Unlock()

	if prev != nil {
		e.logger.Debugf("listener %s replaced %s under key %q on %v", listener.ID(), prev.ID(), key, event)
	} else {
		e.logger.Debugf("listener %s registered under key %q on %v", listener.ID(), key, event)
	}

	return listener
}

// OnAny registers callback for every event emitted through the bus.
func (e *EventBus[K, V]) OnAny(callback Callback[K, V]) *Listener[K, V] {
	listener := newListener(e.newID(), callback)

	e.lock.Lock()
	if e.anyListeners == nil {
		e.anyListeners = newListenerList[K, V]()
	}
	e.anyListeners.add(listener)
	e.lock.Unlock()

	e.logger.Debugf("listener %s registered on any event", listener.ID())

	return listener
}

// RemoveListener removes the first occurrence of listener from the "on"
// listeners of event. Keyed and wildcard listeners are left untouched.
func (e *EventBus[K, V]) RemoveListener(event K, listener *Listener[K, V]) {
	e.lock.Lock()
	removed := false
	if list, found := e.onListeners[event]; found {
		removed = list.remove(listener)
	}
	e.lock.Unlock()

	if removed {
		e.logger.Debugf("listener %s removed from %v", listener.ID(), event)
	}
}

// Pipe attaches child so that every emission on e is repeated on child.
// The bus does not own child; the same child may be piped into several buses.
// Links that would close a cycle are ignored.
func (e *EventBus[K, V]) Pipe(child *EventBus[K, V]) {
	if child == nil {
		e.logger.Warn("cannot pipe into a nil bus")
		return
	}

	if child == e || child.reaches(e) {
		e.logger.Warn("ignoring pipe: it would create a cycle")
		return
	}

	e.lock.Lock()
	e.children = append(e.children, child)
	idx := len(e.children) - 1
	e.lock.Unlock()

	e.logger.Debugf("child emitter %d attached", idx)
}

// reaches tells whether target is a descendant of e.
func (e *EventBus[K, V]) reaches(target *EventBus[K, V]) bool {
	for _, child := range e.childrenSnapshot() {
		if child == target || child.reaches(target) {
			return true
		}
	}
	return false
}

func (e *EventBus[K, V]) childrenSnapshot() []*EventBus[K, V] {
	e.lock.RLock()
	defer e.lock.RUnlock()

	if len(e.children) == 0 {
		return nil
	}
	out := make([]*EventBus[K, V], len(e.children))
	copy(out, e.children)
	return out
}

// Emit delivers body to the listeners of event: first the "on" listeners in
// registration order, then the keyed listeners in key order, then the
// wildcard listeners, and finally every child bus in the order they were
// piped. It returns once every callback has returned.
//
// A listener without callback aborts the emission with an
// InvalidListenerError; callbacks invoked before it are not undone and no
// later listener or child is reached.
func (e *EventBus[K, V]) Emit(event K, body V) error {
	e.lock.RLock()
	var on, only, anyOf []*Listener[K, V]
	if list, found := e.onListeners[event]; found {
		on = list.snapshot()
	}
	if listeners, found := e.onlyListeners[event]; found {
		only = listeners.snapshot()
	}
	if e.anyListeners != nil {
		anyOf = e.anyListeners.snapshot()
	}
	e.lock.RUnlock()

	ev := Event[K, V]{Type: event, Body: body}

	if err := e.dispatch(ChannelOn, ev, on); err != nil {
		return err
	}
	if err := e.dispatch(ChannelOnly, ev, only); err != nil {
		return err
	}
	if err := e.dispatch(ChannelAny, ev, anyOf); err != nil {
		return err
	}

	for i, child := range e.childrenSnapshot() {
		if err := child.Emit(event, body); err != nil {
			return errors.Wrapf(err, "child emitter %d", i)
		}
	}

	return nil
}

func (e *EventBus[K, V]) dispatch(channel Channel, ev Event[K, V], listeners []*Listener[K, V]) error {
	for _, listener := range listeners {
		if !listener.invocable() {
			err := InvalidListenerError{
				Channel:    channel,
				EventID:    ev.Type,
				ListenerID: listener.ID(),
			}
			e.logger.Errorf("aborting emission: %s", err)
			return err
		}
		listener.call(ev)
	}
	return nil
}

// ClearAll drops every listener and child link, leaving the bus as if it had
// been created without seeded events. Observer hooks are kept.
func (e *EventBus[K, V]) ClearAll() {
	e.lock.Lock()
	defer e.lock.Unlock()

	for _, list := range e.onListeners {
		list.clear()
	}
	e.onListeners = make(map[K]*listenerList[K, V])

	for _, listeners := range e.onlyListeners {
		listeners.clear()
	}
	e.onlyListeners = make(map[K]*listenerMap[K, V])

	e.anyListeners = nil
	e.children = nil

	e.logger.Debug("all listeners cleared")
}
