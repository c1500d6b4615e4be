package libevents

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

type (
	// ChildListeners lists the "on" listeners a direct child holds for one event.
	ChildListeners[K comparable, V any] struct {
		ChildIndex int
		Listeners  []*Listener[K, V]
	}

	ListenerSnapshot[K comparable, V any] struct {
		Listeners []*Listener[K, V]
		Children  []ChildListeners[K, V]
	}
)

// HasListenerFuncs reports whether event has at least one "on" listener on
// this bus or on any bus piped below it. Keyed and wildcard listeners do not
// count.
func (e *EventBus[K, V]) HasListenerFuncs(event K) bool {
	e.lock.RLock()
	list, found := e.onListeners[event]
	has := found && list.has()
	e.lock.RUnlock()

	if has {
		return true
	}

	for _, child := range e.childrenSnapshot() {
		if child.HasListenerFuncs(event) {
			return true
		}
	}
	return false
}

// HasOnlyListener reports whether a keyed listener is stored under key for event.
func (e *EventBus[K, V]) HasOnlyListener(event K, key string) bool {
	e.lock.RLock()
	defer e.lock.RUnlock()

	listeners, found := e.onlyListeners[event]
	return found && listeners.has(key)
}

// ListAllListeners returns, for each event known to the "on" channel of this
// bus, its listeners and the listeners each direct child holds for the same
// event. Grandchildren are not listed.
func (e *EventBus[K, V]) ListAllListeners() map[K]ListenerSnapshot[K, V] {
	e.lock.RLock()
	out := make(map[K]ListenerSnapshot[K, V], len(e.onListeners))
	for event, list := range e.onListeners {
		out[event] = ListenerSnapshot[K, V]{Listeners: list.snapshot()}
	}
	e.lock.RUnlock()

	children := e.childrenSnapshot()
	if len(children) == 0 {
		return out
	}

	for event, snapshot := range out {
		for idx, child := range children {
			listeners, found := child.onListenersOf(event)
			if !found {
				continue
			}
			snapshot.Children = append(snapshot.Children, ChildListeners[K, V]{
				ChildIndex: idx,
				Listeners:  listeners,
			})
		}
		out[event] = snapshot
	}

	return out
}

func (e *EventBus[K, V]) onListenersOf(event K) ([]*Listener[K, V], bool) {
	e.lock.RLock()
	defer e.lock.RUnlock()

	list, found := e.onListeners[event]
	if !found {
		return nil, false
	}
	return list.snapshot(), true
}

// Validate looks for listeners that Emit would reject, on this bus and every
// bus below it. All offenders are reported in one error.
func (e *EventBus[K, V]) Validate() error {
	var err error

	e.lock.RLock()
	for event, list := range e.onListeners {
		err = multierr.Append(err, invalidListeners(ChannelOn, event, list.listeners))
	}
	for event, listeners := range e.onlyListeners {
		err = multierr.Append(err, invalidListeners(ChannelOnly, event, listeners.snapshot()))
	}
	if e.anyListeners != nil {
		err = multierr.Append(err, invalidListeners(ChannelAny, nil, e.anyListeners.listeners))
	}
	e.lock.RUnlock()

	for idx, child := range e.childrenSnapshot() {
		for _, childErr := range multierr.Errors(child.Validate()) {
			err = multierr.Append(err, errors.Wrapf(childErr, "child emitter %d", idx))
		}
	}

	return err
}

func invalidListeners[K comparable, V any](channel Channel, event any, listeners []*Listener[K, V]) error {
	var err error
	for _, listener := range listeners {
		if listener.invocable() {
			continue
		}
		err = multierr.Append(err, InvalidListenerError{
			Channel:    channel,
			EventID:    event,
			ListenerID: listener.ID(),
		})
	}
	return err
}
