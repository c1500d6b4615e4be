package libevents

type (
	// Registration describes one On/OnListener call as seen by an observer hook.
	Registration[K comparable, V any] struct {
		EventID  K
		Listener *Listener[K, V]
		HookName string
	}

	ObserverHook[K comparable, V any] func(Registration[K, V])

	NamedObserverHook[K comparable, V any] struct {
		Name string
		Hook ObserverHook[K, V]
	}
)

// hookRegistry keeps observer hooks by name in registration order.
type hookRegistry[K comparable, V any] struct {
	names []string
	hooks map[string]ObserverHook[K, V]
}

func newHookRegistry[K comparable, V any]() *hookRegistry[K, V] {
	return &hookRegistry[K, V]{
		hooks: make(map[string]ObserverHook[K, V]),
	}
}

func (r *hookRegistry[K, V]) add(name string, hook ObserverHook[K, V]) error {
	if _, found := r.hooks[name]; found {
		return DuplicateKeyError{Name: name}
	}
	r.names = append(r.names, name)
	r.hooks[name] = hook
	return nil
}

func (r *hookRegistry[K, V]) remove(name string) bool {
	if _, found := r.hooks[name]; !found {
		return false
	}
	delete(r.hooks, name)
	for i, candidate := range r.names {
		if candidate == name {
			r.names = append(r.names[:i:i], r.names[i+1:]...)
			break
		}
	}
	return true
}

func (r *hookRegistry[K, V]) list() []NamedObserverHook[K, V] {
	out := make([]NamedObserverHook[K, V], 0, len(r.names))
	for _, name := range r.names {
		out = append(out, NamedObserverHook[K, V]{Name: name, Hook: r.hooks[name]})
	}
	return out
}

// AddObserverHook registers hook under name. It is invoked synchronously after
// every subsequent On or OnListener call. Names are unique: registering an
// existing name fails with a DuplicateKeyError instead of replacing it.
func (e *EventBus[K, V]) AddObserverHook(name string, hook ObserverHook[K, V]) error {
	e.lock.Lock()
	err := e.hooks.add(name, hook)
	e.lock.Unlock()

	if err != nil {
		e.logger.Warnf("cannot add observer hook: %s", err)
		return err
	}
	e.logger.Debugf("observer hook %q added", name)
	return nil
}

// RemoveObserverHook unregisters the hook called name. Unknown names are ignored.
func (e *EventBus[K, V]) RemoveObserverHook(name string) {
	e.lock.Lock()
	removed := e.hooks.remove(name)
	e.lock.Unlock()

	if removed {
		e.logger.Debugf("observer hook %q removed", name)
	}
}

// ListObserverHooks returns the registered hooks in registration order.
func (e *EventBus[K, V]) ListObserverHooks() []NamedObserverHook[K, V] {
	e.lock.RLock()
	defer e.lock.RUnlock()

	return e.hooks.list()
}

func (e *EventBus[K, V]) notifyHooks(hooks []NamedObserverHook[K, V], event K, listener *Listener[K, V]) {
	for _, h := range hooks {
		if h.Hook == nil {
			continue
		}
		h.Hook(Registration[K, V]{
			EventID:  event,
			Listener: listener,
			HookName: h.Name,
		})
	}
}
