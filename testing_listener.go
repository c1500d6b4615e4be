package libevents

import (
	"github.com/stretchr/testify/mock"
)

// mockListener records every event it receives.
type mockListener[K comparable, V any] struct {
	mock.Mock

	tapHandle func(Event[K, V])
}

func (m *mockListener[K, V]) Handle(ev Event[K, V]) {
	if m.tapHandle != nil {
		m.tapHandle(ev)
	}
	m.MethodCalled("Handle", ev)
}

func newMockListener[K comparable, V any]() *mockListener[K, V] {
	return &mockListener[K, V]{}
}
