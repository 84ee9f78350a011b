package settings

import (
	"slices"

	"github.com/google/uuid"
)

// Listener is notified with the setting that changed.
type Listener func(setting Setting)

// Subscription is the handle returned by AddListener.
type Subscription struct {
	id    uuid.UUID
	store *Store
}

// Unsubscribe removes the listener. Calling it more than once is harmless.
func (sub *Subscription) Unsubscribe() {
	if sub == nil || sub.store == nil {
		return
	}
	sub.store.RemoveListener(sub)
}

type subscription struct {
	id       uuid.UUID
	listener Listener
}

// AddListener registers l to be called when a setting changes. The same
// function may be added more than once and is then called once per
// registration. Only changes to Logging are announced.
func (s *Store) AddListener(l Listener) *Subscription {
	if l == nil {
		return &Subscription{}
	}

	id := uuid.New()
	s.listeners = append(s.listeners, subscription{id: id, listener: l})

	return &Subscription{id: id, store: s}
}

// RemoveListener removes the registration behind sub.
func (s *Store) RemoveListener(sub *Subscription) {
	if sub == nil {
		return
	}
	s.listeners = slices.DeleteFunc(s.listeners, func(e subscription) bool {
		return e.id == sub.id
	})
}

// ListenerCount returns the number of registered listeners.
func (s *Store) ListenerCount() int {
	return len(s.listeners)
}

// fireChanged calls the listeners in the order they were added. It works on
// a copy, so listeners may unsubscribe while being notified.
func (s *Store) fireChanged(setting Setting) {
	for _, e := range slices.Clone(s.listeners) {
		e.listener(setting)
	}
}
