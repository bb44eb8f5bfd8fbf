package mediator

import "sync"

// storage is a named cell. It reports writes to its mediator and never to
// observers directly.
type storage[T any] struct {
	name     string
	data     T
	mediator *Mediator[T]
}

func (s *storage[T]) notify() { s.mediator.changed(s.name) }

type subscription struct {
	id   uint64
	name string
	fn   func()
}

// Mediator routes change notifications from storages to observers.
// The zero value is ready to use and safe for concurrent use.
type Mediator[T any] struct {
	mu       sync.RWMutex
	storages map[string]*storage[T]
	subs     []subscription
	nextID   uint64
}

// New returns an empty Mediator.
func New[T any]() *Mediator[T] { return &Mediator[T]{} }

// Set writes value into the named storage, creating it on first use, and
// notifies the observers of name.
func (m *Mediator[T]) Set(name string, value T) {
	m.mu.Lock()
	if m.storages == nil {
		m.storages = make(map[string]*storage[T])
	}
	s, ok := m.storages[name]
	if !ok {
		s = &storage[T]{name: name, mediator: m}
		m.storages[name] = s
	}
	s.data = value
	m.mu.Unlock()

	s.notify()
}

// Get returns the value of the named storage and whether it exists.
func (m *Mediator[T]) Get(name string) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.storages[name]
	if !ok {
		var zero T
		return zero, false
	}
	return s.data, true
}

// Subscribe registers fn for changes of name. The returned function removes
// the subscription; calling it more than once is harmless.
func (m *Mediator[T]) Subscribe(name string, fn func()) (unsubscribe func()) {
	m.mu.Lock()
	m.nextID++
	id := m.nextID
	m.subs = append(m.subs, subscription{id: id, name: name, fn: fn})
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, s := range m.subs {
			if s.id == id {
				m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
				return
			}
		}
	}
}

// changed calls the observers of name on a snapshot of the subscriptions.
func (m *Mediator[T]) changed(name string) {
	m.mu.RLock()
	var fns []func()
	for _, s := range m.subs {
		if s.name == name {
			fns = append(fns, s.fn)
		}
	}
	m.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}
