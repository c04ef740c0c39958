// Package lifecycle provides scoped subscriptions so that listeners created
// by a mounted component are released when it unmounts.
package lifecycle

import (
	"sync"

	"github.com/google/uuid"
)

// Subscription is a handle to a registered listener.
type Subscription interface {
	// Release detaches the listener. It is safe to call more than once.
	Release()
}

// Size is a measured area in terminal cells.
type Size struct {
	Width  int
	Height int
}

// Emitter broadcasts values of type T to registered listeners.
type Emitter[T any] struct {
	mu        sync.Mutex
	listeners map[uuid.UUID]func(T)
	order     []uuid.UUID
}

// NewEmitter creates an empty emitter.
func NewEmitter[T any]() *Emitter[T] {
	return &Emitter[T]{listeners: make(map[uuid.UUID]func(T))}
}

// Subscribe registers fn and returns the handle that removes it.
func (e *Emitter[T]) Subscribe(fn func(T)) Subscription {
	id := uuid.New()

	e.mu.Lock()
	if e.listeners == nil {
		e.listeners = make(map[uuid.UUID]func(T))
	}
	e.listeners[id] = fn
	e.order = append(e.order, id)
	e.mu.Unlock()

	return &emitterSubscription[T]{emitter: e, id: id}
}

// Emit calls every listener registered at the time of the call, in
// subscription order. Listeners run outside the lock; one released while
// the emit is in progress is skipped.
func (e *Emitter[T]) Emit(value T) {
	e.mu.Lock()
	ids := append([]uuid.UUID(nil), e.order...)
	e.mu.Unlock()

	for _, id := range ids {
		e.mu.Lock()
		fn, ok := e.listeners[id]
		e.mu.Unlock()
		if ok {
			fn(value)
		}
	}
}

// Len reports the number of live listeners.
func (e *Emitter[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners)
}

func (e *Emitter[T]) remove(id uuid.UUID) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.listeners[id]; !ok {
		return
	}
	delete(e.listeners, id)
	for i, candidate := range e.order {
		if candidate == id {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

type emitterSubscription[T any] struct {
	emitter *Emitter[T]
	id      uuid.UUID
	once    sync.Once
}

func (s *emitterSubscription[T]) Release() {
	s.once.Do(func() {
		s.emitter.remove(s.id)
	})
}
