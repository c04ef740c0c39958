package lifecycle

import "sync"

// ReleaseFunc adapts a function to Subscription.
type ReleaseFunc func()

// Release calls the function.
func (f ReleaseFunc) Release() {
	if f != nil {
		f()
	}
}

// Scope owns every subscription acquired while a component is mounted.
// Close releases them in reverse acquisition order, exactly once.
type Scope struct {
	mu     sync.Mutex
	subs   []Subscription
	closed bool
}

// NewScope creates an open scope.
func NewScope() *Scope {
	return &Scope{}
}

// Add takes ownership of sub. Adding to a closed scope releases sub at once.
func (s *Scope) Add(sub Subscription) {
	if sub == nil {
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		sub.Release()
		return
	}
	s.subs = append(s.subs, sub)
	s.mu.Unlock()
}

// Defer registers fn to run when the scope closes.
func (s *Scope) Defer(fn func()) {
	s.Add(ReleaseFunc(fn))
}

// Guard wraps fn so that it becomes a no-op once the scope is closed.
func Guard[T any](s *Scope, fn func(T)) func(T) {
	return func(value T) {
		if s.Closed() {
			return
		}
		fn(value)
	}
}

// Closed reports whether Close has run.
func (s *Scope) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close releases every owned subscription.
func (s *Scope) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()

	for i := len(subs) - 1; i >= 0; i-- {
		subs[i].Release()
	}
}
