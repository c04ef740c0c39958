package components

// ValueSource is the single owner of a control's value. A control reads and
// writes through it and never keeps a second copy.
type ValueSource[T any] interface {
	Get() T
	Set(T)
}

type ownedValue[T any] struct {
	value T
}

func (o *ownedValue[T]) Get() T  { return o.value }
func (o *ownedValue[T]) Set(v T) { o.value = v }

type externalValue[T any] struct {
	get func() T
	set func(T)
}

func (e externalValue[T]) Get() T { return e.get() }

func (e externalValue[T]) Set(v T) {
	if e.set != nil {
		e.set(v)
	}
}

// Controlled adapts caller-owned state. get is the sole source of truth;
// set receives every requested change and may ignore it.
func Controlled[T any](get func() T, set func(T)) ValueSource[T] {
	if get == nil {
		return nil
	}
	return externalValue[T]{get: get, set: set}
}

// ResolveSource returns external when it is non-nil, otherwise a fresh
// internally owned value seeded with initial.
func ResolveSource[T any](external ValueSource[T], initial T) ValueSource[T] {
	if external != nil {
		return external
	}
	return &ownedValue[T]{value: initial}
}

// sourceSlot defers resolution to first use so builder calls can supply
// either an initial value or an external source. Once resolved it is fixed.
type sourceSlot[T any] struct {
	external ValueSource[T]
	initial  T
	resolved ValueSource[T]
}

func (s *sourceSlot[T]) source() ValueSource[T] {
	if s.resolved == nil {
		s.resolved = ResolveSource(s.external, s.initial)
	}
	return s.resolved
}

func (s *sourceSlot[T]) get() T  { return s.source().Get() }
func (s *sourceSlot[T]) set(v T) { s.source().Set(v) }

func (s *sourceSlot[T]) bind(external ValueSource[T]) {
	if s.resolved == nil {
		s.external = external
	}
}

func (s *sourceSlot[T]) seed(initial T) {
	if s.resolved == nil {
		s.initial = initial
	}
}

func (s *sourceSlot[T]) controlled() bool {
	return s.external != nil
}
