package lifecycle

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitterDeliversInSubscriptionOrder(t *testing.T) {
	t.Parallel()

	emitter := NewEmitter[int]()
	var got []string

	emitter.Subscribe(func(v int) { got = append(got, "first") })
	emitter.Subscribe(func(v int) { got = append(got, "second") })
	emitter.Emit(1)

	assert.Equal(t, []string{"first", "second"}, got)
	assert.Equal(t, 2, emitter.Len())
}

func TestReleasedListenerNeverFires(t *testing.T) {
	t.Parallel()

	emitter := NewEmitter[Size]()
	calls := 0
	sub := emitter.Subscribe(func(Size) { calls++ })

	emitter.Emit(Size{Width: 80})
	sub.Release()
	sub.Release()
	emitter.Emit(Size{Width: 120})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, emitter.Len())
}

func TestListenerReleasedDuringEmitIsSkipped(t *testing.T) {
	t.Parallel()

	emitter := NewEmitter[int]()
	var second Subscription
	fired := false
	emitter.Subscribe(func(int) { second.Release() })
	second = emitter.Subscribe(func(int) { fired = true })

	emitter.Emit(1)
	assert.False(t, fired, "a listener released by an earlier one does not fire")
	assert.Equal(t, 1, emitter.Len())
}

func TestScopeReleasesInReverseOrder(t *testing.T) {
	t.Parallel()

	scope := NewScope()
	var order []int
	scope.Defer(func() { order = append(order, 1) })
	scope.Defer(func() { order = append(order, 2) })

	scope.Close()
	scope.Close()

	assert.Equal(t, []int{2, 1}, order)
	assert.True(t, scope.Closed())
}

func TestScopeAddAfterCloseReleasesImmediately(t *testing.T) {
	t.Parallel()

	scope := NewScope()
	scope.Close()

	released := false
	scope.Defer(func() { released = true })
	assert.True(t, released)
}

func TestScopeOwnsEmitterSubscriptions(t *testing.T) {
	t.Parallel()

	emitter := NewEmitter[Size]()
	scope := NewScope()

	var widths []int
	scope.Add(emitter.Subscribe(func(s Size) { widths = append(widths, s.Width) }))
	emitter.Emit(Size{Width: 40})

	scope.Close()
	emitter.Emit(Size{Width: 100})

	require.Equal(t, []int{40}, widths)
	require.Equal(t, 0, emitter.Len())
}

func TestGuardSuppressesCallbacksAfterClose(t *testing.T) {
	t.Parallel()

	scope := NewScope()
	calls := 0
	fn := Guard(scope, func(int) { calls++ })

	fn(1)
	scope.Close()
	fn(2)

	assert.Equal(t, 1, calls)
}

func TestEmitterConcurrentSubscribe(t *testing.T) {
	t.Parallel()

	emitter := NewEmitter[int]()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub := emitter.Subscribe(func(int) {})
			emitter.Emit(1)
			sub.Release()
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, emitter.Len())
}
