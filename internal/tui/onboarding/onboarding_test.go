package onboarding

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vaultkit/internal/logger"
	"github.com/alexisbeaulieu97/vaultkit/internal/tui/router"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/lifecycle"
)

type recordingRouter struct {
	replaced []string
}

func (r *recordingRouter) Navigate(name string) tea.Cmd { return nil }
func (r *recordingRouter) Back() tea.Cmd                { return nil }
func (r *recordingRouter) CanGoBack() bool              { return false }

func (r *recordingRouter) Replace(name string) tea.Cmd {
	r.replaced = append(r.replaced, name)
	return func() tea.Msg { return router.NavigateMsg{Name: name, Replace: true} }
}

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, opts Options) (*Model, *recordingRouter, router.Env) {
	t.Helper()
	r := &recordingRouter{}
	env := router.Env{
		Router: r,
		Scope:  lifecycle.NewScope(),
		Sizes:  lifecycle.NewEmitter[lifecycle.Size](),
		Log:    logger.Nop(),
	}
	m := NewModel(env, opts)
	m.now = func() time.Time { return epoch }
	return m, r, env
}

func press(m *Model, s string) tea.Cmd {
	var msg tea.KeyMsg
	switch s {
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func TestCarouselKeyboardNavigation(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t, DefaultOptions())
	m.Init()
	require.Equal(t, 0, m.Index())

	press(m, "left")
	assert.Equal(t, 0, m.Index(), "first slide does not wrap backwards")

	press(m, "right")
	press(m, "right")
	assert.Equal(t, 2, m.Index())
	assert.True(t, m.Last())

	press(m, "right")
	assert.Equal(t, 2, m.Index(), "last slide does not wrap forwards")

	press(m, "h")
	assert.Equal(t, 1, m.Index())
}

func TestCarouselGetStartedReplacesScreen(t *testing.T) {
	t.Parallel()

	m, r, _ := newTestModel(t, DefaultOptions())
	m.Init()

	press(m, "enter")
	press(m, "enter")
	require.True(t, m.Last())
	assert.Empty(t, r.replaced)

	cmd := press(m, "enter")
	require.NotNil(t, cmd)
	assert.Equal(t, []string{"wallet"}, r.replaced)
	assert.Equal(t, router.NavigateMsg{Name: "wallet", Replace: true}, cmd())
	assert.False(t, m.Autoplaying())
}

func TestCarouselSkip(t *testing.T) {
	t.Parallel()

	m, r, _ := newTestModel(t, DefaultOptions())
	m.Init()

	press(m, "s")
	assert.Equal(t, []string{"wallet"}, r.replaced)
}

func TestCarouselAutoplayAdvancesOnWrap(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Autoplay = time.Second
	m, _, _ := newTestModel(t, opts)
	m.Init()
	require.True(t, m.Autoplaying())

	m.autoplay.Advance(epoch.Add(500 * time.Millisecond))
	assert.False(t, m.observeAutoplay())

	m.autoplay.Advance(epoch.Add(time.Second))
	require.True(t, m.observeAutoplay(), "the loop wrapped")

	m.goTo(m.index+1, false)
	assert.Equal(t, 1, m.Index())

	m.index = 2
	m.goTo(m.index+1, false)
	assert.Equal(t, 0, m.Index(), "autoplay wraps to the first slide")
}

func TestCarouselAutoplayDisabled(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Autoplay = 0
	m, _, _ := newTestModel(t, opts)
	m.Init()
	assert.False(t, m.Autoplaying())

	opts = DefaultOptions()
	opts.Slides = opts.Slides[:1]
	single, _, _ := newTestModel(t, opts)
	single.Init()
	assert.False(t, single.Autoplaying(), "a single slide has nothing to rotate")
}

func TestCarouselUnmountStopsTimelines(t *testing.T) {
	t.Parallel()

	m, _, env := newTestModel(t, DefaultOptions())
	m.Init()
	require.True(t, m.Autoplaying())

	env.Sizes.Emit(lifecycle.Size{Width: 90, Height: 30})
	assert.Equal(t, 90, m.size.Width)

	env.Scope.Close()
	assert.False(t, m.Autoplaying())
	assert.False(t, m.transition.Running())

	env.Sizes.Emit(lifecycle.Size{Width: 40, Height: 10})
	assert.Equal(t, 90, m.size.Width, "size updates stop after unmount")
}

func TestCarouselEmptySlidesFallBack(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t, Options{})
	assert.Len(t, m.Slides(), len(DefaultSlides()))
}

func TestCarouselView(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t, DefaultOptions())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.View()
	assert.Contains(t, view, "Your keys, your vault")
	assert.Contains(t, view, "Skip")
	assert.Contains(t, view, "Next")
	assert.Contains(t, view, "●")

	press(m, "right")
	press(m, "right")
	assert.Contains(t, m.View(), "Get started")
}

func TestCarouselWithinStack(t *testing.T) {
	t.Parallel()

	stack := router.NewStack(router.Env{Log: logger.Nop()}).
		Register(Name, New(DefaultOptions())).
		Register("wallet", func(env router.Env) router.Screen {
			return NewModel(env, Options{Slides: []Slide{{Title: "wallet"}}})
		})
	stack.Start(Name)
	carousel, ok := stack.Screen().(*Model)
	require.True(t, ok)
	require.True(t, carousel.Autoplaying())

	stack.Update(stack.Replace("wallet")())
	assert.Equal(t, "wallet", stack.Current())
	assert.False(t, carousel.Autoplaying(), "replacing the carousel stops its autoplay")
}
