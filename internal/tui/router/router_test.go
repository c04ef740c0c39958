package router

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vaultkit/internal/logger"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/animation"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/lifecycle"
)

type fakeScreen struct {
	name     string
	env      Env
	released *bool
	size     lifecycle.Size
	msgs     []tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd { return nil }

func (f *fakeScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	f.msgs = append(f.msgs, msg)
	return f, nil
}

func (f *fakeScreen) View() string { return f.name }

func fakeFactory(name string, mounted map[string]*fakeScreen) Factory {
	return func(env Env) Screen {
		released := false
		s := &fakeScreen{name: name, env: env, released: &released, size: env.Size}
		env.Scope.Defer(func() { released = true })
		env.Scope.Add(env.Sizes.Subscribe(lifecycle.Guard(env.Scope, func(sz lifecycle.Size) { s.size = sz })))
		mounted[name] = s
		return s
	}
}

func newTestStack(mounted map[string]*fakeScreen) *Stack {
	return NewStack(Env{Log: logger.Nop()}).
		Register("home", fakeFactory("home", mounted)).
		Register("detail", fakeFactory("detail", mounted))
}

func TestStackNavigation(t *testing.T) {
	t.Parallel()

	mounted := map[string]*fakeScreen{}
	s := newTestStack(mounted)
	s.Start("home")
	require.Equal(t, "home", s.Current())
	assert.False(t, s.CanGoBack())

	s.Update(s.Navigate("detail")())
	assert.Equal(t, "detail", s.Current())
	assert.Equal(t, 2, s.Depth())
	assert.Equal(t, "detail", s.View())
	assert.True(t, s.CanGoBack())

	s.Update(s.Back()())
	assert.Equal(t, "home", s.Current())
	assert.True(t, *mounted["detail"].released, "popping closes the screen scope")
	assert.False(t, *mounted["home"].released)
}

func TestStackReplaceClosesCurrentScope(t *testing.T) {
	t.Parallel()

	mounted := map[string]*fakeScreen{}
	s := newTestStack(mounted)
	s.Start("home")

	s.Update(s.Replace("detail")())
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, "detail", s.Current())
	assert.True(t, *mounted["home"].released)
}

func TestStackBackAtRootIsNoop(t *testing.T) {
	t.Parallel()

	mounted := map[string]*fakeScreen{}
	s := newTestStack(mounted)
	s.Start("home")

	assert.Nil(t, s.Update(BackMsg{}))
	assert.Equal(t, "home", s.Current())
	assert.False(t, *mounted["home"].released)
}

func TestStackUnknownScreenLogsWarning(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	s := NewStack(Env{Log: log})
	assert.Nil(t, s.Update(NavigateMsg{Name: "missing"}))
	assert.Empty(t, s.Current())
	assert.Empty(t, s.View())
	assert.Contains(t, buf.String(), "navigation to unknown screen ignored")
	assert.Contains(t, buf.String(), `"screen":"missing"`)
}

func TestStackBroadcastsSizes(t *testing.T) {
	t.Parallel()

	mounted := map[string]*fakeScreen{}
	s := newTestStack(mounted)
	s.Start("home")
	s.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	s.Update(NavigateMsg{Name: "detail"})

	assert.Equal(t, lifecycle.Size{Width: 80, Height: 24}, mounted["detail"].size, "new screens see the last size")

	s.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 100, mounted["home"].size.Width, "hidden screens stay subscribed")
	assert.Equal(t, 100, mounted["detail"].size.Width)

	s.Update(BackMsg{})
	s.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Equal(t, 100, mounted["detail"].size.Width, "unmounted screens stop listening")
	assert.Equal(t, 60, mounted["home"].size.Width)
}

func TestStackRoutesMessages(t *testing.T) {
	t.Parallel()

	mounted := map[string]*fakeScreen{}
	s := newTestStack(mounted)
	s.Start("home")
	s.Update(NavigateMsg{Name: "detail"})

	key := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}
	s.Update(key)
	s.Update(animation.FrameMsg{})

	assert.Equal(t, []tea.Msg{key, animation.FrameMsg{}}, mounted["detail"].msgs)
	assert.Equal(t, []tea.Msg{animation.FrameMsg{}}, mounted["home"].msgs, "frames reach hidden screens, keys do not")
}

func TestStackClose(t *testing.T) {
	t.Parallel()

	mounted := map[string]*fakeScreen{}
	s := newTestStack(mounted)
	s.Start("home")
	s.Update(NavigateMsg{Name: "detail"})
	s.Close()

	assert.Zero(t, s.Depth())
	assert.True(t, *mounted["home"].released)
	assert.True(t, *mounted["detail"].released)
}

func TestEnvRenderContextDefaults(t *testing.T) {
	t.Parallel()

	ctx := Env{}.RenderContext()
	assert.NotNil(t, ctx.Theme.Variants)
}
