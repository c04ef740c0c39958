// Package router moves between full-screen views by name. Each mounted
// screen owns a lifecycle scope that is closed when the screen is popped or
// replaced, so subscriptions it acquired never outlive it.
package router

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vaultkit/internal/logger"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/animation"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/components"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/lifecycle"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

// Screen is a mounted view. It mirrors tea.Model but returns itself as a
// Screen so the stack keeps its concrete type.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View() string
}

// Router navigates between registered screens.
type Router interface {
	// Navigate pushes the named screen.
	Navigate(name string) tea.Cmd
	// Replace swaps the current screen for the named one.
	Replace(name string) tea.Cmd
	// Back pops the current screen. At the root it does nothing.
	Back() tea.Cmd
	// CanGoBack reports whether Back would pop anything.
	CanGoBack() bool
}

// Env is what a screen receives when it is mounted.
type Env struct {
	Router  Router
	Scope   *lifecycle.Scope
	Sizes   *lifecycle.Emitter[lifecycle.Size]
	Size    lifecycle.Size
	Dialogs components.DialogPresenter
	Theme   func() components.Theme
	Mode    *theme.ModeController
	Log     *logger.Logger
}

// RenderContext returns a render context for the live theme.
func (e Env) RenderContext() components.RenderContext {
	if e.Theme == nil {
		return components.DefaultContext()
	}
	return components.NewRenderContext(e.Theme())
}

// Factory builds a screen for env.
type Factory func(env Env) Screen

type entry struct {
	name   string
	screen Screen
	scope  *lifecycle.Scope
}

// Stack is the Router used by the application. It is driven by the root
// model's Update loop and is not safe for concurrent use.
type Stack struct {
	env       Env
	factories map[string]Factory
	entries   []entry
	size      lifecycle.Size
	log       *logger.Logger
}

// NewStack creates an empty stack. env is the template handed to every
// screen; Router, Scope and Size are filled in per mount.
func NewStack(env Env) *Stack {
	if env.Sizes == nil {
		env.Sizes = lifecycle.NewEmitter[lifecycle.Size]()
	}
	s := &Stack{
		env:       env,
		factories: make(map[string]Factory),
		log:       env.Log.WithComponent("router"),
	}
	s.env.Router = s
	return s
}

// Register makes name navigable.
func (s *Stack) Register(name string, factory Factory) *Stack {
	s.factories[name] = factory
	return s
}

// Registered reports whether name has a factory.
func (s *Stack) Registered(name string) bool {
	_, ok := s.factories[name]
	return ok
}

// Start mounts the root screen synchronously and returns its Init command.
func (s *Stack) Start(name string) tea.Cmd {
	return s.mount(name, false)
}

// Navigate implements Router.
func (s *Stack) Navigate(name string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Name: name} }
}

// Replace implements Router.
func (s *Stack) Replace(name string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Name: name, Replace: true} }
}

// Back implements Router.
func (s *Stack) Back() tea.Cmd {
	return func() tea.Msg { return BackMsg{} }
}

// CanGoBack implements Router.
func (s *Stack) CanGoBack() bool {
	return len(s.entries) > 1
}

// Depth returns the number of mounted screens.
func (s *Stack) Depth() int {
	return len(s.entries)
}

// Current returns the name of the visible screen, or "".
func (s *Stack) Current() string {
	if len(s.entries) == 0 {
		return ""
	}
	return s.entries[len(s.entries)-1].name
}

// Screen returns the visible screen, or nil.
func (s *Stack) Screen() Screen {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1].screen
}

// Update routes msg. Navigation messages change the stack, window sizes are
// broadcast to every mounted screen, animation frames reach every mounted
// screen and everything else goes to the visible one.
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NavigateMsg:
		return s.mount(msg.Name, msg.Replace)
	case BackMsg:
		return s.pop()
	case tea.WindowSizeMsg:
		s.size = lifecycle.Size{Width: msg.Width, Height: msg.Height}
		s.env.Sizes.Emit(s.size)
		return s.forward(msg)
	case animation.FrameMsg:
		cmds := make([]tea.Cmd, 0, len(s.entries))
		for i := range s.entries {
			var cmd tea.Cmd
			s.entries[i].screen, cmd = s.entries[i].screen.Update(msg)
			cmds = append(cmds, cmd)
		}
		return tea.Batch(cmds...)
	}
	return s.forward(msg)
}

// View renders the visible screen.
func (s *Stack) View() string {
	if screen := s.Screen(); screen != nil {
		return screen.View()
	}
	return ""
}

// Close unmounts every screen, top first.
func (s *Stack) Close() {
	for len(s.entries) > 0 {
		s.unmountTop()
	}
}

func (s *Stack) forward(msg tea.Msg) tea.Cmd {
	if len(s.entries) == 0 {
		return nil
	}
	top := &s.entries[len(s.entries)-1]
	var cmd tea.Cmd
	top.screen, cmd = top.screen.Update(msg)
	return cmd
}

func (s *Stack) mount(name string, replace bool) tea.Cmd {
	factory, ok := s.factories[name]
	if !ok {
		s.log.WithFields(map[string]any{"screen": name}).Warn("navigation to unknown screen ignored")
		return nil
	}

	if replace && len(s.entries) > 0 {
		s.unmountTop()
	}

	env := s.env
	env.Scope = lifecycle.NewScope()
	env.Size = s.size
	env.Log = s.env.Log.WithComponent(name)
	screen := factory(env)
	s.entries = append(s.entries, entry{name: name, screen: screen, scope: env.Scope})

	s.log.WithFields(map[string]any{"screen": name, "replace": replace, "depth": len(s.entries)}).Debug("screen mounted")
	return screen.Init()
}

func (s *Stack) pop() tea.Cmd {
	if len(s.entries) <= 1 {
		s.log.Debug("back at root ignored")
		return nil
	}
	s.unmountTop()
	return nil
}

func (s *Stack) unmountTop() {
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	top.scope.Close()
	s.log.WithFields(map[string]any{"screen": top.name}).Debug("screen unmounted")
}
