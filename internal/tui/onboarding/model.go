// Package onboarding is the first-run carousel that introduces the vault
// and hands off to wallet setup.
package onboarding

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vaultkit/internal/tui/router"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/animation"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/lifecycle"
)

// Name is the route the screen is registered under.
const Name = "onboarding"

// Slide is one carousel page.
type Slide struct {
	Badge string `yaml:"badge"`
	Title string `yaml:"title" validate:"required"`
	Body  string `yaml:"body"`
}

// Options configures the carousel.
type Options struct {
	Slides []Slide
	// Autoplay is the time each slide stays up. Zero disables autoplay.
	Autoplay   time.Duration
	Transition time.Duration
	// Next is the route "Get started" replaces the carousel with.
	Next string
}

// DefaultSlides returns the built-in introduction.
func DefaultSlides() []Slide {
	return []Slide{
		{Badge: "Welcome", Title: "Your keys, your vault", Body: "Vaultkit keeps your recovery phrase encrypted on this device. Nothing leaves it unless you say so."},
		{Badge: "Security", Title: "Locked by default", Body: "Every session starts locked. Unlock with your password and the vault seals itself again when you leave."},
		{Badge: "Portfolio", Title: "Know where you stand", Body: "Balances and price history render right in the terminal, in light or dark, following your system."},
	}
}

// DefaultOptions returns five second autoplay into wallet setup.
func DefaultOptions() Options {
	return Options{
		Slides:     DefaultSlides(),
		Autoplay:   5 * time.Second,
		Transition: 300 * time.Millisecond,
		Next:       "wallet",
	}
}

// Model is the carousel screen.
type Model struct {
	env        router.Env
	opts       Options
	index      int
	autoplay   *animation.Timeline
	transition *animation.Timeline
	lastTick   float64
	size       lifecycle.Size
	now        func() time.Time
}

// New returns the factory registered with the router.
func New(opts Options) router.Factory {
	return func(env router.Env) router.Screen {
		return NewModel(env, opts)
	}
}

// NewModel mounts the carousel in env. Both timelines stop when the screen
// scope closes.
func NewModel(env router.Env, opts Options) *Model {
	if len(opts.Slides) == 0 {
		opts.Slides = DefaultSlides()
	}
	m := &Model{
		env:        env,
		opts:       opts,
		autoplay:   animation.NewTimeline(opts.Autoplay, animation.EasingLinear),
		transition: animation.NewTimeline(opts.Transition, animation.EasingSpring),
		size:       env.Size,
		now:        time.Now,
	}

	if env.Scope != nil {
		env.Scope.Defer(func() {
			m.autoplay.Stop()
			m.transition.Stop()
		})
		if env.Sizes != nil {
			env.Scope.Add(env.Sizes.Subscribe(lifecycle.Guard(env.Scope, func(size lifecycle.Size) {
				m.size = size
			})))
		}
	}
	return m
}

// Init starts autoplay and the first slide's entrance.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.startAutoplay(), m.transition.Restart(m.now()))
}

// Index returns the visible slide.
func (m *Model) Index() int {
	return m.index
}

// Slides returns the configured slides.
func (m *Model) Slides() []Slide {
	return m.opts.Slides
}

// Last reports whether the visible slide is the final one.
func (m *Model) Last() bool {
	return m.index == len(m.opts.Slides)-1
}

// Autoplaying reports whether the autoplay timeline is running.
func (m *Model) Autoplaying() bool {
	return m.autoplay.Running()
}

// TransitionProgress returns the entrance progress of the visible slide.
func (m *Model) TransitionProgress() float64 {
	return m.transition.Value()
}

func (m *Model) startAutoplay() tea.Cmd {
	if m.opts.Autoplay <= 0 || len(m.opts.Slides) < 2 {
		return nil
	}
	m.lastTick = 0
	return m.autoplay.Loop(m.now())
}

// observeAutoplay reports whether the autoplay loop wrapped since the last
// observation. A looping timeline drops back to 0 when it wraps.
func (m *Model) observeAutoplay() bool {
	v := m.autoplay.Value()
	wrapped := v < m.lastTick
	m.lastTick = v
	return wrapped
}

func (m *Model) goTo(index int, manual bool) tea.Cmd {
	n := len(m.opts.Slides)
	index = (index%n + n) % n
	if index == m.index {
		return nil
	}
	m.index = index

	cmds := []tea.Cmd{m.transition.Restart(m.now())}
	if manual {
		cmds = append(cmds, m.startAutoplay())
	}
	return tea.Batch(cmds...)
}

func (m *Model) getStarted() tea.Cmd {
	m.autoplay.Stop()
	m.transition.Stop()
	if m.env.Router == nil || m.opts.Next == "" {
		return tea.Quit
	}
	m.env.Log.WithFields(map[string]any{"slide": m.index, "next": m.opts.Next}).Debug("onboarding finished")
	return m.env.Router.Replace(m.opts.Next)
}
