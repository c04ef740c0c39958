// Package tui hosts vaultkit's screens: a router stack, the dialog overlay
// and the appearance mode controller shared by every screen.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vaultkit/internal/logger"
	"github.com/alexisbeaulieu97/vaultkit/internal/tui/gallery"
	"github.com/alexisbeaulieu97/vaultkit/internal/tui/onboarding"
	"github.com/alexisbeaulieu97/vaultkit/internal/tui/overlay"
	"github.com/alexisbeaulieu97/vaultkit/internal/tui/router"
	"github.com/alexisbeaulieu97/vaultkit/internal/tui/wallet"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/chart"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/components"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

// Options configures the application model.
type Options struct {
	// Start is the first screen. It defaults to onboarding.
	Start      string
	Mode       *theme.ModeController
	Palettes   theme.Palettes
	Onboarding onboarding.Options
	Charts     chart.Options
	Log        *logger.Logger
}

// Model is the root Bubbletea model.
type Model struct {
	stack    *router.Stack
	overlay  *overlay.Overlay
	mode     *theme.ModeController
	resolver *theme.Resolver
	start    string
	width    int
	height   int
	quitting bool
	log      *logger.Logger
}

// NewModel wires the router, overlay and resolver and registers every
// screen.
func NewModel(opts Options) Model {
	if opts.Mode == nil {
		opts.Mode = theme.NewModeController(nil, theme.ModeSystem, opts.Log)
	}
	if opts.Palettes.Light == nil || opts.Palettes.Dark == nil {
		opts.Palettes = theme.DefaultPalettes()
	}
	if opts.Start == "" {
		opts.Start = onboarding.Name
	}
	if opts.Onboarding.Next == "" {
		opts.Onboarding.Next = wallet.Name
	}
	if opts.Charts == (chart.Options{}) {
		opts.Charts = chart.DefaultOptions()
	}

	m := Model{
		overlay:  overlay.New(opts.Log),
		mode:     opts.Mode,
		resolver: theme.NewResolver(opts.Palettes, opts.Mode),
		start:    opts.Start,
		log:      opts.Log.WithComponent("tui"),
	}

	resolver := m.resolver
	m.stack = router.NewStack(router.Env{
		Dialogs: m.overlay,
		Theme:   func() components.Theme { return components.ThemeFromResolver(resolver) },
		Mode:    opts.Mode,
		Log:     opts.Log,
	}).
		Register(onboarding.Name, onboarding.New(opts.Onboarding)).
		Register(wallet.Name, wallet.New()).
		Register(gallery.Name, gallery.New(gallery.Options{Charts: opts.Charts}))

	return m
}

// Init mounts the start screen.
func (m Model) Init() tea.Cmd {
	if !m.stack.Registered(m.start) {
		m.log.WithFields(map[string]any{"screen": m.start}).Warn("unknown start screen, using onboarding")
		return m.stack.Start(onboarding.Name)
	}
	return m.stack.Start(m.start)
}

// Current returns the visible screen name.
func (m Model) Current() string {
	return m.stack.Current()
}

// Theme returns the theme for the live scheme.
func (m Model) Theme() components.Theme {
	return components.ThemeFromResolver(m.resolver)
}

// Overlay exposes the dialog presenter.
func (m Model) Overlay() *overlay.Overlay {
	return m.overlay
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Close unmounts every screen. Call it after the program exits.
func (m Model) Close() {
	m.stack.Close()
}
