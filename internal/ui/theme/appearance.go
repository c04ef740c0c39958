package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Appearance is the platform appearance preference API.
type Appearance interface {
	// SystemScheme reads the platform preference, ignoring any override.
	SystemScheme() ColorScheme
	// SetOverride pins the platform to scheme.
	SetOverride(scheme ColorScheme)
	// ClearOverride returns the platform to its own preference.
	ClearOverride()
}

// TerminalAppearance detects the terminal background through termenv and
// writes overrides to a lipgloss renderer.
type TerminalAppearance struct {
	renderer *lipgloss.Renderer
	output   *termenv.Output
}

// NewTerminalAppearance wraps renderer, or the default lipgloss renderer
// when nil.
func NewTerminalAppearance(renderer *lipgloss.Renderer) *TerminalAppearance {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	return &TerminalAppearance{renderer: renderer, output: termenv.DefaultOutput()}
}

// SystemScheme queries the terminal background color.
func (a *TerminalAppearance) SystemScheme() ColorScheme {
	if a.output.HasDarkBackground() {
		return SchemeDark
	}
	return SchemeLight
}

// SetOverride makes adaptive lipgloss colors follow scheme.
func (a *TerminalAppearance) SetOverride(scheme ColorScheme) {
	a.renderer.SetHasDarkBackground(scheme == SchemeDark)
}

// ClearOverride restores the detected background.
func (a *TerminalAppearance) ClearOverride() {
	a.renderer.SetHasDarkBackground(a.SystemScheme() == SchemeDark)
}

// StaticAppearance is an in-memory Appearance for headless use and tests.
type StaticAppearance struct {
	mu       sync.Mutex
	system   ColorScheme
	override *ColorScheme
}

// NewStaticAppearance reports system as the platform preference.
func NewStaticAppearance(system ColorScheme) *StaticAppearance {
	return &StaticAppearance{system: system}
}

// SystemScheme returns the simulated platform preference.
func (a *StaticAppearance) SystemScheme() ColorScheme {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.system
}

// SetSystem changes the simulated platform preference.
func (a *StaticAppearance) SetSystem(scheme ColorScheme) {
	a.mu.Lock()
	a.system = scheme
	a.mu.Unlock()
}

// SetOverride records the override.
func (a *StaticAppearance) SetOverride(scheme ColorScheme) {
	a.mu.Lock()
	a.override = &scheme
	a.mu.Unlock()
}

// ClearOverride drops the override.
func (a *StaticAppearance) ClearOverride() {
	a.mu.Lock()
	a.override = nil
	a.mu.Unlock()
}

// Override returns the recorded override, if any.
func (a *StaticAppearance) Override() (ColorScheme, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.override == nil {
		return SchemeLight, false
	}
	return *a.override, true
}
