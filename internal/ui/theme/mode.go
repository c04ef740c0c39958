package theme

import (
	"sync"

	"github.com/alexisbeaulieu97/vaultkit/internal/logger"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/lifecycle"
)

// ModeController tracks the selected appearance mode and the scheme it
// resolves to. It is the only writer of the appearance override.
type ModeController struct {
	mu         sync.Mutex
	mode       Mode
	scheme     ColorScheme
	appearance Appearance
	listeners  *lifecycle.Emitter[ColorScheme]
	log        *logger.Logger
}

// NewModeController applies initial to appearance and returns the controller.
func NewModeController(appearance Appearance, initial Mode, log *logger.Logger) *ModeController {
	if appearance == nil {
		appearance = NewStaticAppearance(SchemeLight)
	}
	c := &ModeController{
		appearance: appearance,
		listeners:  lifecycle.NewEmitter[ColorScheme](),
		log:        log.WithComponent("mode"),
	}
	c.mu.Lock()
	c.applyLocked(initial)
	c.mu.Unlock()
	return c
}

// Mode returns the user-selected mode.
func (c *ModeController) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Scheme returns the resolved color scheme.
func (c *ModeController) Scheme() ColorScheme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scheme
}

// SetMode selects mode. Explicit modes pin the scheme; system clears the
// override and follows the platform.
func (c *ModeController) SetMode(mode Mode) {
	c.mu.Lock()
	prev := c.scheme
	c.applyLocked(mode)
	next := c.scheme
	c.mu.Unlock()

	c.notify(prev, next)
}

// Toggle advances light -> dark -> system -> light and returns the new mode.
func (c *ModeController) Toggle() Mode {
	c.mu.Lock()
	prev := c.scheme
	mode := c.mode.Next()
	c.applyLocked(mode)
	next := c.scheme
	c.mu.Unlock()

	c.notify(prev, next)
	return mode
}

// SystemChanged re-derives the scheme after the platform preference moved.
// Pinned modes ignore it.
func (c *ModeController) SystemChanged() {
	c.mu.Lock()
	if c.mode != ModeSystem {
		c.mu.Unlock()
		return
	}
	prev := c.scheme
	c.scheme = c.appearance.SystemScheme()
	next := c.scheme
	c.mu.Unlock()

	c.notify(prev, next)
}

// Subscribe registers fn for scheme changes.
func (c *ModeController) Subscribe(fn func(ColorScheme)) lifecycle.Subscription {
	return c.listeners.Subscribe(fn)
}

func (c *ModeController) applyLocked(mode Mode) {
	if mode != ModeLight && mode != ModeDark {
		mode = ModeSystem
	}
	c.mode = mode

	if scheme, pinned := mode.Pinned(); pinned {
		c.appearance.SetOverride(scheme)
		c.scheme = scheme
	} else {
		c.appearance.ClearOverride()
		c.scheme = c.appearance.SystemScheme()
	}

	c.log.WithFields(map[string]any{"mode": c.mode.String(), "scheme": c.scheme.String()}).Debug("appearance mode applied")
}

func (c *ModeController) notify(prev, next ColorScheme) {
	if prev == next {
		return
	}
	c.listeners.Emit(next)
}
