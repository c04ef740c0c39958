package tui

import (
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/components"
)

// View renders the visible screen. While a dialog is active it replaces
// the screen, centred in the window.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	ctx := components.NewRenderContext(m.Theme())
	if m.overlay.Active() {
		return m.overlay.View(ctx)
	}
	return m.stack.View()
}
