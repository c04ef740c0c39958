// Package overlay presents components.Dialog values as a modal layer over
// the active screen.
package overlay

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/vaultkit/internal/logger"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/components"
)

// ClosedMsg reports that a dialog was dismissed by pressing button Index.
type ClosedMsg struct {
	Dialog components.Dialog
	Index  int
}

// Overlay queues dialogs and shows them one at a time. It implements
// components.DialogPresenter.
type Overlay struct {
	mu     sync.Mutex
	queue  []components.Dialog
	active *components.DialogView
	width  int
	height int
	log    *logger.Logger
}

// New creates an empty overlay.
func New(log *logger.Logger) *Overlay {
	return &Overlay{log: log.WithComponent("dialog")}
}

// Present queues d. It is safe to call from commands.
func (o *Overlay) Present(d components.Dialog) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.queue = append(o.queue, d)
	o.log.WithFields(map[string]any{"title": d.Title, "buttons": len(d.Buttons), "queued": len(o.queue)}).Debug("dialog presented")
	if o.active == nil {
		o.showNextLocked()
	}
}

// Active reports whether a dialog is showing.
func (o *Overlay) Active() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.active != nil
}

// Pending returns the number of dialogs waiting behind the active one.
func (o *Overlay) Pending() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.queue)
}

// Current returns the active dialog.
func (o *Overlay) Current() (components.Dialog, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.active == nil {
		return components.Dialog{}, false
	}
	return o.active.Dialog(), true
}

// SetSize records the area the overlay centers in.
func (o *Overlay) SetSize(width, height int) {
	o.mu.Lock()
	o.width, o.height = width, height
	o.mu.Unlock()
}

// Update handles keys for the active dialog. Left, right and tab move the
// focus, enter presses the focused button and esc presses the cancel
// button when there is one. Button handlers run after the dialog closes, so
// they may present another dialog.
func (o *Overlay) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	o.mu.Lock()
	if o.active == nil {
		o.mu.Unlock()
		return nil
	}
	press := -1
	switch key.String() {
	case "left", "shift+tab", "h":
		o.active.Prev()
	case "right", "tab", "l":
		o.active.Next()
	case "enter", " ":
		press = o.active.Focus()
	case "esc":
		press = o.active.Dialog().CancelIndex()
	}
	if press < 0 {
		o.mu.Unlock()
		return nil
	}
	d := o.active.Dialog()
	o.active = nil
	o.showNextLocked()
	o.mu.Unlock()

	d.Press(press)
	o.log.WithFields(map[string]any{"title": d.Title, "button": press}).Debug("dialog closed")
	return func() tea.Msg { return ClosedMsg{Dialog: d, Index: press} }
}

// View renders the active dialog centered in the recorded area, or "".
func (o *Overlay) View(ctx components.RenderContext) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.active == nil {
		return ""
	}
	box := o.active.ViewWithContext(ctx)
	if o.width <= 0 || o.height <= 0 {
		return box
	}
	return lipgloss.Place(o.width, o.height, lipgloss.Center, lipgloss.Center, box)
}

func (o *Overlay) showNextLocked() {
	if len(o.queue) == 0 {
		return
	}
	next := o.queue[0]
	o.queue = o.queue[1:]
	o.active = components.NewDialogView(next)
}
