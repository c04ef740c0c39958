package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// DialogButtonRole styles a dialog button.
type DialogButtonRole int

const (
	DialogButtonDefault DialogButtonRole = iota
	DialogButtonCancel
	DialogButtonDestructive
)

// MaxDialogButtons is the most buttons a dialog shows.
const MaxDialogButtons = 3

// DialogButton is one labelled dialog action.
type DialogButton struct {
	Label   string
	Role    DialogButtonRole
	OnPress func()
}

// Dialog is a modal with a title, a message and one to three buttons.
type Dialog struct {
	Title   string
	Message string
	Buttons []DialogButton
}

// NewDialog assembles a dialog. With no buttons a single "OK" is added;
// buttons past the third are dropped.
func NewDialog(title, message string, buttons ...DialogButton) Dialog {
	switch {
	case len(buttons) == 0:
		buttons = []DialogButton{{Label: "OK"}}
	case len(buttons) > MaxDialogButtons:
		buttons = buttons[:MaxDialogButtons]
	}
	out := make([]DialogButton, len(buttons))
	copy(out, buttons)
	return Dialog{Title: title, Message: message, Buttons: out}
}

// ConfirmDialog builds the common cancel plus destructive confirmation.
func ConfirmDialog(title, message, confirm string, onConfirm func()) Dialog {
	return NewDialog(title, message,
		DialogButton{Label: "Cancel", Role: DialogButtonCancel},
		DialogButton{Label: confirm, Role: DialogButtonDestructive, OnPress: onConfirm},
	)
}

// Press runs the handler of button i and reports whether one existed.
func (d Dialog) Press(i int) bool {
	if i < 0 || i >= len(d.Buttons) {
		return false
	}
	if fn := d.Buttons[i].OnPress; fn != nil {
		fn()
	}
	return true
}

// CancelIndex returns the index of the cancel button, or -1.
func (d Dialog) CancelIndex() int {
	for i, b := range d.Buttons {
		if b.Role == DialogButtonCancel {
			return i
		}
	}
	return -1
}

// DialogPresenter shows dialogs. The tui overlay implements it; tests use
// a recorder.
type DialogPresenter interface {
	Present(d Dialog)
}

// DialogPresenterFunc adapts a function to DialogPresenter.
type DialogPresenterFunc func(Dialog)

// Present calls f(d).
func (f DialogPresenterFunc) Present(d Dialog) {
	f(d)
}

// ShowDialog assembles a dialog and hands it to p.
func ShowDialog(p DialogPresenter, title, message string, buttons ...DialogButton) Dialog {
	d := NewDialog(title, message, buttons...)
	if p != nil {
		p.Present(d)
	}
	return d
}

const defaultDialogWidth = 48

// DialogView renders a Dialog as a popover card with a focused button.
type DialogView struct {
	BaseComponent
	dialog Dialog
	focus  int
	width  int
}

// NewDialogView creates a view focused on the last button.
func NewDialogView(d Dialog) *DialogView {
	return &DialogView{
		BaseComponent: NewBaseComponent(),
		dialog:        d,
		focus:         len(d.Buttons) - 1,
		width:         defaultDialogWidth,
	}
}

// Dialog returns the rendered dialog.
func (v *DialogView) Dialog() Dialog {
	return v.dialog
}

// Focus returns the focused button index.
func (v *DialogView) Focus() int {
	return v.focus
}

// Next focuses the next button, wrapping.
func (v *DialogView) Next() {
	if n := len(v.dialog.Buttons); n > 0 {
		v.focus = (v.focus + 1) % n
	}
}

// Prev focuses the previous button, wrapping.
func (v *DialogView) Prev() {
	if n := len(v.dialog.Buttons); n > 0 {
		v.focus = (v.focus - 1 + n) % n
	}
}

// PressFocused presses the focused button.
func (v *DialogView) PressFocused() bool {
	return v.dialog.Press(v.focus)
}

// WithWidth sets the outer width.
func (v *DialogView) WithWidth(width int) *DialogView {
	if width > 0 {
		v.width = width
	}
	return v
}

// View renders the dialog.
func (v *DialogView) View() string {
	return v.ViewWithContext(DefaultContext())
}

// ViewWithContext renders title, wrapped message and the button row.
func (v *DialogView) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	frame := NewCompositeStrategy(PopoverBaseStyle()...).Apply(lipgloss.NewStyle().Padding(0, 1), theme)
	frame = v.ComposeStyle(theme, frame)
	inner := v.width - frame.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}

	buttons := make([]string, 0, len(v.dialog.Buttons))
	for i, b := range v.dialog.Buttons {
		buttons = append(buttons, dialogButton(b, i == v.focus).ViewWithContext(ctx))
	}

	rows := []string{
		TypographyStyle(theme, TypographyVariantTitle).Render(v.dialog.Title),
	}
	if v.dialog.Message != "" {
		rows = append(rows, "", TypographyStyle(theme, TypographyVariantMuted).Render(wordwrap.String(v.dialog.Message, inner)))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, spaced(buttons, " ")...)
	rows = append(rows, "", lipgloss.PlaceHorizontal(inner, lipgloss.Right, row))

	return frame.Width(inner + frame.GetHorizontalPadding()).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func dialogButton(b DialogButton, focused bool) *Button {
	btn := NewButton(b.Label).WithSize(ButtonSizeSmall).WithActive(focused)
	switch b.Role {
	case DialogButtonCancel:
		btn.WithVariant(ButtonVariantGhost)
	case DialogButtonDestructive:
		btn.WithVariant(ButtonVariantDestructive)
	}
	if focused {
		btn.WithAppliers(Underline(true))
	}
	return btn
}
