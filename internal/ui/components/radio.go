package components

import (
	"github.com/charmbracelet/lipgloss"
)

// RadioOption is one choice in a RadioGroup.
type RadioOption struct {
	Value       string
	Label       string
	Description string
	Disabled    bool
}

// RadioGroup is a single-choice list of options with a keyboard cursor.
type RadioGroup struct {
	BaseComponent
	options   []RadioOption
	variant   RadioVariant
	disabled  bool
	errMsg    string
	cursor    int
	direction Direction
	value     sourceSlot[string]
	onChange  func(string)
}

// NewRadioGroup creates a group with no selection.
func NewRadioGroup(options ...RadioOption) *RadioGroup {
	return &RadioGroup{
		BaseComponent: NewBaseComponent(),
		options:       options,
		direction:     DirectionVertical,
	}
}

// View renders the group.
func (r *RadioGroup) View() string {
	return r.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the group with the given theme context.
func (r *RadioGroup) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	selected := r.value.get()

	rows := make([]string, 0, len(r.options))
	for i, opt := range r.options {
		indicator, label := toggleStyles(theme, r.variant, RadioVariantDefault, r.errMsg, r.disabled || opt.Disabled)
		mark := "○"
		if opt.Value == selected {
			mark = "◉"
		}
		if i == r.cursor && !r.disabled {
			label = label.Bold(true)
		}
		text := label.Render(opt.Label)
		if opt.Description != "" {
			text = lipgloss.JoinVertical(lipgloss.Left, text, TypographyStyle(theme, TypographyVariantMuted).Render(opt.Description))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, indicator.Render(mark), " ", text))
	}

	var body string
	if r.direction == DirectionHorizontal {
		body = lipgloss.JoinHorizontal(lipgloss.Top, spaced(rows, "  ")...)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, rows...)
	}
	return r.ComposeStyle(theme, lipgloss.NewStyle()).Render(withError(theme, body, r.errMsg))
}

func spaced(items []string, gap string) []string {
	out := make([]string, 0, len(items)*2)
	for i, item := range items {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, item)
	}
	return out
}

// Select chooses value. It reports false when the group or the option is
// disabled, or when value is not one of the options.
func (r *RadioGroup) Select(value string) bool {
	if r.disabled {
		return false
	}
	for i, opt := range r.options {
		if opt.Value != value {
			continue
		}
		if opt.Disabled {
			return false
		}
		r.cursor = i
		r.value.set(value)
		if r.onChange != nil {
			r.onChange(value)
		}
		return true
	}
	return false
}

// Next moves the cursor down, skipping disabled options.
func (r *RadioGroup) Next() {
	r.moveCursor(1)
}

// Prev moves the cursor up, skipping disabled options.
func (r *RadioGroup) Prev() {
	r.moveCursor(-1)
}

func (r *RadioGroup) moveCursor(step int) {
	n := len(r.options)
	if n == 0 {
		return
	}
	for i := 1; i <= n; i++ {
		idx := ((r.cursor+step*i)%n + n) % n
		if !r.options[idx].Disabled {
			r.cursor = idx
			return
		}
	}
}

// SelectCursor selects the option under the cursor.
func (r *RadioGroup) SelectCursor() bool {
	if r.cursor < 0 || r.cursor >= len(r.options) {
		return false
	}
	return r.Select(r.options[r.cursor].Value)
}

// Value returns the selected value, or "".
func (r *RadioGroup) Value() string {
	return r.value.get()
}

// Cursor returns the focused option index.
func (r *RadioGroup) Cursor() int {
	return r.cursor
}

// Options returns the group's options.
func (r *RadioGroup) Options() []RadioOption {
	return r.options
}

// WithValue seeds the internal selection.
func (r *RadioGroup) WithValue(value string) *RadioGroup {
	r.value.seed(value)
	for i, opt := range r.options {
		if opt.Value == value {
			r.cursor = i
		}
	}
	return r
}

// WithSource binds caller-owned state.
func (r *RadioGroup) WithSource(source ValueSource[string]) *RadioGroup {
	r.value.bind(source)
	return r
}

// OnChange sets the change callback.
func (r *RadioGroup) OnChange(fn func(string)) *RadioGroup {
	r.onChange = fn
	return r
}

// WithVariant sets the radio variant.
func (r *RadioGroup) WithVariant(variant RadioVariant) *RadioGroup {
	r.variant = variant
	return r
}

// WithDirection lays the options out in a row or a column.
func (r *RadioGroup) WithDirection(dir Direction) *RadioGroup {
	r.direction = dir
	return r
}

// WithDisabled sets the disabled state.
func (r *RadioGroup) WithDisabled(disabled bool) *RadioGroup {
	r.disabled = disabled
	return r
}

// WithError sets a validation message.
func (r *RadioGroup) WithError(msg string) *RadioGroup {
	r.errMsg = msg
	return r
}

// WithStyle sets the override style.
func (r *RadioGroup) WithStyle(style lipgloss.Style) *RadioGroup {
	r.SetStyle(style)
	return r
}

// WithAppliers applies theme-based style modifiers.
func (r *RadioGroup) WithAppliers(appliers ...StyleFunc) *RadioGroup {
	r.AddAppliers(appliers...)
	return r
}
