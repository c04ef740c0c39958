package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	uikit "github.com/alexisbeaulieu97/vaultkit/internal/ui/components"
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

// StepStatus is where a step sits relative to the current one.
type StepStatus int

const (
	StepPending StepStatus = iota
	StepCurrent
	StepDone
)

// StepEntry represents a single step for rendering.
type StepEntry struct {
	ID     string
	Title  string
	Status StepStatus
}

// StepList renders the ordered steps of a flow with their status.
type StepList struct {
	entries []StepEntry
}

// NewStepList builds the list for order. Steps before current are done.
// An unknown current leaves every step pending.
func NewStepList(order []string, titles map[string]string, current string) StepList {
	entries := make([]StepEntry, 0, len(order))
	seen := false
	for _, id := range order {
		title := titles[id]
		if title == "" {
			title = id
		}
		entries = append(entries, StepEntry{ID: id, Title: title})
		if id == current {
			seen = true
		}
	}
	if !seen {
		return StepList{entries: entries}
	}

	status := StepDone
	for i := range entries {
		if entries[i].ID == current {
			entries[i].Status = StepCurrent
			status = StepPending
			continue
		}
		entries[i].Status = status
	}
	return StepList{entries: entries}
}

// Entries returns the ordered step entries.
func (s StepList) Entries() []StepEntry {
	clone := make([]StepEntry, len(s.entries))
	copy(clone, s.entries)
	return clone
}

// View renders the list with the default theme.
func (s StepList) View() string {
	return s.ViewWithContext(uikit.DefaultContext())
}

// ViewWithContext renders one line per step.
func (s StepList) ViewWithContext(ctx uikit.RenderContext) string {
	theme := ctx.Theme
	lines := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		icon, token := StatusIcon(e.Status)
		style := lipgloss.NewStyle().Foreground(theme.Color(token))
		title := e.Title
		switch e.Status {
		case StepCurrent:
			title = lipgloss.NewStyle().Bold(true).Foreground(theme.Color(uitheme.TokenForeground)).Render(title)
		default:
			title = style.Render(title)
		}
		lines = append(lines, " "+style.Render(icon)+" "+title)
	}
	return strings.Join(lines, "\n")
}

// StatusIcon returns the glyph and color token for status.
func StatusIcon(status StepStatus) (string, uitheme.ColorToken) {
	switch status {
	case StepDone:
		return "✓", uitheme.TokenSuccess
	case StepCurrent:
		return "●", uitheme.TokenPrimary
	default:
		return "…", uitheme.TokenMutedForeground
	}
}
