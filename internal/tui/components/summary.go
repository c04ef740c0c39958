package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	uikit "github.com/alexisbeaulieu97/vaultkit/internal/ui/components"
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

// SummaryRow is one labelled value.
type SummaryRow struct {
	Label string
	Value string
}

// SummaryData aggregates what a summary shows.
type SummaryData struct {
	Rows   []SummaryRow
	Issues []string
}

// Summary renders aligned label/value rows followed by any issues.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary without color.
func (s Summary) View() string {
	return s.render(func(_ uitheme.ColorToken, text string) string { return text })
}

// ViewWithContext renders labels muted and issues in the destructive color.
func (s Summary) ViewWithContext(ctx uikit.RenderContext) string {
	theme := ctx.Theme
	return s.render(func(token uitheme.ColorToken, text string) string {
		return lipgloss.NewStyle().Foreground(theme.Color(token)).Render(text)
	})
}

func (s Summary) render(paint func(uitheme.ColorToken, string) string) string {
	labelWidth := 0
	for _, row := range s.data.Rows {
		labelWidth = max(labelWidth, lipgloss.Width(row.Label))
	}

	var lines []string
	for _, row := range s.data.Rows {
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(row.Label))
		lines = append(lines, paint(uitheme.TokenMutedForeground, row.Label+pad)+"  "+row.Value)
	}

	if len(s.data.Issues) > 0 {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		for _, issue := range s.data.Issues {
			lines = append(lines, paint(uitheme.TokenDestructive, "✗ "+issue))
		}
	}

	return strings.Join(lines, "\n")
}
