package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	uikit "github.com/alexisbeaulieu97/vaultkit/internal/ui/components"
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

const defaultProgressWidth = 30

// Progress renders how far a multi-step flow has advanced.
type Progress struct {
	bar   progress.Model
	total int
}

// NewProgress creates a progress component for total steps, filled with the
// theme's primary color.
func NewProgress(total int, theme uikit.Theme) Progress {
	bar := progress.New(
		progress.WithSolidFill(string(theme.Color(uitheme.TokenPrimary))),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(theme.Color(uitheme.TokenMuted))
	bar.Width = defaultProgressWidth
	return Progress{bar: bar, total: total}
}

// WithWidth sets the bar width in cells.
func (p Progress) WithWidth(width int) Progress {
	if width > 0 {
		p.bar.Width = width
	}
	return p
}

// Ratio returns the filled fraction for step, capped at 1.
func (p Progress) Ratio(step int) float64 {
	if p.total <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1.0, float64(step)/float64(p.total)))
}

// View renders the step label followed by the bar.
func (p Progress) View(step int) string {
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Step %d of %d", step, p.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, "  ", p.bar.ViewAs(p.Ratio(step)))
}
