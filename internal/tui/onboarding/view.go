package onboarding

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/vaultkit/internal/ui"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/components"
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

const (
	maxContentWidth = 64
	slideOffset     = 8
)

// View renders the current slide, the dots and the actions.
func (m *Model) View() string {
	ctx := m.env.RenderContext()
	theme := ctx.Theme
	slide := m.opts.Slides[m.index]

	width := maxContentWidth
	if m.size.Width > 0 {
		width = min(width, max(m.size.Width-4, 20))
	}

	content := components.VStack(
		components.SecondaryBadge(slide.Badge),
		components.TitleText(slide.Title),
		components.MutedText(slide.Body).WithWrap(width),
	).WithGap(1)

	offset := int((1 - m.transition.Value()) * slideOffset)
	slideView := lipgloss.NewStyle().PaddingLeft(max(offset, 0)).Render(content.ViewWithContext(ctx))

	body := components.VStack(
		ui.RenderFunc(func() string { return slideView }),
		ui.RenderFunc(func() string { return m.renderDots(theme) }),
		m.actions(),
		components.MutedText(hints),
	).WithGap(1)

	screen := components.NewScreen(body)
	screen.SetSize(m.size)
	return screen.ViewWithContext(ctx)
}

const hints = "←/→ browse • enter continue • s skip"

func (m *Model) renderDots(theme components.Theme) string {
	active := lipgloss.NewStyle().Foreground(theme.Color(uitheme.TokenPrimary))
	idle := lipgloss.NewStyle().Foreground(theme.Color(uitheme.TokenMutedForeground))
	dots := make([]string, len(m.opts.Slides))
	for i := range m.opts.Slides {
		if i == m.index {
			dots[i] = active.Render("●")
		} else {
			dots[i] = idle.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

func (m *Model) actions() ui.Renderable {
	primary := components.NewButton("Next")
	if m.Last() {
		primary = components.NewButton("Get started")
	}
	return components.HStack(
		components.GhostButton("Skip"),
		primary,
	).WithGap(1)
}
