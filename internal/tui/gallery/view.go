package gallery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/vaultkit/internal/ui"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/components"
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

// View renders the tab bar and the visible section.
func (m *Model) View() string {
	ctx := m.env.RenderContext()

	var section ui.Renderable
	switch m.section {
	case SectionControls:
		section = m.controls()
	case SectionCharts:
		section = m.chartSection()
	default:
		section = m.scroll
		if !m.layoutCatalogue() {
			section = catalogue()
		}
	}

	body := components.VStack(
		ui.RenderFunc(func() string { return m.renderTabs(ctx.Theme) }),
		section,
		components.MutedText(m.hints()),
	).WithGap(1)

	screen := components.NewScreen(body)
	screen.SetSize(m.size)
	return screen.ViewWithContext(ctx)
}

func (m *Model) renderTabs(theme components.Theme) string {
	tabs := make([]string, 0, sectionCount)
	for s := Section(0); s < sectionCount; s++ {
		btn := components.GhostButton(s.String()).WithSize(components.ButtonSizeSmall)
		if s == m.section {
			btn = components.NewButton(s.String()).WithSize(components.ButtonSizeSmall).WithActive(true)
		}
		tabs = append(tabs, btn.ViewWithContext(components.NewRenderContext(theme)))
	}

	mode := "system"
	if m.env.Mode != nil {
		mode = m.env.Mode.Mode().String()
	}
	badge := components.OutlineBadge(fmt.Sprintf("%s · %s", mode, m.scheme)).ViewWithContext(components.NewRenderContext(theme))
	return lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(tabs, " "), "   ", badge)
}

func (m *Model) hints() string {
	common := "tab section • t theme • q quit"
	switch m.section {
	case SectionControls:
		return "←/→ focus • enter open/toggle • " + common
	case SectionCharts:
		return "←/→ chart • r replay • " + common
	default:
		if m.layoutCatalogue() && !(m.scroll.Offset() == 0 && m.scroll.AtBottom()) {
			return fmt.Sprintf("↑/↓ scroll %3.0f%% • ", m.scroll.ScrollPercent()*100) + common
		}
		return common
	}
}

func catalogue() ui.Renderable {
	buttons := components.HStack(
		components.NewButton("Send"),
		components.SecondaryButton("Receive"),
		components.OutlineButton("Swap"),
		components.GhostButton("History"),
		components.DestructiveButton("Lock"),
		components.LinkButton("Docs"),
	).WithGap(1)

	badges := components.HStack(
		components.NewBadge("Default"),
		components.SecondaryBadge("Secondary"),
		components.SuccessBadge("Synced"),
		components.WarningBadge("Pending"),
		components.DestructiveBadge("Failed"),
		components.OutlineBadge("Outline"),
		components.InfoBadge("Info"),
	).WithGap(1)

	avatars := components.HStack(
		components.NewAvatar("Ada Lovelace"),
		components.NewAvatar("Satoshi"),
		components.NewAvatar(""),
	).WithGap(1)

	card := components.NewCard(
		components.NewText("0.4821 BTC").WithToken(uitheme.TokenCardForeground),
		components.MutedText("≈ 31,204.18 USD"),
	).WithTitle("Savings").WithDescription("Main vault").WithWidth(36)

	typography := components.NewView(
		components.HStack(
			components.TitleText("Title"),
			components.EmphasisText("Emphasis"),
			components.BoldText("Bold"),
			components.CodeText("seed --words 24"),
		).WithGap(2),
	).WithBackground(uitheme.TokenMuted).WithAppliers(components.PaddingX(components.SpacingSizeSmall))

	alerts := components.VStack(
		components.InfoAlert("Backups are encrypted with your password.").WithTitle("Heads up").WithWidth(60),
		components.WarningAlert("Your recovery phrase has not been verified yet.").WithTitle("Verify backup").WithWidth(60),
	).WithGap(1)

	return components.VStack(
		components.NewHeader("Buttons").WithLevel(2), buttons,
		components.NewHeader("Badges").WithLevel(2), badges,
		components.NewHeader("Avatars").WithLevel(2), avatars,
		components.NewHeader("Card").WithLevel(2), card,
		components.NewHeader("Typography").WithLevel(2), typography,
		components.NewHeader("Alerts").WithLevel(2), alerts,
	)
}

func (m *Model) controls() ui.Renderable {
	label := func(c Control, text string) ui.Renderable {
		t := components.MutedText(text)
		if m.control == c {
			t = components.NewText("› " + text).WithToken(uitheme.TokenPrimary)
		}
		return t
	}

	selected := strings.Join(m.combobox.Values(), ", ")
	if selected == "" {
		selected = "none"
	}

	return components.VStack(
		label(ControlCombobox, "Assets"),
		m.combobox,
		components.MutedText("Selected: "+selected),
		label(ControlAccordion, "FAQ"),
		m.accordion,
		label(ControlSwitch, "Preferences"),
		m.toggle,
	).WithGap(1)
}

func (m *Model) chartSection() ui.Renderable {
	c := m.charts[m.current]
	return components.NewPanel(c.chart).
		WithTitle(fmt.Sprintf("%d/%d %s", m.current+1, len(m.charts), c.name)).
		WithAccent(uitheme.TokenRing)
}
