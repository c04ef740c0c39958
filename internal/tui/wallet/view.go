package wallet

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	tuicomponents "github.com/alexisbeaulieu97/vaultkit/internal/tui/components"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/components"
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

var stepTitles = map[string]string{
	"choose":  "Choose",
	"details": "Details",
	"review":  "Review",
	"done":    "Done",
}

var fieldTitles = map[string]string{
	"Name":     "Vault name",
	"Password": "Password",
	"Confirm":  "Confirm password",
	"Phrase":   "Recovery phrase",
}

// View renders the header, progress, step list and the active step.
func (m *Model) View() string {
	ctx := m.env.RenderContext()
	theme := ctx.Theme

	progress := tuicomponents.NewProgress(len(flowOrder), theme).View(m.StepNumber())
	steps := tuicomponents.NewStepList(flowOrder, stepTitles, m.step.flowID()).ViewWithContext(ctx)

	sidebar := lipgloss.JoinVertical(lipgloss.Left, progress, "", steps)
	body := components.VStack(
		components.NewHeader("Set up your vault").WithSubtitle(m.subtitle()),
		ui.RenderFunc(func() string { return sidebar }),
		ui.RenderFunc(func() string { return m.renderStep(ctx) }),
		components.MutedText(m.hints()),
	).WithGap(1)

	screen := components.NewScreen(body)
	screen.SetSize(m.size)
	return screen.ViewWithContext(ctx)
}

func (m *Model) subtitle() string {
	switch m.step {
	case StepCreate:
		return "Create a new vault"
	case StepImport:
		return "Import an existing recovery phrase"
	case StepReview:
		return "Check the details before continuing"
	case StepDone:
		return "Your vault is ready"
	default:
		return "How do you want to start?"
	}
}

func (m *Model) hints() string {
	switch m.step {
	case StepChoose:
		return "↑/↓ choose • enter continue • esc cancel"
	case StepCreate, StepImport:
		return "tab next field • enter continue • esc back"
	case StepReview:
		return "enter create vault • esc edit"
	default:
		return "enter exit"
	}
}

func (m *Model) renderStep(ctx components.RenderContext) string {
	switch m.step {
	case StepCreate, StepImport:
		return m.renderForm(ctx)
	case StepReview:
		return m.renderReview(ctx)
	case StepDone:
		return components.SuccessAlert(fmt.Sprintf("%q is unlocked and ready to use.", m.vault.Name)).
			WithTitle("All set").
			WithWidth(56).
			ViewWithContext(ctx)
	default:
		return m.kind.ViewWithContext(ctx)
	}
}

func (m *Model) renderForm(ctx components.RenderContext) string {
	theme := ctx.Theme
	label := components.TypographyStyle(theme, components.TypographyVariantMuted)
	errStyle := lipgloss.NewStyle().Foreground(theme.Color(uitheme.TokenDestructive))

	var rows []string
	for i, field := range m.fields {
		rows = append(rows, label.Render(fieldTitles[field]), m.inputs[i].View())
		if msg := m.issues[field]; msg != "" {
			rows = append(rows, errStyle.Render(msg))
		}
		rows = append(rows, "")
	}
	if m.ack != nil {
		rows = append(rows, m.ack.WithError(m.issues["Acknowledged"]).ViewWithContext(ctx))
	}
	return strings.TrimRight(lipgloss.JoinVertical(lipgloss.Left, rows...), "\n")
}

func (m *Model) renderReview(ctx components.RenderContext) string {
	source := "New vault"
	if m.vault.Imported {
		source = "Imported phrase"
	}
	summary := tuicomponents.NewSummary(tuicomponents.SummaryData{Rows: []tuicomponents.SummaryRow{
		{Label: "Name", Value: m.vault.Name},
		{Label: "Source", Value: source},
		{Label: "Recovery words", Value: fmt.Sprintf("%d", m.vault.Words)},
		{Label: "Vault ID", Value: m.vault.ID},
	}}).ViewWithContext(ctx)

	return components.NewCard(ui.RenderFunc(func() string { return summary })).
		WithTitle("Review your vault").
		WithDescription("These details are stored on this device only.").
		WithWidth(64).
		ViewWithContext(ctx)
}
