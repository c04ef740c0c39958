package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vaultkit/internal/tui"
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

func newScreenCmd(app *AppContext, name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScreen(cmd, app, name)
		},
	}
}

// newAppModel builds the root model for start from the loaded config.
func newAppModel(app *AppContext, start string, appearance uitheme.Appearance) tui.Model {
	log := app.screenLog()
	return tui.NewModel(tui.Options{
		Start:      start,
		Mode:       uitheme.NewModeController(appearance, app.Mode, log),
		Palettes:   app.Config.Palettes(),
		Onboarding: app.Config.OnboardingOptions(),
		Charts:     app.Config.ChartOptions(),
		Log:        log,
	})
}

func runScreen(cmd *cobra.Command, app *AppContext, start string) error {
	app.Log.WithFields(map[string]any{"screen": start, "mode": app.Mode.String()}).Debug("launching screen")

	model := newAppModel(app, start, uitheme.NewTerminalAppearance(nil))
	defer model.Close()

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run %s: %w", start, err)
	}
	return nil
}
