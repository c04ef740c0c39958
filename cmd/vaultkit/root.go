package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vaultkit/internal/tui/onboarding"
)

type rootFlags struct {
	configPath string
	mode       string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "vaultkit",
		Short:         "vaultkit is a themed terminal wallet onboarding and component gallery",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load(cmd, flags)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, start at the carousel.
			if len(args) == 0 {
				return runScreen(cmd, app, onboarding.Name)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a vaultkit YAML config")
	cmd.PersistentFlags().StringVar(&flags.mode, "mode", "", "Appearance mode: light, dark or system")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newScreenCmd(app, "gallery", "Browse components, controls and charts"))
	cmd.AddCommand(newScreenCmd(app, "onboarding", "Show the onboarding carousel"))
	cmd.AddCommand(newScreenCmd(app, "wallet", "Run the vault setup flow"))
	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newChartCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
