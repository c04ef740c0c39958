package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
	"github.com/alexisbeaulieu97/vaultkit/pkg/diff"
)

func newThemeCmd(app *AppContext) *cobra.Command {
	var (
		schemeName string
		showDiff   bool
	)

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Print the color tokens of a scheme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme, err := resolveScheme(app, schemeName)
			if err != nil {
				return err
			}
			palette := app.Config.Palettes().For(scheme)

			if showDiff {
				builtIn := paletteListing(uitheme.DefaultPalettes().For(scheme))
				changes := diff.Unified(builtIn, paletteListing(palette), "built-in "+scheme.String(), "configured "+scheme.String())
				if changes == "" {
					changes = fmt.Sprintf("No overrides for the %s scheme.\n", scheme)
				}
				_, err := fmt.Fprint(cmd.OutOrStdout(), changes)
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Scheme: %s\n\n", scheme)
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "TOKEN\tCOLOR\tSWATCH")
			for _, token := range uitheme.AllTokens() {
				color := palette[token]
				swatch := lipgloss.NewStyle().Background(lipgloss.Color(color)).Render("    ")
				fmt.Fprintf(writer, "%s\t%s\t%s\n", token, color, swatch)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().BoolVar(&showDiff, "diff", false, "Show how the config changes the built-in palette")
	cmd.Flags().StringVar(&schemeName, "scheme", "", "Scheme to print: light or dark (defaults to the active mode)")
	return cmd
}

// paletteListing writes one "token color" line per token in stable order.
func paletteListing(palette uitheme.Palette) string {
	var b strings.Builder
	for _, token := range uitheme.AllTokens() {
		fmt.Fprintf(&b, "%s %s\n", token, palette[token])
	}
	return b.String()
}

// resolveScheme parses name, or resolves the configured mode against the
// terminal when name is empty.
func resolveScheme(app *AppContext, name string) (uitheme.ColorScheme, error) {
	if name != "" {
		return uitheme.ParseScheme(name)
	}
	mode := uitheme.NewModeController(uitheme.NewTerminalAppearance(nil), app.Mode, app.Log)
	return mode.Scheme(), nil
}
