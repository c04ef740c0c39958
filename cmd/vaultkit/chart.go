package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/vaultkit/internal/ui/chart"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/components"
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

const fallbackWidth = 80

// staticChart is what the chart command needs from every chart type.
type staticChart interface {
	SetWidth(width int) tea.Cmd
	ViewWithContext(ctx components.RenderContext) string
	Geometry(progress float64) chart.Geometry
	Layout() chart.Layout
}

type chartOptions struct {
	kind       string
	title      string
	labels     []string
	width      int
	height     int
	svg        bool
	schemeName string
}

var chartKinds = []string{"bar", "line", "area", "pie", "doughnut", "radial", "radar"}

func newChartCmd(app *AppContext) *cobra.Command {
	opts := chartOptions{}

	cmd := &cobra.Command{
		Use:   "chart VALUE...",
		Short: "Render numbers as a chart at the terminal width",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args)
			if err != nil {
				return err
			}
			scheme, err := resolveScheme(app, opts.schemeName)
			if err != nil {
				return err
			}

			chartOpts := app.Config.ChartOptions()
			chartOpts.Title = opts.title
			chartOpts.Duration = 0
			if opts.height > 0 {
				chartOpts.Height = opts.height
			}

			c, err := buildChart(opts.kind, chartOpts, chart.Series{Name: opts.title, Labels: opts.labels, Values: values})
			if err != nil {
				return err
			}

			width := opts.width
			if width <= 0 {
				width = measureWidth(cmd)
			}
			c.SetWidth(width)
			app.Log.WithFields(map[string]any{"kind": opts.kind, "width": width, "values": len(values)}).Debug("rendering chart")

			palettes := app.Config.Palettes()
			if opts.svg {
				fill := func(token uitheme.ColorToken) string {
					return string(uitheme.Resolve(palettes, scheme, uitheme.Overrides{}, token))
				}
				_, err := fmt.Fprint(cmd.OutOrStdout(), chart.SVG(c.Geometry(1), c.Layout(), fill))
				return err
			}
			ctx := components.NewRenderContext(components.NewTheme(palettes, scheme))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), c.ViewWithContext(ctx))
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "bar", "Chart kind: "+strings.Join(chartKinds, ", "))
	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "Chart title")
	cmd.Flags().StringSliceVarP(&opts.labels, "labels", "l", nil, "Comma separated category labels")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Width in cells (defaults to the terminal width)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Height in rows (defaults to the configured height)")
	cmd.Flags().BoolVar(&opts.svg, "svg", false, "Write the chart geometry as SVG")
	cmd.Flags().StringVar(&opts.schemeName, "scheme", "", "Color scheme: light or dark (defaults to the active mode)")

	return cmd
}

func parseValues(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value %q: %w", field, err)
			}
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("at least one value is required")
	}
	return values, nil
}

func buildChart(kind string, opts chart.Options, series chart.Series) (staticChart, error) {
	switch kind {
	case "bar":
		return chart.NewBarChart(opts, series), nil
	case "line":
		return chart.NewLineChart(opts, series), nil
	case "area":
		return chart.NewAreaChart(opts, series), nil
	case "pie":
		return chart.NewPieChart(opts, series), nil
	case "doughnut":
		return chart.NewDoughnutChart(opts, series), nil
	case "radial":
		return chart.NewRadialBarChart(opts, series), nil
	case "radar":
		return chart.NewRadarChart(opts, series), nil
	}
	return nil, fmt.Errorf("unknown chart kind %q, want one of %s", kind, strings.Join(chartKinds, ", "))
}

// measureWidth reads the width of the output terminal, falling back to 80
// columns when the output is not a terminal.
func measureWidth(cmd *cobra.Command) int {
	file, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return fallbackWidth
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}
