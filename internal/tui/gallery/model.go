// Package gallery showcases every component and chart against the live
// theme. Pressing t cycles the appearance mode.
package gallery

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vaultkit/internal/tui/router"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/chart"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/components"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/lifecycle"
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

// Name is the route the screen is registered under.
const Name = "gallery"

// Section is a gallery page.
type Section int

const (
	SectionComponents Section = iota
	SectionControls
	SectionCharts
	sectionCount
)

func (s Section) String() string {
	switch s {
	case SectionComponents:
		return "Components"
	case SectionControls:
		return "Controls"
	case SectionCharts:
		return "Charts"
	default:
		return "Unknown"
	}
}

// Control identifies the focused widget on the controls page.
type Control int

const (
	ControlCombobox Control = iota
	ControlAccordion
	ControlSwitch
	controlCount
)

// Options configures the gallery.
type Options struct {
	Charts chart.Options
}

// chartView is what the gallery needs from every chart adapter.
type chartView interface {
	ui.Renderable
	ViewWithContext(ctx components.RenderContext) string
	SetWidth(width int) tea.Cmd
	Animate() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	Stop()
}

type namedChart struct {
	name  string
	chart chartView
}

// Model is the gallery screen.
type Model struct {
	env       router.Env
	section   Section
	control   Control
	combobox  *components.Combobox
	accordion *components.Accordion
	toggle    *components.Switch
	scroll    *components.ScrollView
	charts    []namedChart
	current   int
	scheme    uitheme.ColorScheme
	size      lifecycle.Size
}

// New returns the factory registered with the router.
func New(opts Options) router.Factory {
	return func(env router.Env) router.Screen {
		return NewModel(env, opts)
	}
}

// NewModel mounts the gallery. Charts stop and the scheme subscription is
// released when the screen unmounts.
func NewModel(env router.Env, opts Options) *Model {
	m := &Model{
		env:       env,
		combobox:  newAssetCombobox(),
		accordion: newFAQ(),
		toggle:    components.NewSwitch("Hide small balances"),
		charts:    sampleCharts(opts.Charts),
		size:      env.Size,
	}
	m.combobox.WithFocused(true)
	m.scroll = components.NewScrollView(catalogue(), 0, 0)
	if env.Mode != nil {
		m.scheme = env.Mode.Scheme()
	}

	if env.Scope != nil {
		if env.Mode != nil {
			env.Scope.Add(env.Mode.Subscribe(lifecycle.Guard(env.Scope, func(s uitheme.ColorScheme) {
				m.scheme = s
			})))
		}
		if env.Sizes != nil {
			env.Scope.Add(env.Sizes.Subscribe(lifecycle.Guard(env.Scope, func(size lifecycle.Size) {
				m.size = size
			})))
		}
		env.Scope.Defer(func() {
			for _, c := range m.charts {
				c.chart.Stop()
			}
		})
	}
	return m
}

// Init sizes the charts when the terminal size is already known.
func (m *Model) Init() tea.Cmd {
	return m.resizeCharts()
}

// Section returns the visible page.
func (m *Model) Section() Section {
	return m.section
}

// Control returns the focused widget on the controls page.
func (m *Model) Control() Control {
	return m.control
}

// Scheme returns the last scheme reported by the mode controller.
func (m *Model) Scheme() uitheme.ColorScheme {
	return m.scheme
}

// ChartName returns the name of the visible chart.
func (m *Model) ChartName() string {
	return m.charts[m.current].name
}

// ScrollOffset returns the top visible line of the component catalogue.
func (m *Model) ScrollOffset() int {
	return m.scroll.Offset()
}

// Rows taken by the screen padding, tab bar, hints and the gaps between them.
const catalogueChrome = 6

// layoutCatalogue sizes the scroll view to the rows left under the tab bar.
// It reports false before the terminal has been measured.
func (m *Model) layoutCatalogue() bool {
	if m.size.Width <= 0 || m.size.Height <= 0 {
		return false
	}
	m.scroll.SetSize(lifecycle.Size{
		Width:  max(m.size.Width-4, 1),
		Height: max(m.size.Height-catalogueChrome, 3),
	})
	m.scroll.Refresh(m.env.RenderContext())
	return true
}

// chartWidth leaves room for the screen padding and the chart panel frame.
func (m *Model) chartWidth() int {
	if m.size.Width <= 0 {
		return 0
	}
	return max(m.size.Width-10, 10)
}

func (m *Model) resizeCharts() tea.Cmd {
	width := m.chartWidth()
	cmds := make([]tea.Cmd, 0, len(m.charts))
	for _, c := range m.charts {
		cmds = append(cmds, c.chart.SetWidth(width))
	}
	return tea.Batch(cmds...)
}

func newAssetCombobox() *components.Combobox {
	return components.NewCombobox(
		components.ComboboxItem{Value: "btc", Label: "Bitcoin", Search: "Bitcoin BTC"},
		components.ComboboxItem{Value: "eth", Label: "Ethereum", Search: "Ethereum ETH ether"},
		components.ComboboxItem{Value: "sol", Label: "Solana", Search: "Solana SOL"},
		components.ComboboxItem{Value: "ada", Label: "Cardano", Search: "Cardano ADA"},
		components.ComboboxItem{Value: "dot", Label: "Polkadot", Search: "Polkadot DOT"},
		components.ComboboxItem{Value: "usdc", Label: "USD Coin", Search: "USD Coin USDC stablecoin"},
	).WithMultiple(true).WithPlaceholder("Select assets...")
}

func newFAQ() *components.Accordion {
	a := components.NewAccordion(components.AccordionSingle, true)
	a.Item("backup", "Where is my recovery phrase stored?",
		components.MutedText("Encrypted on this device. Vaultkit never uploads it.").WithWrap(56))
	a.Item("lost", "What if I forget my password?",
		components.MutedText("Restore the vault from the recovery phrase and choose a new password.").WithWrap(56))
	a.Item("sync", "Can I use the same vault on two machines?",
		components.MutedText("Import the same phrase on each machine. Vaults never sync with each other.").WithWrap(56))
	return a.WithOpen("backup")
}

func sampleCharts(opts chart.Options) []namedChart {
	months := []string{"May", "Jun", "Jul", "Aug", "Sep", "Oct"}
	balance := chart.Series{Name: "Balance", Labels: months, Values: []float64{4.2, 5.1, 4.8, 6.3, 7.0, 6.6}}
	deposits := chart.Series{Name: "Deposits", Labels: months, Values: []float64{1.2, 0.8, 1.5, 1.1, 0.9, 1.4}}
	allocation := chart.Series{
		Labels: []string{"BTC", "ETH", "SOL", "USDC"},
		Values: []float64{48, 27, 15, 10},
	}
	risk := chart.Series{
		Name:   "Portfolio",
		Labels: []string{"Volatility", "Liquidity", "Diversity", "Yield", "Custody"},
		Values: []float64{7, 9, 5, 3, 8},
	}
	candles := []chart.Candle{
		{Label: "Mon", Open: 61.2, High: 63.0, Low: 60.1, Close: 62.5},
		{Label: "Tue", Open: 62.5, High: 64.2, Low: 61.8, Close: 61.9},
		{Label: "Wed", Open: 61.9, High: 62.4, Low: 59.7, Close: 60.2},
		{Label: "Thu", Open: 60.2, High: 63.1, Low: 60.0, Close: 62.8},
		{Label: "Fri", Open: 62.8, High: 65.5, Low: 62.4, Close: 65.1},
	}
	bubbles := []chart.BubblePoint{
		{Label: "BTC", X: 1, Y: 48, Size: 30},
		{Label: "ETH", X: 2, Y: 27, Size: 18},
		{Label: "SOL", X: 3, Y: 15, Size: 9},
	}

	with := func(title string) chart.Options {
		o := opts
		o.Title = title
		return o
	}
	return []namedChart{
		{name: "bar", chart: chart.NewBarChart(with("Monthly balance"), balance, deposits)},
		{name: "line", chart: chart.NewLineChart(with("Balance trend"), balance)},
		{name: "area", chart: chart.NewAreaChart(with("Deposits"), deposits)},
		{name: "pie", chart: chart.NewPieChart(with("Allocation"), allocation)},
		{name: "doughnut", chart: chart.NewDoughnutChart(with("Allocation"), allocation)},
		{name: "radial", chart: chart.NewRadialBarChart(with("Allocation"), allocation).WithMax(100)},
		{name: "ring", chart: chart.NewProgressRing(with("Backup health"), 0.8)},
		{name: "radar", chart: chart.NewRadarChart(with("Risk profile"), risk)},
		{name: "candlestick", chart: chart.NewCandlestickChart(with("BTC this week"), candles...)},
		{name: "bubble", chart: chart.NewBubbleChart(with("Holdings"), bubbles...)},
	}
}
