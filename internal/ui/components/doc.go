// Package components provides the theme-aware controls and containers used
// by the vaultkit screens.
//
// # Architecture
//
// The component system has three layers:
//
//  1. Theme layer: a Theme snapshots a color scheme, the semantic palette,
//     the spacing scale and the variant registry.
//  2. Modifier layer: StyleFunc values that turn theme data into lipgloss
//     styles.
//  3. Component layer: composable elements that render to strings.
//
// Themes travel explicitly through RenderContext:
//
//	theme := components.ThemeFromResolver(resolver)
//	out := button.ViewWithContext(components.NewRenderContext(theme))
//
// View() renders with DefaultTheme.
//
// # Styling
//
// Every styled component computes its style in the same order: the base
// style, the variant strategy looked up in theme.Variants, then the caller
// override from WithStyle, then WithAppliers. Unknown variants render as
// the default variant of that component.
//
//	badge := components.NewBadge("beta").
//		WithVariant(components.BadgeVariantInfo).
//		WithAppliers(components.Bold(true))
//
// # State
//
// Stateful controls (Checkbox, Switch, RadioGroup, Collapsible, Accordion,
// Combobox) own their value unless WithSource binds a ValueSource. The
// choice is made on first use and never changes afterwards. Disabled
// controls ignore every input and never call OnChange.
//
// Accordion items are created through Accordion.Item; an item built
// without an accordion panics with a *errors.MisuseError.
package components
