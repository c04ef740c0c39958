package components

import (
	"github.com/charmbracelet/lipgloss"

	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
	SpacingSizeDoubleExtraLarge
)

const spacingSizeCount = int(SpacingSizeDoubleExtraLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantCode
	TypographyVariantEmphasis
	TypographyVariantMuted
	TypographyVariantCaption
)

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantThick
	BorderVariantRounded
	BorderVariantDouble
)

type InputState int

const (
	InputStateDefault InputState = iota
	InputStateFocus
	InputStateInvalid
)

// ColourSet names the tokens that make up one semantic colour role:
//
//   - Base: the fill or brand color
//   - OnBase: content drawn on top of Base
//   - Muted: a subdued accent for the same role
//   - Contrast: an outline or focus color
//
// Colors are resolved against the theme's active scheme at render time.
type ColourSet struct {
	Base     uitheme.ColorToken
	OnBase   uitheme.ColorToken
	Muted    uitheme.ColorToken
	Contrast uitheme.ColorToken
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Card      ColourSet
	Popover   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// VariantRegistry maps component variants to their styling strategies.
// Keys are typed variant values, so ButtonVariantDefault and
// BadgeVariantDefault never collide.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{
		strategies: make(map[any]StyleStrategy),
	}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Resolve returns the strategy for variant, falling back to the strategy of
// fallback (the component's default variant) and finally to an empty
// strategy. It never returns nil.
func (vr *VariantRegistry) Resolve(variant, fallback any) StyleStrategy {
	if strategy := vr.Get(variant); strategy != nil {
		return strategy
	}
	if strategy := vr.Get(fallback); strategy != nil {
		return strategy
	}
	return CompositeStrategy{}
}

// Theme represents an immutable styling theme for components.
// All modification operations return new theme instances.
type Theme struct {
	Palettes uitheme.Palettes
	Scheme   uitheme.ColorScheme
	Palette  Palette
	Borders  BorderSet
	Spacing  SpacingConfig
	Variants *VariantRegistry
}

// Color resolves token against the theme's active scheme. The first
// override set, when given, wins for that scheme.
func (t Theme) Color(token uitheme.ColorToken, overrides ...uitheme.Overrides) lipgloss.Color {
	var o uitheme.Overrides
	if len(overrides) > 0 {
		o = overrides[0]
	}
	return uitheme.Resolve(t.Palettes, t.Scheme, o, token)
}

// WithScheme returns a copy resolving against scheme.
func (t Theme) WithScheme(scheme uitheme.ColorScheme) Theme {
	t.Scheme = scheme
	return t
}

// WithPalettes returns a copy resolving against palettes.
func (t Theme) WithPalettes(palettes uitheme.Palettes) Theme {
	t.Palettes = palettes
	return t
}

// Normalize returns a new theme with all fields properly initialized.
// This ensures that partially-specified themes have sensible defaults.
func (t Theme) Normalize() Theme {
	t.Spacing = normalizeSpacingConfig(t.Spacing)
	if t.Palettes.Light == nil || t.Palettes.Dark == nil {
		t.Palettes = uitheme.DefaultPalettes()
	}
	if t.Palette == (Palette{}) {
		t.Palette = defaultPalette()
	}
	if t.Variants == nil {
		t.Variants = defaultVariants()
	}
	return t
}

func normalizeSpacingConfig(cfg SpacingConfig) SpacingConfig {
	if spacingTableIsZero(cfg.Padding) {
		cfg.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(cfg.Margin) {
		cfg.Margin = defaultSpacingTable()
	}
	return cfg
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

// Terminal cells are coarse, so the scale stays small.
func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:             0,
		SpacingSizeExtraSmall:       1,
		SpacingSizeSmall:            1,
		SpacingSizeMedium:           2,
		SpacingSizeLarge:            3,
		SpacingSizeExtraLarge:       4,
		SpacingSizeDoubleExtraLarge: 6,
	}
}

func defaultPalette() Palette {
	return Palette{
		Primary:   ColourSet{Base: uitheme.TokenPrimary, OnBase: uitheme.TokenPrimaryForeground, Muted: uitheme.TokenMutedForeground, Contrast: uitheme.TokenRing},
		Secondary: ColourSet{Base: uitheme.TokenSecondary, OnBase: uitheme.TokenSecondaryForeground, Muted: uitheme.TokenMutedForeground, Contrast: uitheme.TokenBorder},
		Surface:   ColourSet{Base: uitheme.TokenBackground, OnBase: uitheme.TokenForeground, Muted: uitheme.TokenMuted, Contrast: uitheme.TokenBorder},
		Card:      ColourSet{Base: uitheme.TokenCard, OnBase: uitheme.TokenCardForeground, Muted: uitheme.TokenMutedForeground, Contrast: uitheme.TokenBorder},
		Popover:   ColourSet{Base: uitheme.TokenPopover, OnBase: uitheme.TokenPopoverForeground, Muted: uitheme.TokenMutedForeground, Contrast: uitheme.TokenBorder},
		Success:   ColourSet{Base: uitheme.TokenSuccess, OnBase: uitheme.TokenSuccessForeground, Muted: uitheme.TokenSuccess, Contrast: uitheme.TokenSuccess},
		Warning:   ColourSet{Base: uitheme.TokenWarning, OnBase: uitheme.TokenWarningForeground, Muted: uitheme.TokenWarning, Contrast: uitheme.TokenWarning},
		Danger:    ColourSet{Base: uitheme.TokenDestructive, OnBase: uitheme.TokenDestructiveForeground, Muted: uitheme.TokenDestructive, Contrast: uitheme.TokenDestructive},
		Info:      ColourSet{Base: uitheme.TokenInfo, OnBase: uitheme.TokenInfoForeground, Muted: uitheme.TokenInfo, Contrast: uitheme.TokenInfo},
		Neutral:   ColourSet{Base: uitheme.TokenMuted, OnBase: uitheme.TokenMutedForeground, Muted: uitheme.TokenAccent, Contrast: uitheme.TokenInput},
	}
}

func defaultBorders() BorderSet {
	return BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}
}

// NewTheme builds a theme over palettes resolving against scheme.
func NewTheme(palettes uitheme.Palettes, scheme uitheme.ColorScheme) Theme {
	theme := Theme{
		Palettes: palettes,
		Scheme:   scheme,
		Palette:  defaultPalette(),
		Borders:  defaultBorders(),
		Spacing: SpacingConfig{
			Padding: defaultSpacingTable(),
			Margin:  defaultSpacingTable(),
		},
		Variants: defaultVariants(),
	}
	return theme.Normalize()
}

// ThemeFromResolver snapshots the resolver's palettes and current scheme.
func ThemeFromResolver(r *uitheme.Resolver) Theme {
	if r == nil {
		return DefaultTheme()
	}
	return NewTheme(r.Palettes(), r.Scheme())
}

// DefaultTheme returns the default light theme.
func DefaultTheme() Theme {
	return NewTheme(uitheme.DefaultPalettes(), uitheme.SchemeLight)
}

// DarkTheme returns the default palettes resolved for the dark scheme.
func DarkTheme() Theme {
	return DefaultTheme().WithScheme(uitheme.SchemeDark)
}

// LightTheme returns a light theme variant
func LightTheme() Theme {
	return DefaultTheme()
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

// PaddingValue returns the padding value for the given size.
func PaddingValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Padding, size)
}

// MarginValue returns the margin value for the given size.
func MarginValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the specified typography style resolved for the
// theme's scheme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	base := lipgloss.NewStyle().Foreground(theme.Color(theme.Palette.Surface.OnBase))

	switch variant {
	case TypographyVariantTitle:
		return base.Bold(true)
	case TypographyVariantSubtitle:
		return base.Foreground(theme.Color(uitheme.TokenMutedForeground))
	case TypographyVariantCode:
		return base.
			Foreground(theme.Color(uitheme.TokenAccentForeground)).
			Background(theme.Color(uitheme.TokenMuted)).
			Padding(0, 1)
	case TypographyVariantEmphasis:
		return base.Bold(true).Italic(true)
	case TypographyVariantMuted:
		return base.Foreground(theme.Color(uitheme.TokenMutedForeground))
	case TypographyVariantCaption:
		return base.Foreground(theme.Color(uitheme.TokenMutedForeground)).Faint(true)
	default:
		return base
	}
}

// InputStyle returns the input style for the given state.
func InputStyle(theme Theme, state InputState) lipgloss.Style {
	style := lipgloss.NewStyle().
		BorderStyle(theme.Borders.Rounded).
		BorderForeground(theme.Color(uitheme.TokenInput)).
		Foreground(theme.Color(uitheme.TokenForeground)).
		Padding(0, 1)

	switch state {
	case InputStateFocus:
		return style.BorderForeground(theme.Color(uitheme.TokenRing))
	case InputStateInvalid:
		return style.BorderForeground(theme.Color(uitheme.TokenDestructive))
	default:
		return style
	}
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
// Use the predefined slots (PalettePrimary, PaletteSuccess, etc.) for type-safe access.
type PaletteSlot func(Palette) ColourSet

// Predefined semantic palette slots for type-safe theme access.
var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteCard      PaletteSlot = func(p Palette) ColourSet { return p.Card }
	PalettePopover   PaletteSlot = func(p Palette) ColourSet { return p.Popover }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Fluent modifier functions

// Background applies a semantic background colour and matching foreground for optimal contrast.
//
// Example:
//
//	card := NewCard().WithAppliers(Background(PalettePrimary))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(theme.Color(cs.Base)).Foreground(theme.Color(cs.OnBase))
	}
}

// Foreground applies a semantic foreground colour without changing the background.
//
// Example:
//
//	text := NewText("Error").WithAppliers(Foreground(PaletteDanger))
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Foreground(theme.Color(cs.Base))
	}
}

// BackgroundToken sets the background from a single token.
func BackgroundToken(token uitheme.ColorToken) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Background(theme.Color(token))
	}
}

// ForegroundToken sets the foreground from a single token. The optional
// override set wins for the active scheme.
func ForegroundToken(token uitheme.ColorToken, overrides ...uitheme.Overrides) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Color(token, overrides...))
	}
}

// BorderColor colors every border edge with token.
func BorderColor(token uitheme.ColorToken) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(theme.Color(token))
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.Padding(value)
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Margin, size)
		return base.Margin(value)
	}
}

func MarginX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Margin, size)
		return base.MarginLeft(value).MarginRight(value)
	}
}

func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Margin, size)
		return base.MarginTop(value).MarginBottom(value)
	}
}

// Typography applies typography styling
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// Bold toggles bold text.
func Bold(on bool) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Bold(on)
	}
}

// Underline toggles underlined text.
func Underline(on bool) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Underline(on)
	}
}

// Faint dims the rendered content; used for disabled controls.
func Faint(on bool) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Faint(on)
	}
}

// Predefined style bundles for common component patterns

func CardBaseStyle() []StyleFunc {
	return []StyleFunc{
		ForegroundToken(uitheme.TokenCardForeground),
		Border(BorderVariantRounded),
		BorderColor(uitheme.TokenBorder),
		PaddingX(SpacingSizeExtraSmall),
	}
}

func PopoverBaseStyle() []StyleFunc {
	return []StyleFunc{
		ForegroundToken(uitheme.TokenPopoverForeground),
		Border(BorderVariantRounded),
		BorderColor(uitheme.TokenBorder),
	}
}
