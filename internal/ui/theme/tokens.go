package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	vkerrors "github.com/alexisbeaulieu97/vaultkit/pkg/errors"
)

// ColorToken names a semantic color role.
type ColorToken string

const (
	TokenText                  ColorToken = "text"
	TokenBackground            ColorToken = "background"
	TokenForeground            ColorToken = "foreground"
	TokenCard                  ColorToken = "card"
	TokenCardForeground        ColorToken = "cardForeground"
	TokenPopover               ColorToken = "popover"
	TokenPopoverForeground     ColorToken = "popoverForeground"
	TokenPrimary               ColorToken = "primary"
	TokenPrimaryForeground     ColorToken = "primaryForeground"
	TokenSecondary             ColorToken = "secondary"
	TokenSecondaryForeground   ColorToken = "secondaryForeground"
	TokenMuted                 ColorToken = "muted"
	TokenMutedForeground       ColorToken = "mutedForeground"
	TokenAccent                ColorToken = "accent"
	TokenAccentForeground      ColorToken = "accentForeground"
	TokenDestructive           ColorToken = "destructive"
	TokenDestructiveForeground ColorToken = "destructiveForeground"
	TokenSuccess               ColorToken = "success"
	TokenSuccessForeground     ColorToken = "successForeground"
	TokenWarning               ColorToken = "warning"
	TokenWarningForeground     ColorToken = "warningForeground"
	TokenInfo                  ColorToken = "info"
	TokenInfoForeground        ColorToken = "infoForeground"
	TokenBorder                ColorToken = "border"
	TokenInput                 ColorToken = "input"
	TokenRing                  ColorToken = "ring"
	TokenChart1                ColorToken = "chart1"
	TokenChart2                ColorToken = "chart2"
	TokenChart3                ColorToken = "chart3"
	TokenChart4                ColorToken = "chart4"
	TokenChart5                ColorToken = "chart5"
)

var allTokens = []ColorToken{
	TokenText, TokenBackground, TokenForeground,
	TokenCard, TokenCardForeground, TokenPopover, TokenPopoverForeground,
	TokenPrimary, TokenPrimaryForeground, TokenSecondary, TokenSecondaryForeground,
	TokenMuted, TokenMutedForeground, TokenAccent, TokenAccentForeground,
	TokenDestructive, TokenDestructiveForeground,
	TokenSuccess, TokenSuccessForeground, TokenWarning, TokenWarningForeground,
	TokenInfo, TokenInfoForeground,
	TokenBorder, TokenInput, TokenRing,
	TokenChart1, TokenChart2, TokenChart3, TokenChart4, TokenChart5,
}

// AllTokens returns every defined token in a stable order.
func AllTokens() []ColorToken {
	out := make([]ColorToken, len(allTokens))
	copy(out, allTokens)
	return out
}

// ChartTokens returns the series colors in order.
func ChartTokens() []ColorToken {
	return []ColorToken{TokenChart1, TokenChart2, TokenChart3, TokenChart4, TokenChart5}
}

// IsKnownToken reports whether token is one of the defined roles.
func IsKnownToken(token ColorToken) bool {
	for _, candidate := range allTokens {
		if candidate == token {
			return true
		}
	}
	return false
}

// Palette maps tokens to concrete color strings for one scheme.
type Palette map[ColorToken]string

// Clone returns an independent copy.
func (p Palette) Clone() Palette {
	out := make(Palette, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Palettes holds the two parallel palettes.
type Palettes struct {
	Light Palette
	Dark  Palette
}

// For returns the palette for scheme.
func (p Palettes) For(scheme ColorScheme) Palette {
	if scheme == SchemeDark {
		return p.Dark
	}
	return p.Light
}

// Validate checks that both palettes define the same tokens and that the
// text fallback exists in each.
func (p Palettes) Validate() error {
	for _, scheme := range []ColorScheme{SchemeLight, SchemeDark} {
		palette := p.For(scheme)
		if palette[TokenText] == "" {
			return vkerrors.NewValidationError(fmt.Sprintf("palettes.%s.%s", scheme, TokenText), "fallback token is missing", nil)
		}
	}
	for token := range p.Light {
		if _, ok := p.Dark[token]; !ok {
			return vkerrors.NewValidationError(fmt.Sprintf("palettes.dark.%s", token), "token defined for light has no dark value", nil)
		}
	}
	for token := range p.Dark {
		if _, ok := p.Light[token]; !ok {
			return vkerrors.NewValidationError(fmt.Sprintf("palettes.light.%s", token), "token defined for dark has no light value", nil)
		}
	}
	return nil
}

// WithOverrides returns a copy with the given per-scheme values replaced.
func (p Palettes) WithOverrides(light, dark map[ColorToken]string) Palettes {
	out := Palettes{Light: p.Light.Clone(), Dark: p.Dark.Clone()}
	for token, value := range light {
		out.Light[token] = value
	}
	for token, value := range dark {
		out.Dark[token] = value
	}
	return out
}

// Overrides are per-call colors that win over the palette for one scheme.
type Overrides struct {
	Light string
	Dark  string
}

// For returns the override for scheme, or "".
func (o Overrides) For(scheme ColorScheme) string {
	if scheme == SchemeDark {
		return o.Dark
	}
	return o.Light
}

// Resolve returns the concrete color for token under scheme. A caller
// override for the active scheme wins; unknown tokens fall back to the
// palette's text color.
func Resolve(palettes Palettes, scheme ColorScheme, overrides Overrides, token ColorToken) lipgloss.Color {
	if value := overrides.For(scheme); value != "" {
		return lipgloss.Color(value)
	}
	palette := palettes.For(scheme)
	if value, ok := palette[token]; ok && value != "" {
		return lipgloss.Color(value)
	}
	return lipgloss.Color(palette[TokenText])
}

// DefaultPalettes returns the built-in light and dark palettes.
func DefaultPalettes() Palettes {
	return Palettes{
		Light: Palette{
			TokenText:                  "#09090b",
			TokenBackground:            "#ffffff",
			TokenForeground:            "#09090b",
			TokenCard:                  "#ffffff",
			TokenCardForeground:        "#09090b",
			TokenPopover:               "#ffffff",
			TokenPopoverForeground:     "#09090b",
			TokenPrimary:               "#18181b",
			TokenPrimaryForeground:     "#fafafa",
			TokenSecondary:             "#f4f4f5",
			TokenSecondaryForeground:   "#18181b",
			TokenMuted:                 "#f4f4f5",
			TokenMutedForeground:       "#71717a",
			TokenAccent:                "#f4f4f5",
			TokenAccentForeground:      "#18181b",
			TokenDestructive:           "#ef4444",
			TokenDestructiveForeground: "#fafafa",
			TokenSuccess:               "#22c55e",
			TokenSuccessForeground:     "#052e16",
			TokenWarning:               "#eab308",
			TokenWarningForeground:     "#422006",
			TokenInfo:                  "#06b6d4",
			TokenInfoForeground:        "#083344",
			TokenBorder:                "#e4e4e7",
			TokenInput:                 "#e4e4e7",
			TokenRing:                  "#18181b",
			TokenChart1:                "#e76e50",
			TokenChart2:                "#2a9d90",
			TokenChart3:                "#274754",
			TokenChart4:                "#e8c468",
			TokenChart5:                "#f4a462",
		},
		Dark: Palette{
			TokenText:                  "#fafafa",
			TokenBackground:            "#09090b",
			TokenForeground:            "#fafafa",
			TokenCard:                  "#09090b",
			TokenCardForeground:        "#fafafa",
			TokenPopover:               "#09090b",
			TokenPopoverForeground:     "#fafafa",
			TokenPrimary:               "#fafafa",
			TokenPrimaryForeground:     "#18181b",
			TokenSecondary:             "#27272a",
			TokenSecondaryForeground:   "#fafafa",
			TokenMuted:                 "#27272a",
			TokenMutedForeground:       "#a1a1aa",
			TokenAccent:                "#27272a",
			TokenAccentForeground:      "#fafafa",
			TokenDestructive:           "#dc2626",
			TokenDestructiveForeground: "#fafafa",
			TokenSuccess:               "#4ade80",
			TokenSuccessForeground:     "#022c22",
			TokenWarning:               "#facc15",
			TokenWarningForeground:     "#422006",
			TokenInfo:                  "#22d3ee",
			TokenInfoForeground:        "#04121a",
			TokenBorder:                "#27272a",
			TokenInput:                 "#27272a",
			TokenRing:                  "#d4d4d8",
			TokenChart1:                "#2662d9",
			TokenChart2:                "#2eb88a",
			TokenChart3:                "#e88c30",
			TokenChart4:                "#af57db",
			TokenChart5:                "#e23670",
		},
	}
}
