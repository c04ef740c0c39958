package components

import (
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

type ButtonVariant int

const (
	ButtonVariantDefault ButtonVariant = iota
	ButtonVariantDestructive
	ButtonVariantOutline
	ButtonVariantSecondary
	ButtonVariantGhost
	ButtonVariantLink
	ButtonVariantSuccess
)

type ButtonSize int

const (
	ButtonSizeDefault ButtonSize = iota
	ButtonSizeSmall
	ButtonSizeLarge
	ButtonSizeIcon
)

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantSecondary
	BadgeVariantDestructive
	BadgeVariantOutline
	BadgeVariantSuccess
	BadgeVariantWarning
	BadgeVariantInfo
)

type AlertVariant int

const (
	AlertVariantDefault AlertVariant = iota
	AlertVariantDestructive
	AlertVariantSuccess
	AlertVariantWarning
	AlertVariantInfo
)

type CheckboxVariant int

const (
	CheckboxVariantDefault CheckboxVariant = iota
	CheckboxVariantDestructive
)

type SwitchVariant int

const (
	SwitchVariantDefault SwitchVariant = iota
	SwitchVariantSuccess
	SwitchVariantDestructive
)

type RadioVariant int

const (
	RadioVariantDefault RadioVariant = iota
	RadioVariantSecondary
)

type CardVariant int

const (
	CardVariantDefault CardVariant = iota
	CardVariantOutline
	CardVariantElevated
	CardVariantGhost
)

func defaultVariants() *VariantRegistry {
	variants := NewVariantRegistry()
	registerButtonVariants(variants)
	registerBadgeVariants(variants)
	registerAlertVariants(variants)
	registerToggleVariants(variants)
	registerCardVariants(variants)
	return variants
}

// registerButtonVariants populates button variant strategies. Sizes are
// layered on top by the button itself.
func registerButtonVariants(registry *VariantRegistry) {
	registry.Register(ButtonVariantDefault, NewCompositeStrategy(
		Background(PalettePrimary),
	))
	registry.Register(ButtonVariantDestructive, NewCompositeStrategy(
		Background(PaletteDanger),
	))
	registry.Register(ButtonVariantOutline, NewCompositeStrategy(
		ForegroundToken(uitheme.TokenForeground),
		Border(BorderVariantRounded),
		BorderColor(uitheme.TokenInput),
	))
	registry.Register(ButtonVariantSecondary, NewCompositeStrategy(
		Background(PaletteSecondary),
	))
	registry.Register(ButtonVariantGhost, NewCompositeStrategy(
		ForegroundToken(uitheme.TokenForeground),
	))
	registry.Register(ButtonVariantLink, NewCompositeStrategy(
		ForegroundToken(uitheme.TokenPrimary),
		Underline(true),
	))
	registry.Register(ButtonVariantSuccess, NewCompositeStrategy(
		Background(PaletteSuccess),
	))
}

// registerBadgeVariants populates badge variant strategies
func registerBadgeVariants(registry *VariantRegistry) {
	registry.Register(BadgeVariantDefault, NewCompositeStrategy(
		Background(PalettePrimary),
		PaddingX(SpacingSizeExtraSmall),
	))
	registry.Register(BadgeVariantSecondary, NewCompositeStrategy(
		Background(PaletteSecondary),
		PaddingX(SpacingSizeExtraSmall),
	))
	registry.Register(BadgeVariantDestructive, NewCompositeStrategy(
		Background(PaletteDanger),
		PaddingX(SpacingSizeExtraSmall),
	))
	registry.Register(BadgeVariantOutline, NewCompositeStrategy(
		ForegroundToken(uitheme.TokenForeground),
		Border(BorderVariantRounded),
		BorderColor(uitheme.TokenBorder),
	))
	registry.Register(BadgeVariantSuccess, NewCompositeStrategy(
		Background(PaletteSuccess),
		PaddingX(SpacingSizeExtraSmall),
	))
	registry.Register(BadgeVariantWarning, NewCompositeStrategy(
		Background(PaletteWarning),
		PaddingX(SpacingSizeExtraSmall),
	))
	registry.Register(BadgeVariantInfo, NewCompositeStrategy(
		Background(PaletteInfo),
		PaddingX(SpacingSizeExtraSmall),
	))
}

// registerAlertVariants populates alert variant strategies
func registerAlertVariants(registry *VariantRegistry) {
	alert := func(text, border uitheme.ColorToken) StyleStrategy {
		return NewCompositeStrategy(
			ForegroundToken(text),
			Border(BorderVariantRounded),
			BorderColor(border),
			PaddingX(SpacingSizeExtraSmall),
		)
	}
	registry.Register(AlertVariantDefault, alert(uitheme.TokenForeground, uitheme.TokenBorder))
	registry.Register(AlertVariantDestructive, alert(uitheme.TokenDestructive, uitheme.TokenDestructive))
	registry.Register(AlertVariantSuccess, alert(uitheme.TokenSuccess, uitheme.TokenSuccess))
	registry.Register(AlertVariantWarning, alert(uitheme.TokenWarning, uitheme.TokenWarning))
	registry.Register(AlertVariantInfo, alert(uitheme.TokenInfo, uitheme.TokenInfo))
}

// registerToggleVariants covers the indicator colors of checkbox, switch
// and radio controls. The label keeps the foreground color.
func registerToggleVariants(registry *VariantRegistry) {
	registry.Register(CheckboxVariantDefault, NewCompositeStrategy(ForegroundToken(uitheme.TokenPrimary)))
	registry.Register(CheckboxVariantDestructive, NewCompositeStrategy(ForegroundToken(uitheme.TokenDestructive)))

	registry.Register(SwitchVariantDefault, NewCompositeStrategy(ForegroundToken(uitheme.TokenPrimary)))
	registry.Register(SwitchVariantSuccess, NewCompositeStrategy(ForegroundToken(uitheme.TokenSuccess)))
	registry.Register(SwitchVariantDestructive, NewCompositeStrategy(ForegroundToken(uitheme.TokenDestructive)))

	registry.Register(RadioVariantDefault, NewCompositeStrategy(ForegroundToken(uitheme.TokenPrimary)))
	registry.Register(RadioVariantSecondary, NewCompositeStrategy(ForegroundToken(uitheme.TokenMutedForeground)))
}

func registerCardVariants(registry *VariantRegistry) {
	registry.Register(CardVariantDefault, NewCompositeStrategy(CardBaseStyle()...))
	registry.Register(CardVariantOutline, NewCompositeStrategy(
		ForegroundToken(uitheme.TokenCardForeground),
		Border(BorderVariantNormal),
		BorderColor(uitheme.TokenInput),
		PaddingX(SpacingSizeExtraSmall),
	))
	registry.Register(CardVariantElevated, NewCompositeStrategy(
		ForegroundToken(uitheme.TokenCardForeground),
		Border(BorderVariantThick),
		BorderColor(uitheme.TokenRing),
		PaddingX(SpacingSizeExtraSmall),
	))
	registry.Register(CardVariantGhost, NewCompositeStrategy(
		ForegroundToken(uitheme.TokenCardForeground),
		PaddingX(SpacingSizeExtraSmall),
	))
}
