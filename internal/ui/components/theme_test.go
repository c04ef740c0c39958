package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

func TestThemeColorFollowsScheme(t *testing.T) {
	t.Parallel()

	light := DefaultTheme()
	dark := DarkTheme()

	assert.Equal(t, lipgloss.Color("#18181b"), light.Color(uitheme.TokenPrimary))
	assert.Equal(t, lipgloss.Color("#fafafa"), dark.Color(uitheme.TokenPrimary))
	assert.Equal(t, light.Color(uitheme.TokenText), light.Color("no-such-token"), "unknown tokens fall back to text")
}

func TestThemeColorOverride(t *testing.T) {
	t.Parallel()

	override := uitheme.Overrides{Dark: "#123456"}
	assert.Equal(t, lipgloss.Color("#123456"), DarkTheme().Color(uitheme.TokenPrimary, override))
	assert.Equal(t, lipgloss.Color("#18181b"), DefaultTheme().Color(uitheme.TokenPrimary, override), "dark override must not leak into light")
}

func TestThemeFromResolverSnapshotsScheme(t *testing.T) {
	t.Parallel()

	resolver := uitheme.NewResolver(uitheme.DefaultPalettes(), uitheme.FixedScheme(uitheme.SchemeDark))
	theme := ThemeFromResolver(resolver)

	assert.Equal(t, uitheme.SchemeDark, theme.Scheme)
	assert.Equal(t, resolver.Color(uitheme.TokenBorder), theme.Color(uitheme.TokenBorder))
	assert.Equal(t, uitheme.SchemeLight, ThemeFromResolver(nil).Scheme)
}

func TestNormalizeFillsMissingFields(t *testing.T) {
	t.Parallel()

	theme := Theme{}.Normalize()

	require.NotNil(t, theme.Variants)
	assert.NotNil(t, theme.Palettes.Light)
	assert.Equal(t, uitheme.TokenPrimary, theme.Palette.Primary.Base)
	assert.Equal(t, 2, PaddingValue(theme, SpacingSizeMedium))
}

func TestSpacingValues(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	assert.Equal(t, 2, PaddingValue(theme, SpacingSizeMedium), "padding value should match spacing table")
	assert.Equal(t, 1, MarginValue(theme, SpacingSizeSmall), "margin value should match spacing table")
	assert.Equal(t, 2, PaddingValue(theme, SpacingSize(99)), "out of range sizes use the medium step")
}

func TestTypographyTitleIsBold(t *testing.T) {
	t.Parallel()

	title := TypographyStyle(DefaultTheme(), TypographyVariantTitle)
	assert.True(t, title.GetBold(), "title typography should be bold")
}

func TestVariantRegistryFallsBackToDefault(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	unknown := theme.Variants.Resolve(ButtonVariant(99), ButtonVariantDefault).Apply(lipgloss.NewStyle(), theme)
	def := theme.Variants.Resolve(ButtonVariantDefault, ButtonVariantDefault).Apply(lipgloss.NewStyle(), theme)

	assert.Equal(t, def.GetBackground(), unknown.GetBackground())
	assert.Equal(t, theme.Color(uitheme.TokenPrimary), unknown.GetBackground())
}

func TestVariantRegistryNeverReturnsNil(t *testing.T) {
	t.Parallel()

	registry := NewVariantRegistry()
	strategy := registry.Resolve("missing", "also-missing")
	require.NotNil(t, strategy)

	base := lipgloss.NewStyle().Bold(true)
	assert.True(t, strategy.Apply(base, DefaultTheme()).GetBold())

	var nilRegistry *VariantRegistry
	assert.NotNil(t, nilRegistry.Resolve(ButtonVariantDefault, ButtonVariantDefault))
}

func TestVariantKeysDoNotCollide(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	button := theme.Variants.Get(ButtonVariantDefault).Apply(lipgloss.NewStyle(), theme)
	alert := theme.Variants.Get(AlertVariantDefault).Apply(lipgloss.NewStyle(), theme)

	assert.NotEqual(t, button.GetBorderStyle(), alert.GetBorderStyle())
}

func TestBadgeStylesAreDeterministic(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	variants := []BadgeVariant{
		BadgeVariantDefault, BadgeVariantSecondary, BadgeVariantDestructive,
		BadgeVariantOutline, BadgeVariantSuccess, BadgeVariantWarning, BadgeVariantInfo,
	}

	for _, v := range variants {
		first := BadgeStyle(theme, v)
		second := BadgeStyle(theme, v)

		assert.Equal(t, first.GetForeground(), second.GetForeground())
		assert.Equal(t, first.GetBackground(), second.GetBackground())
		assert.Equal(t, first.GetPaddingLeft(), second.GetPaddingLeft())
		assert.Equal(t, first.GetBorderStyle(), second.GetBorderStyle())
		assert.Equal(t, first.Render("x"), second.Render("x"))
	}
}

func TestButtonStylesAreDeterministic(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	for v := ButtonVariantDefault; v <= ButtonVariantSuccess; v++ {
		first := NewButton("Go").WithVariant(v).computeStyle(theme)
		second := NewButton("Go").WithVariant(v).computeStyle(theme)

		assert.Equal(t, first.GetForeground(), second.GetForeground(), "variant %d", v)
		assert.Equal(t, first.GetBackground(), second.GetBackground(), "variant %d", v)
		assert.Equal(t, first.GetUnderline(), second.GetUnderline(), "variant %d", v)
	}
}

func TestMergeStyleOverrideWins(t *testing.T) {
	t.Parallel()

	base := lipgloss.NewStyle().
		Background(lipgloss.Color("#000000")).
		Foreground(lipgloss.Color("#111111")).
		Padding(1, 2)
	override := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		PaddingLeft(5)

	merged := MergeStyle(base, override)

	assert.Equal(t, lipgloss.Color("#ffffff"), merged.GetForeground())
	assert.Equal(t, lipgloss.Color("#000000"), merged.GetBackground())
	assert.Equal(t, 5, merged.GetPaddingLeft())
	assert.Equal(t, 2, merged.GetPaddingRight())
	assert.Equal(t, 1, merged.GetPaddingTop())
}

func TestOverrideStyleAppliedLast(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	button := NewButton("Pay").
		WithVariant(ButtonVariantDestructive).
		WithStyle(lipgloss.NewStyle().Background(lipgloss.Color("#abcdef")))

	style := button.computeStyle(theme)

	assert.Equal(t, lipgloss.Color("#abcdef"), style.GetBackground())
	assert.Equal(t, theme.Color(uitheme.TokenDestructiveForeground), style.GetForeground(), "unset override keys keep the variant value")
	assert.Equal(t, 2, style.GetPaddingLeft(), "size padding survives the merge")
}

func TestOverrideAppliersRunAfterVariant(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	badge := NewBadge("new").WithAppliers(ForegroundToken(uitheme.TokenWarning))

	assert.Equal(t, theme.Color(uitheme.TokenWarning), badge.computeStyle(theme).GetForeground())
}

func TestSpacingAppliersUseThemeScale(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	base := lipgloss.NewStyle()

	x := PaddingX(SpacingSizeMedium)(base, theme)
	assert.Equal(t, 2, x.GetPaddingLeft())
	assert.Equal(t, 2, x.GetPaddingRight())
	assert.Zero(t, x.GetPaddingTop())

	y := PaddingY(SpacingSizeLarge)(base, theme)
	assert.Equal(t, 3, y.GetPaddingTop())
	assert.Equal(t, 3, y.GetPaddingBottom())
	assert.Zero(t, y.GetPaddingLeft())

	mx := MarginX(SpacingSizeSmall)(base, theme)
	assert.Equal(t, 1, mx.GetMarginLeft())
	assert.Zero(t, mx.GetMarginTop())

	my := MarginY(SpacingSize(99))(base, theme)
	assert.Equal(t, 2, my.GetMarginTop(), "unknown sizes fall back to medium")
	assert.Equal(t, 2, my.GetMarginBottom())
}
