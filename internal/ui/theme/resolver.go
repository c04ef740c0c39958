package theme

import "github.com/charmbracelet/lipgloss"

// SchemeSource reports the currently active scheme.
type SchemeSource interface {
	Scheme() ColorScheme
}

// FixedScheme is a SchemeSource that never changes.
type FixedScheme ColorScheme

// Scheme returns the fixed scheme.
func (f FixedScheme) Scheme() ColorScheme {
	return ColorScheme(f)
}

// Resolver binds palettes to a live scheme source.
type Resolver struct {
	palettes Palettes
	source   SchemeSource
}

// NewResolver creates a resolver. A nil source pins the light scheme.
func NewResolver(palettes Palettes, source SchemeSource) *Resolver {
	if source == nil {
		source = FixedScheme(SchemeLight)
	}
	return &Resolver{palettes: palettes, source: source}
}

// Scheme returns the scheme the resolver currently resolves against.
func (r *Resolver) Scheme() ColorScheme {
	return r.source.Scheme()
}

// Palettes returns the bound palettes.
func (r *Resolver) Palettes() Palettes {
	return r.palettes
}

// Color resolves token, honoring the first non-empty override set.
func (r *Resolver) Color(token ColorToken, overrides ...Overrides) lipgloss.Color {
	var o Overrides
	if len(overrides) > 0 {
		o = overrides[0]
	}
	return Resolve(r.palettes, r.source.Scheme(), o, token)
}
