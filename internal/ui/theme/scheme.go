// Package theme resolves semantic color tokens against the active color
// scheme and owns the appearance mode.
package theme

import (
	"fmt"
	"strings"
)

// ColorScheme selects one of the two parallel palettes.
type ColorScheme int

const (
	SchemeLight ColorScheme = iota
	SchemeDark
)

func (s ColorScheme) String() string {
	if s == SchemeDark {
		return "dark"
	}
	return "light"
}

// ParseScheme parses "light" or "dark".
func ParseScheme(value string) (ColorScheme, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "light":
		return SchemeLight, nil
	case "dark":
		return SchemeDark, nil
	default:
		return SchemeLight, fmt.Errorf("unknown color scheme %q", value)
	}
}

// Mode is the user's appearance preference.
type Mode int

const (
	ModeLight Mode = iota
	ModeDark
	ModeSystem
)

func (m Mode) String() string {
	switch m {
	case ModeLight:
		return "light"
	case ModeDark:
		return "dark"
	default:
		return "system"
	}
}

// Next returns the mode that follows m in the toggle cycle
// light -> dark -> system -> light.
func (m Mode) Next() Mode {
	switch m {
	case ModeLight:
		return ModeDark
	case ModeDark:
		return ModeSystem
	default:
		return ModeLight
	}
}

// Pinned reports the scheme an explicit mode pins, or false for system.
func (m Mode) Pinned() (ColorScheme, bool) {
	switch m {
	case ModeLight:
		return SchemeLight, true
	case ModeDark:
		return SchemeDark, true
	default:
		return SchemeLight, false
	}
}

// ParseMode parses "light", "dark" or "system".
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	case "system", "":
		return ModeSystem, nil
	default:
		return ModeSystem, fmt.Errorf("unknown appearance mode %q", value)
	}
}
