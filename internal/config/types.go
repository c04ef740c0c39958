// Package config loads vaultkit's YAML configuration.
package config

import (
	"time"

	"github.com/alexisbeaulieu97/vaultkit/internal/logger"
	"github.com/alexisbeaulieu97/vaultkit/internal/tui/onboarding"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/animation"
	"github.com/alexisbeaulieu97/vaultkit/internal/ui/chart"
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

// Config represents the root configuration document.
type Config struct {
	Appearance Appearance `yaml:"appearance"`
	Charts     Charts     `yaml:"charts"`
	Logging    Logging    `yaml:"logging"`
	Onboarding Onboarding `yaml:"onboarding"`
}

// Appearance selects the color mode and palette overrides.
type Appearance struct {
	Mode  string            `yaml:"mode" validate:"omitempty,appearance_mode"`
	Light map[string]string `yaml:"light" validate:"omitempty,dive,keys,color_token,endkeys,required"`
	Dark  map[string]string `yaml:"dark" validate:"omitempty,dive,keys,color_token,endkeys,required"`
}

// Charts tunes chart entrance animations and layout.
type Charts struct {
	Duration time.Duration `yaml:"duration" validate:"gte=0"`
	Easing   string        `yaml:"easing" validate:"omitempty,easing"`
	Height   int           `yaml:"height" validate:"omitempty,min=4,max=60"`
	Legend   *bool         `yaml:"legend"`
}

// Logging configures the zerolog output.
type Logging struct {
	Level         string `yaml:"level" validate:"omitempty,oneof=debug info warn error disabled"`
	HumanReadable bool   `yaml:"human_readable"`
	// File receives log output while a screen owns the terminal.
	File string `yaml:"file"`
}

// Onboarding overrides the carousel content and timing.
type Onboarding struct {
	Slides     []onboarding.Slide `yaml:"slides" validate:"omitempty,dive"`
	Autoplay   *time.Duration     `yaml:"autoplay" validate:"omitempty,gte=0"`
	Transition time.Duration      `yaml:"transition" validate:"gte=0"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	charts := chart.DefaultOptions()
	slides := onboarding.DefaultOptions()
	return &Config{
		Appearance: Appearance{Mode: uitheme.ModeSystem.String()},
		Charts: Charts{
			Duration: charts.Duration,
			Easing:   "linear",
			Height:   charts.Height,
		},
		Logging: Logging{Level: "info"},
		Onboarding: Onboarding{
			Autoplay:   &slides.Autoplay,
			Transition: slides.Transition,
		},
	}
}

// Mode returns the configured appearance mode. Invalid values were already
// rejected by validation and fall back to system.
func (c *Config) Mode() uitheme.Mode {
	mode, _ := uitheme.ParseMode(c.Appearance.Mode)
	return mode
}

// Palettes returns the built-in palettes with the configured overrides
// applied.
func (c *Config) Palettes() uitheme.Palettes {
	return uitheme.DefaultPalettes().WithOverrides(tokenMap(c.Appearance.Light), tokenMap(c.Appearance.Dark))
}

// ChartOptions returns chart options with the configured values applied
// over the defaults.
func (c *Config) ChartOptions() chart.Options {
	opts := chart.DefaultOptions()
	if c.Charts.Duration > 0 {
		opts.Duration = c.Charts.Duration
	}
	if c.Charts.Height > 0 {
		opts.Height = c.Charts.Height
	}
	if c.Charts.Legend != nil {
		opts.Legend = *c.Charts.Legend
	}
	opts.Easing = animation.ParseEasing(c.Charts.Easing)
	return opts
}

// OnboardingOptions returns carousel options with the configured values
// applied over the defaults. An explicit zero autoplay disables it.
func (c *Config) OnboardingOptions() onboarding.Options {
	opts := onboarding.DefaultOptions()
	if len(c.Onboarding.Slides) > 0 {
		opts.Slides = c.Onboarding.Slides
	}
	if c.Onboarding.Autoplay != nil {
		opts.Autoplay = *c.Onboarding.Autoplay
	}
	if c.Onboarding.Transition > 0 {
		opts.Transition = c.Onboarding.Transition
	}
	return opts
}

// LoggerOptions returns the logger options for this configuration.
func (c *Config) LoggerOptions() logger.Options {
	level := c.Logging.Level
	if level == "" {
		level = "info"
	}
	return logger.Options{Level: level, HumanReadable: c.Logging.HumanReadable}
}

func tokenMap(in map[string]string) map[uitheme.ColorToken]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[uitheme.ColorToken]string, len(in))
	for token, value := range in {
		out[uitheme.ColorToken(token)] = value
	}
	return out
}
