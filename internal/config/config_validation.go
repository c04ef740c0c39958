package config

import (
	vkerrors "github.com/alexisbeaulieu97/vaultkit/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return vkerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if err := cfg.Palettes().Validate(); err != nil {
		return err
	}

	return nil
}
