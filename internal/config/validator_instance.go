package config

import (
	"sync"

	"github.com/go-playground/validator/v10"

	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	easings = map[string]struct{}{"linear": {}, "spring": {}}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("appearance_mode", func(fl validator.FieldLevel) bool {
			_, err := uitheme.ParseMode(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("color_token", func(fl validator.FieldLevel) bool {
			return uitheme.IsKnownToken(uitheme.ColorToken(fl.Field().String()))
		})

		_ = v.RegisterValidation("easing", func(fl validator.FieldLevel) bool {
			_, ok := easings[fl.Field().String()]
			return ok
		})

		validateInst = v
	})

	return validateInst
}
