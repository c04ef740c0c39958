package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	vkerrors "github.com/alexisbeaulieu97/vaultkit/pkg/errors"
)

// convertValidationError normalizes validator errors into vaultkit validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		return vkerrors.NewValidationError(field, tagMessage(ve), err)
	}

	return vkerrors.NewValidationError("config", err.Error(), err)
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "appearance_mode":
		return fmt.Sprintf("unknown appearance mode %q, want light, dark or system", fe.Value())
	case "color_token":
		return fmt.Sprintf("unknown color token %q", fe.Value())
	case "easing":
		return fmt.Sprintf("unknown easing %q, want linear or spring", fe.Value())
	case "required":
		return "is required"
	}
	return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
}

// yamlishFieldName turns Config.Charts.Easing into charts.easing.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
