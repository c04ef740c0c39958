package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("vaultkit.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "vaultkit.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "vaultkit.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("vaultkit.yaml", 0, stdErrors.New("empty document"))
	require.Equal(t, "parse error: vaultkit.yaml: empty document", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("appearance.overrides.dark", "unknown color token \"brand\"", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "appearance.overrides.dark", validationErr.Field)
	require.Contains(t, validationErr.Message, "unknown color token")
}

func TestMisuseErrorNamesContainer(t *testing.T) {
	t.Parallel()

	err := NewMisuseError("AccordionItem", "Accordion")

	var misuseErr *MisuseError
	require.ErrorAs(t, err, &misuseErr)
	require.Equal(t, "AccordionItem", misuseErr.Component)
	require.Equal(t, "component misuse: AccordionItem must be used within Accordion", err.Error())
}

func TestResourceErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("no such file")
	err := NewResourceError("assets/logo.txt", underlying)

	var resourceErr *ResourceError
	require.ErrorAs(t, err, &resourceErr)
	require.Equal(t, "assets/logo.txt", resourceErr.Source)
	require.True(t, stdErrors.Is(err, underlying))
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var resourceErr *ResourceError
	require.Equal(t, "", parseErr.Error())
	require.Nil(t, resourceErr.Unwrap())
}
