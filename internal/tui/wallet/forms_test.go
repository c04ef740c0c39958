package wallet

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vkerrors "github.com/alexisbeaulieu97/vaultkit/pkg/errors"
)

func phrase(n int) string {
	return strings.TrimSpace(strings.Repeat("abandon ", n))
}

func TestValidPhrase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		phrase string
		want   bool
	}{
		{name: "twelve words", phrase: phrase(12), want: true},
		{name: "twenty four words", phrase: phrase(24), want: true},
		{name: "extra spacing", phrase: "  " + strings.ReplaceAll(phrase(12), " ", "   ") + " ", want: true},
		{name: "eleven words", phrase: phrase(11), want: false},
		{name: "eighteen words", phrase: phrase(18), want: false},
		{name: "uppercase word", phrase: "Abandon " + phrase(11), want: false},
		{name: "digits", phrase: "abandon1 " + phrase(11), want: false},
		{name: "empty", phrase: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ValidPhrase(tt.phrase))
		})
	}
}

func TestNormalizePhrase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "legal winner thank", NormalizePhrase("  Legal\tWINNER \n thank "))
	assert.Equal(t, 3, PhraseWords("legal winner thank"))
}

func TestValidateCreateForm(t *testing.T) {
	t.Parallel()

	t.Run("valid form", func(t *testing.T) {
		t.Parallel()
		errs := ValidateForm(CreateForm{Name: "Savings", Password: "hunter22", Confirm: "hunter22", Acknowledged: true})
		assert.Empty(t, errs)
	})

	t.Run("reports every failing field", func(t *testing.T) {
		t.Parallel()
		errs := ValidateForm(CreateForm{Name: "ab", Password: "short", Confirm: "other"})
		issues := Issues(errs)
		assert.Equal(t, "Vault name must be at least 3 characters", issues["Name"])
		assert.Equal(t, "Password must be at least 8 characters", issues["Password"])
		assert.Equal(t, "Passwords do not match", issues["Confirm"])
		assert.Equal(t, "Confirm that you understand how recovery works", issues["Acknowledged"])
	})

	t.Run("errors are typed", func(t *testing.T) {
		t.Parallel()
		errs := ValidateForm(CreateForm{})
		require.NotEmpty(t, errs)
		var ve *vkerrors.ValidationError
		require.True(t, errors.As(errs[0], &ve))
		assert.Equal(t, "Name", ve.Field)
		assert.Equal(t, "Vault name is required", ve.Message)
	})
}

func TestValidateImportForm(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ValidateForm(ImportForm{Name: "Cold", Phrase: phrase(24)}))

	issues := Issues(ValidateForm(ImportForm{Name: "Cold", Phrase: phrase(13)}))
	assert.Equal(t, map[string]string{"Phrase": "Recovery phrase must be 12 or 24 lowercase words"}, issues)

	issues = Issues(ValidateForm(ImportForm{Name: "Cold"}))
	assert.Equal(t, "Recovery phrase is required", issues["Phrase"])
}
