package wallet

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	vkerrors "github.com/alexisbeaulieu97/vaultkit/pkg/errors"
)

// CreateForm is what the create step collects.
type CreateForm struct {
	Name         string `validate:"required,min=3,max=32"`
	Password     string `validate:"required,min=8"`
	Confirm      string `validate:"required,eqfield=Password"`
	Acknowledged bool   `validate:"required"`
}

// ImportForm is what the import step collects.
type ImportForm struct {
	Name   string `validate:"required,min=3,max=32"`
	Phrase string `validate:"required,seed_phrase"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	wordPattern = regexp.MustCompile(`^[a-z]+$`)

	fieldLabels = map[string]string{
		"Name":         "Vault name",
		"Password":     "Password",
		"Confirm":      "Confirmation",
		"Acknowledged": "Acknowledgement",
		"Phrase":       "Recovery phrase",
	}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("seed_phrase", func(fl validator.FieldLevel) bool {
			return ValidPhrase(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// NormalizePhrase lowercases the phrase and collapses whitespace.
func NormalizePhrase(phrase string) string {
	return strings.Join(strings.Fields(strings.ToLower(phrase)), " ")
}

// PhraseWords returns the number of words in phrase.
func PhraseWords(phrase string) int {
	return len(strings.Fields(phrase))
}

// ValidPhrase reports whether phrase is 12 or 24 lowercase words.
func ValidPhrase(phrase string) bool {
	words := strings.Fields(phrase)
	if len(words) != 12 && len(words) != 24 {
		return false
	}
	for _, w := range words {
		if !wordPattern.MatchString(w) {
			return false
		}
	}
	return true
}

// ValidateForm checks form and returns one ValidationError per failing
// field, in declaration order.
func ValidateForm(form any) []error {
	err := validatorInstance().Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []error{vkerrors.NewValidationError("", err.Error(), err)}
	}

	out := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, vkerrors.NewValidationError(fe.Field(), fieldMessage(fe), fe))
	}
	return out
}

// Issues indexes validation errors by field.
func Issues(errs []error) map[string]string {
	issues := make(map[string]string, len(errs))
	for _, err := range errs {
		var ve *vkerrors.ValidationError
		if errors.As(err, &ve) {
			issues[ve.Field] = ve.Message
		}
	}
	return issues
}

func fieldMessage(fe validator.FieldError) string {
	label := fieldLabels[fe.Field()]
	if label == "" {
		label = fe.Field()
	}
	switch fe.Tag() {
	case "required":
		if fe.Field() == "Acknowledged" {
			return "Confirm that you understand how recovery works"
		}
		return label + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	case "eqfield":
		return "Passwords do not match"
	case "seed_phrase":
		return label + " must be 12 or 24 lowercase words"
	default:
		return label + " is invalid"
	}
}
