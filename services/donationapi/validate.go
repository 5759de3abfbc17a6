package donationapi

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError blocks a step advance. Message is what the donor sees,
// Tag is the machine-readable classification.
type ValidationError struct {
	Field   string
	Tag     string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func newValidationError(field string, tag string, format string, args ...any) ValidationError {
	return ValidationError{
		Field:   field,
		Tag:     tag,
		Message: fmt.Sprintf(format, args...),
	}
}

// ValidateAmount guards the step 1 -> 2 transition.
func ValidateAmount(amountInCents int) error {
	if amountInCents < MinAmountInCents {
		return newValidationError("amount", "AmountOutOfRange",
			"the minimum donation is %s", FormatCOP(MinAmountInCents))
	}
	if amountInCents > MaxAmountInCents {
		return newValidationError("amount", "AmountOutOfRange",
			"the maximum donation is %s", FormatCOP(MaxAmountInCents))
	}
	return nil
}

// ValidateDonor guards the step 2 -> 3 transition. Fields are checked in a
// fixed order and the first failing field is reported.
func ValidateDonor(d DonorInfo) error {
	if err := validate.Var(d.IDNumber, "required"); err != nil {
		return newValidationError("idNumber", "Required", "please provide your identification number")
	}
	if err := validate.Var(d.FirstName, "required"); err != nil {
		return newValidationError("firstName", "Required", "please provide your first name")
	}
	if err := validate.Var(d.LastName, "required"); err != nil {
		return newValidationError("lastName", "Required", "please provide your last name")
	}
	if err := validate.Var(d.Email, "required,email"); err != nil {
		return newValidationError("email", "InvalidEmail", "please provide a valid email address")
	}
	if err := validate.Var(d.Country, "required"); err != nil {
		return newValidationError("country", "Required", "please provide your country")
	}
	return nil
}
