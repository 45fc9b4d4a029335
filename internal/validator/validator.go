package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kinosvet/cinema-booking/internal/domain"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("seatkind", validateSeatKind)

	return validator
}

// validateSeatKind accepts only the bookable seat kinds. Disabled seats are
// part of a hall layout but must never appear in a booking request.
func validateSeatKind(fl validator.FieldLevel) bool {
	kind := domain.SeatKind(fl.Field().String())

	return kind.Bookable()
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "datetime":
		return fmt.Sprintf("must match the format %s", err.Param())
	case "seatkind":
		return "must be either 'standard' or 'vip'"
	default:
		return "is invalid"
	}
}
