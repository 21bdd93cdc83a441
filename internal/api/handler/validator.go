package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hireproof/backcheck/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// Failures come back as a domain validation error carrying one message per
// failing field, which the central error handler renders as a 400 with an
// errors array.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()
	// Report fields by their JSON name so messages match the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return domain.Validation(msgs...)
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into the message the API
// contract promises for that field.
func fieldError(fe validator.FieldError) string {
	// Any failure inside the charges array collapses to one message.
	if strings.Contains(fe.Namespace(), "charges") {
		return "Invalid charges provided"
	}

	switch fe.Field() {
	case "name":
		return "Name is required."
	case "email":
		return "Please provide a valid email address."
	case "password":
		if fe.Tag() == "min" {
			return "Password must be at least 8 characters long."
		}
		return "Password is required."
	case "dob":
		return "Date of birth is required."
	case "phone":
		return "Phone number is required."
	case "zipcode":
		return "Zip code is required."
	case "social_security":
		return "Social security number is required."
	case "drivers_license":
		return "Driver's license is required."
	case "status":
		if fe.Tag() == "oneof" {
			return "Status must be either 'clear' or 'consider'."
		}
		return "Status is required."
	case "location":
		return "Location is required."
	case "date":
		return "Date is required."
	case "search_type":
		return "Search type is required."
	case "package":
		return "Package is required."
	case "turnaround_time":
		if fe.Tag() == "gt" {
			return "Turnaround time must be a positive number."
		}
		return "Turnaround time is required."
	}

	// Fields without a bespoke message fall back to a generic one.
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", fe.Field(), fe.Tag())
	}
}
