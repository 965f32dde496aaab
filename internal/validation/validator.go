package validation

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("upstream_url", validateUpstreamURL)
	_ = v.RegisterValidation("port", validatePort)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("env"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &Validator{validate: v}
}

// ValidateStruct validates a struct and flattens field errors into one error
// listing every offending field.
func (v *Validator) ValidateStruct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		messages = append(messages, fmt.Sprintf("%s %s", fe.Field(), FormatFieldError(fe)))
	}
	return errors.New(strings.Join(messages, "; "))
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "upstream_url":
		return "must be an absolute http(s) URL"
	case "port":
		return "must be a port number between 1 and 65535"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}

// validateUpstreamURL accepts an absolute http or https URL with a host
func validateUpstreamURL(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// validatePort validates a TCP port given either as a string or an integer
func validatePort(fl validator.FieldLevel) bool {
	var port int64
	switch fl.Field().Kind() {
	case reflect.String:
		if _, err := fmt.Sscanf(fl.Field().String(), "%d", &port); err != nil {
			return false
		}
		if fmt.Sprintf("%d", port) != fl.Field().String() {
			return false
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		port = fl.Field().Int()
	default:
		return false
	}
	return port > 0 && port <= 65535
}
