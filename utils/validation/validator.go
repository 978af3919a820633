package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	// EmailRegex is a simple email validation regex
	EmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// Base64Regex matches raw base64 content (no data: URI prefix)
	Base64Regex = regexp.MustCompile(`^[A-Za-z0-9+/]+={0,2}$`)
)

const (
	// MaxImageBytes is the decoded image size ceiling (5 MiB)
	MaxImageBytes = 5 << 20

	// MaxImageBase64Len caps the encoded payload before decoding
	MaxImageBase64Len = 7_000_000
)

// Validator wraps the go-playground validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator that reports errors under JSON field
// names and knows the domain-specific rules (RFC3339 timestamps, raw
// base64 image payloads).
func NewValidator() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("rfc3339", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(time.RFC3339, fl.Field().String())
		return err == nil
	})

	_ = v.RegisterValidation("base64image", func(fl validator.FieldLevel) bool {
		return Base64Regex.MatchString(fl.Field().String())
	})

	return &Validator{
		validate: v,
	}
}

// ValidateStruct validates a struct using struct tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationErrors converts validation errors to a field-path map
// with every violation included, not just the first.
func FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = fmt.Sprintf("%s is required", field)
			case "required_with":
				errors[field] = fmt.Sprintf("%s must be provided together with %s", field, strings.ToLower(e.Param()[:1])+e.Param()[1:])
			case "email":
				errors[field] = "Invalid email format"
			case "min":
				errors[field] = fmt.Sprintf("%s must be at least %s characters", field, e.Param())
			case "max":
				errors[field] = fmt.Sprintf("%s must be at most %s characters", field, e.Param())
			case "gt":
				errors[field] = fmt.Sprintf("%s must be greater than %s", field, e.Param())
			case "gte":
				errors[field] = fmt.Sprintf("%s must be greater than or equal to %s", field, e.Param())
			case "lte":
				errors[field] = fmt.Sprintf("%s must be less than or equal to %s", field, e.Param())
			case "oneof":
				errors[field] = fmt.Sprintf("%s must be one of: %s", field, e.Param())
			case "rfc3339":
				errors[field] = fmt.Sprintf("%s must be an ISO-8601 UTC timestamp", field)
			case "base64image":
				errors[field] = "Invalid base64 content"
			default:
				errors[field] = fmt.Sprintf("%s is invalid", field)
			}
		}
	}

	return errors
}

// ValidateEmail checks if an email is valid
func ValidateEmail(email string) bool {
	if len(email) < 3 || len(email) > 254 {
		return false
	}
	return EmailRegex.MatchString(email)
}

// DecodedSize returns the byte size a raw base64 payload decodes to.
func DecodedSize(b64 string) int {
	n := len(b64) / 4 * 3
	if strings.HasSuffix(b64, "==") {
		n -= 2
	} else if strings.HasSuffix(b64, "=") {
		n--
	}
	return n
}

// ParseUTC parses an RFC3339 timestamp and normalizes it to UTC.
func ParseUTC(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
