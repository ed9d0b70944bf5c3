// Package validate holds the shared field validators used by every
// resource service: the policy/license number patterns, calendar dates,
// and the conversion of validator failures into structured per-field
// errors suitable for API responses.
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// 2-3 lowercase letters followed by 1-6 digits.
	policyNumberRe = regexp.MustCompile(`^[a-z]{2,3}[0-9]{1,6}$`)
	// 2-3 lowercase letters followed by 1-8 digits.
	licenseNumberRe = regexp.MustCompile(`^[a-z]{2,3}[0-9]{1,8}$`)
)

// New builds a validator with the custom field rules registered. Field
// names in errors come from the json tag so they match the wire format.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("policy_number", func(fl validator.FieldLevel) bool {
		return policyNumberRe.MatchString(fl.Field().String())
	})
	v.RegisterValidation("license_number", func(fl validator.FieldLevel) bool {
		return licenseNumberRe.MatchString(fl.Field().String())
	})

	return v
}

// FieldError describes one failed constraint on one field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Errors is the structured validation failure returned to API callers.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fmt.Sprintf("field %s %s", fe.Field, fe.Message))
	}
	return strings.Join(msgs, ", ")
}

// Struct validates s and converts any constraint failures into Errors.
func Struct(v *validator.Validate, s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Rule:    fe.ActualTag(),
			Message: messageFor(fe),
		})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required":
		return "is required"
	case "datetime":
		return "must be a calendar date in YYYY-MM-DD form"
	case "policy_number":
		return "must match ^[a-z]{2,3}\\d{1,6}$"
	case "license_number":
		return "must match ^[a-z]{2,3}\\d{1,8}$"
	default:
		return "is invalid"
	}
}
