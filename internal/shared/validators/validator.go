package validators

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a new validator instance.
func New() *Validate {
	return validator.New()
}

// NewJSON creates a validator that reports fields by their json names,
// so request validation errors match the payload the client sent.
func NewJSON() *Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// Describe renders validation errors as "field (tag=param)" joined by ", ".
func Describe(err error) string {
	ve, ok := err.(ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(ve))
	for _, e := range ve {
		if e.Param() != "" {
			parts = append(parts, e.Field()+" ("+e.Tag()+"="+e.Param()+")")
		} else {
			parts = append(parts, e.Field()+" ("+e.Tag()+")")
		}
	}
	return strings.Join(parts, ", ")
}
