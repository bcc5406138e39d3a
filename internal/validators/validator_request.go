// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// LocationBody is the first path element of errors found in a request body.
const LocationBody = "body"

// RequestValidator validates request payloads declared with `validate` tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a Validator that reports field errors using the
// `json` names of the struct fields.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return &RequestValidator{validate: v}
}

// Validate checks obj against its struct tags. When fields are given only
// those struct fields (by Go name) are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{
			Loc:  location(fe),
			Msg:  message(fe),
			Type: ruleType(fe),
		})
	}
	return out
}

// location turns "Credentials.username" into ["body", "username"].
func location(fe validator.FieldError) []string {
	path := strings.Split(fe.Namespace(), ".")
	if len(path) > 1 {
		path = path[1:]
	}
	return append([]string{LocationBody}, path...)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Field required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("String should have at least %s characters", fe.Param())
		}
		return fmt.Sprintf("Value should be greater than or equal to %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("String should have at most %s characters", fe.Param())
		}
		return fmt.Sprintf("Value should be less than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("Value failed the '%s' rule", fe.Tag())
	}
}

func ruleType(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "missing"
	case "min":
		if fe.Kind() == reflect.String {
			return "string_too_short"
		}
		return "greater_than_equal"
	case "max":
		if fe.Kind() == reflect.String {
			return "string_too_long"
		}
		return "less_than_equal"
	default:
		return fe.Tag()
	}
}
