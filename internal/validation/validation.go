// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package validation wraps go-playground/validator with the project's
// custom tags and turns its failures into field-level errors that can be
// written straight to a JSON response.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"devblog/internal/slug"
)

// FieldError describes one invalid input field, named by its JSON key.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the set of field failures for one input.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// New returns a validator that reports JSON field names and knows the
// "slug" and "notblank" tags.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slug.Valid(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Check validates s. Field failures come back as Errors; anything else
// (a nil or non-struct argument) is returned unchanged.
func Check(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

// Fields extracts field errors from err, or nil when err carries none.
func Fields(err error) Errors {
	var verrs Errors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

func message(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return name + " is required"
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must have at most %s items", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
	case "url":
		return name + " must be a valid URL"
	case "slug":
		return name + " must be lowercase letters and digits separated by single hyphens"
	case "number", "numeric":
		return name + " must be a non-negative integer"
	default:
		return name + " is invalid"
	}
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
