package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"

	"github.com/idelchi/gocred/internal/codegen"
)

// newValidator returns a validator with the gocred rules and their messages registered.
func newValidator() (*validator.Validator, error) {
	validate := validator.NewValidator()

	if err := registerExclusive(validate); err != nil {
		return nil, err
	}

	if err := validate.RegisterValidationAndTranslation(
		"identifier",
		validateIdentifier,
		"{0} must start with a letter or underscore and contain only letters, digits and underscores",
	); err != nil {
		return nil, fmt.Errorf("registering identifier validation: %w", err)
	}

	if err := validate.RegisterValidationAndTranslation(
		"dialect",
		validateDialect,
		"{0} must be one of ["+strings.Join(codegen.DialectNames(), " ")+"]",
	); err != nil {
		return nil, fmt.Errorf("registering dialect validation: %w", err)
	}

	return validate, nil
}

// registerExclusive adds a custom validator ensuring two fields are mutually exclusive.
// Fields are reported by their flag label.
func registerExclusive(validate *validator.Validator) error {
	if err := validate.RegisterValidationAndTranslation(
		"exclusive",
		validateExclusive,
		"{0} is mutually exclusive",
	); err != nil {
		return fmt.Errorf("registering exclusive validation: %w", err)
	}

	validate.Validator().RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	return nil
}

// validateExclusive checks if two fields are mutually exclusive.
// Returns false if both fields have non-empty values.
func validateExclusive(fl validator.FieldLevel) bool {
	otherFieldName := fl.Param()
	field := fl.Field()
	otherField := fl.Parent().FieldByName(otherFieldName)

	if !field.IsValid() || !otherField.IsValid() {
		return true
	}

	if field.Kind() == reflect.String && otherField.Kind() == reflect.String {
		return field.String() == "" || otherField.String() == ""
	}

	return true
}

func validateIdentifier(fl validator.FieldLevel) bool {
	return codegen.IsValidIdentifier(fl.Field().String())
}

func validateDialect(fl validator.FieldLevel) bool {
	_, err := codegen.LookupDialect(fl.Field().String())

	return err == nil
}
