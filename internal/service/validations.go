package service

import (
	"errors"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/Dustin-Locke/HealthAndwellness/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
	})
}

// validateStruct joins every field error with ErrValidation so callers can
// match it with errors.Is.
func validateStruct(v any) error {
	InitValidator()
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		joined := []error{errorvalues.ErrValidation}
		for _, fieldErr := range validationErrors {
			joined = append(joined, fieldErr)
		}
		return errors.Join(joined...)
	}
	return errors.Join(errorvalues.ErrValidation, errors.New("validation unexpected error: "+err.Error()))
}
