package dto

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/spec-kit/employee-service/pkg/util/errorutil"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Custom rules mirroring the field contract: phone must match the
	// digit pattern, beforetoday requires a date strictly in the past.
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("beforetoday", func(fl validator.FieldLevel) bool {
		parsed, err := time.Parse(DateLayout, fl.Field().String())
		if err != nil {
			return false
		}
		today := time.Now().UTC().Truncate(24 * time.Hour)
		return parsed.Before(today)
	})
	return v
}

// Validate runs struct validation and folds failures into a single
// ValidationFailure error with per-field details.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	details := make(map[string]any, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details[fieldErr.Field()] = fieldErr.Tag()
	}
	return apperrors.NewValidationError("validation failed", details)
}
