package service

import (
	"errors"
	"fmt"

	"coach-planner-backend/internal/database/models"
	apperrors "coach-planner-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the domain enum tags registered.
// Enum values such as "Defensa Central" contain spaces, so oneof cannot express them.
func NewValidator() *validator.Validate {
	v := validator.New()
	register := func(tag string, fn func(string) bool) {
		// RegisterValidation only fails on an empty tag or nil func
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		})
	}

	register("category", func(s string) bool { return models.Category(s).IsValid() })
	register("level", func(s string) bool { return models.Level(s).IsValid() })
	register("position", func(s string) bool { return models.Position(s).IsValid() })
	register("rating", func(s string) bool { return models.PlayerRating(s).IsValid() })
	register("trashtype", func(s string) bool { return models.TrashType(s).IsValid() })
	register("objectivetype", func(s string) bool { return models.ObjectiveType(s).IsValid() })
	register("chatrole", func(s string) bool { return models.ChatRole(s).IsValid() })

	return v
}

// validateRequest runs struct validation and maps failures to a ValidationError
func validateRequest(v *validator.Validate, req interface{}) error {
	if err := v.Struct(req); err != nil {
		return newValidationError(err)
	}
	return nil
}

func newValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		msg := fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("failed on the '%s=%s' rule", fe.Tag(), fe.Param())
		}
		return apperrors.NewValidationError(fe.Field(), msg)
	}
	return apperrors.NewValidationError("", err.Error())
}
