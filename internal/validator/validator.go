// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"slices"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"catalog/internal/viewstate"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("sort_key", validateSortKey)
		_ = v.RegisterValidation("sort_direction", validateSortDirection)
		_ = v.RegisterValidation("action_type", validateActionType)
	}
}

func validateSortKey(fl validator.FieldLevel) bool {
	_, err := viewstate.ParseSortKey(fl.Field().String())
	return err == nil
}

func validateSortDirection(fl validator.FieldLevel) bool {
	_, err := viewstate.ParseSortDirection(fl.Field().String())
	return err == nil
}

func validateActionType(fl validator.FieldLevel) bool {
	return slices.Contains(viewstate.ActionTypes, viewstate.ActionType(fl.Field().String()))
}
