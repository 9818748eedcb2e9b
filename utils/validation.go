package utils

import (
	"eventra/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the domain binding tags ("role", "bookingstatus")
// to gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return models.ValidRole(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("bookingstatus", func(fl validator.FieldLevel) bool {
		return models.ValidBookingStatus(fl.Field().String())
	})
}
