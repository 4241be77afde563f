package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/farmsight/server/internal/models"
)

// SetupValidator registers custom binding validators. The activity enums
// contain spaces, which rules out the builtin oneof tag.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("activitytype", func(fl validator.FieldLevel) bool {
		return models.ValidActivityType(fl.Field().String())
	})
	v.RegisterValidation("activitystatus", func(fl validator.FieldLevel) bool {
		return models.ValidActivityStatus(fl.Field().String())
	})
}
