package utils

import (
	"tasksahead/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	Validate.RegisterValidation("priority", ValidatePriorityRule)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("priority", ValidatePriorityRule)
	}
}

// ValidatePriorityRule accepts only the three known priority levels.
func ValidatePriorityRule(fl validator.FieldLevel) bool {
	return model.ValidPriority(model.Priority(fl.Field().String()))
}
