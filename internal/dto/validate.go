package dto

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Money fields reach validation as their sign, checked by the positive and nonnegative tags.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.Sign()
		}
		return nil
	}, decimal.Decimal{})
	v.RegisterValidation("positive", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() > 0
	})
	v.RegisterValidation("nonnegative", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() >= 0
	})
	return v
}

// Validate checks a request DTO against its validate tags.
func Validate(req interface{}) error {
	return validate.Struct(req)
}
