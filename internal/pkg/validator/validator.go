package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vivemap/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Имена полей в ошибках берём из json тегов
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = validate.RegisterValidation("view", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseView(fl.Field().String())
		return err == nil
	})

	_ = validate.RegisterValidation("timeframe", func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		return v == "" || domain.IsValidTimeFrame(v)
	})

	_ = validate.RegisterValidation("flag", func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		return v == "" || domain.Flag(v).Valid()
	})
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}
