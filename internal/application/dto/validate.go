package dto

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator construye el validador con nombres de campo tomados del tag json,
// para que los mensajes de error hablen el idioma del API y no el de los structs.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// Validate corre las reglas de los tags validate sobre el DTO.
func Validate(dest any) error {
	return validate.Struct(dest)
}
