package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"github.com/grindlemire/go-overlay"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator with the
// overlay-specific tags registered.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their YAML names.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("placement", func(fl validator.FieldLevel) bool {
			_, err := overlay.ParsePlacement(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("trapmode", func(fl validator.FieldLevel) bool {
			_, err := overlay.ParseTrapMode(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("action", func(fl validator.FieldLevel) bool {
			_, err := overlay.ParseAction(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("keyspec", func(fl validator.FieldLevel) bool {
			_, err := overlay.ParseKeyPattern(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
			_, err := language.Parse(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation on a loaded file.
func Validate(f *File) error {
	if f == nil {
		return NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(f); err != nil {
		return convertValidationError(err)
	}

	if p := f.Placement; p != nil && p.DisableFallbacks && len(p.Fallbacks) > 0 {
		return NewValidationError("placement.fallbacks", "fallbacks are listed but disable_fallbacks is set", nil)
	}

	if _, err := f.Bindings(); err != nil {
		return err
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%q failed validation for tag '%s'", fmt.Sprint(ve.Value()), ve.Tag())
		return NewValidationError(field, msg, err)
	}

	return NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the namespace, leaving
// a path such as "keys[0].mode".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
