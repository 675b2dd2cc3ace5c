package config

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registered once at start-up with a static tag; an error here is a bug.
	if err := v.RegisterValidation("fen", func(fl validator.FieldLevel) bool {
		_, err := engine.ParseFEN(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !stderrors.As(err, &errs) {
		return fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}

	var details strings.Builder
	for _, fe := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch fe.Tag() {
		case "required":
			fmt.Fprintf(&details, "%s is required", fe.Namespace())
		case "min":
			fmt.Fprintf(&details, "%s must be at least %s", fe.Namespace(), fe.Param())
		case "max":
			if fe.Kind() == reflect.String {
				fmt.Fprintf(&details, "%s must be at most %s characters", fe.Namespace(), fe.Param())
			} else {
				fmt.Fprintf(&details, "%s must be at most %s", fe.Namespace(), fe.Param())
			}
		case "fen":
			fmt.Fprintf(&details, "%s is not a valid FEN string", fe.Namespace())
		default:
			fmt.Fprintf(&details, "%s failed %s validation", fe.Namespace(), fe.Tag())
		}
	}
	return fmt.Errorf("%s: %w", details.String(), errors.ErrInvalidConfig)
}
