package blenv

import (
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

var rules = newRuleValidator()

// newRuleValidator reports rule failures under the environment variable name of the field.
func newRuleValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("env"), ",")
		if name == "" {
			return f.Name
		}

		return name
	})

	return v
}

// Validate parses environ into a new T and checks its rules. Field failures are reported together as a
// [*ValidationError]; any other error is returned unchanged.
func Validate[T any](environ map[string]string, opts ...Option) (*T, error) {
	return validate[T](newOptions(opts...), environ)
}

func validate[T any](o *options, environ map[string]string) (*T, error) {
	cfg := new(T)
	if err := env.ParseWithOptions(cfg, o.envOptions(environ)); err != nil {
		if verr, ok := fromParseError(err, resolveKeys[T](o, environ)); ok {
			return nil, verr
		}

		return nil, err
	}

	if err := rules.Struct(cfg); err != nil {
		if verr, ok := fromRuleErrors(err, resolveKeys[T](o, environ)); ok {
			return nil, verr
		}

		return nil, err
	}

	return cfg, nil
}
