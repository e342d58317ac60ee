package blenv

import (
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// ValidationErrorPrefix starts the message of every [ValidationError].
const ValidationErrorPrefix = "configuration validation failed"

// FieldError describes one field that failed validation.
type FieldError struct {
	// Path is the environment variable name, prefix included.
	Path   string
	Reason string
}

func (f FieldError) String() string {
	return f.Path + ": " + f.Reason
}

// ValidationError is returned when the environment does not satisfy the schema.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return ValidationErrorPrefix + ": " + strings.Join(lo.Map(e.Fields, func(f FieldError, _ int) string {
		return f.String()
	}), "; ")
}

// fromParseError turns the aggregate error of the env parser into a ValidationError. It returns false when any of
// the aggregated errors is not about a specific field, in which case the caller returns the original error.
func fromParseError(err error, keys fieldKeys) (*ValidationError, bool) {
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return nil, false
	}

	verr := &ValidationError{}
	for _, e := range agg.Errors {
		var (
			notSet   env.EnvVarIsNotSetError
			empty    env.EmptyEnvVarError
			parseErr env.ParseError
		)

		switch {
		case errors.As(e, &notSet):
			verr.Fields = append(verr.Fields, FieldError{Path: notSet.Key, Reason: "required environment variable is not set"})
		case errors.As(e, &empty):
			verr.Fields = append(verr.Fields, FieldError{Path: empty.Key, Reason: "environment variable should not be empty"})
		case errors.As(e, &parseErr):
			verr.Fields = append(verr.Fields, FieldError{Path: keys.forName(parseErr.Name), Reason: parseErr.Err.Error()})
		default:
			return nil, false
		}
	}

	return verr, len(verr.Fields) > 0
}

// fromRuleErrors turns validator rule failures into a ValidationError.
func fromRuleErrors(err error, keys fieldKeys) (*ValidationError, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	return &ValidationError{Fields: lo.Map(verrs, func(fe validator.FieldError, _ int) FieldError {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}

		return FieldError{Path: keys.forNamespace(fe.StructNamespace(), fe.Namespace()), Reason: "must satisfy " + rule}
	})}, true
}

// fieldPath strips the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return ns
}
