package blenv

import (
	"maps"
	"os"
	"reflect"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures validation.
type Option func(*options)

type options struct {
	environ func() (map[string]string, error)
	dotenv  []string
	prefix  string
	parsers map[reflect.Type]env.ParserFunc
}

func newOptions(opts ...Option) *options {
	o := &options{
		environ: processEnviron,
		parsers: map[reflect.Type]env.ParserFunc{},
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// WithEnvironment replaces the process environment as the validation input. The function is called on every
// validation so a Refresh observes its latest result.
func WithEnvironment(fn func() map[string]string) Option {
	return func(o *options) {
		o.environ = func() (map[string]string, error) { return fn(), nil }
	}
}

// WithDotenv loads the given dotenv files underneath the environment: variables that are already set take
// precedence over values from the files. Errors reading the files are returned unchanged by Get and Refresh.
func WithDotenv(files ...string) Option {
	return func(o *options) {
		o.dotenv = append(o.dotenv, files...)
	}
}

// WithPrefix prepends prefix to every environment variable name of the schema.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithParser registers a transform for fields of type V.
func WithParser[V any](parse func(raw string) (V, error)) Option {
	return func(o *options) {
		o.parsers[reflect.TypeFor[V]()] = func(raw string) (any, error) {
			return parse(raw)
		}
	}
}

func processEnviron() (map[string]string, error) {
	return env.ToMap(os.Environ()), nil
}

// load resolves the environment the schema is validated against.
func (o *options) load() (map[string]string, error) {
	environ, err := o.environ()
	if err != nil {
		return nil, err
	}

	if len(o.dotenv) == 0 {
		return environ, nil
	}

	merged, err := godotenv.Read(o.dotenv...)
	if err != nil {
		return nil, err
	}

	maps.Copy(merged, environ)

	return merged, nil
}

func (o *options) envOptions(environ map[string]string) env.Options {
	return env.Options{
		Environment: environ,
		Prefix:      o.prefix,
		FuncMap:     o.parsers,
	}
}
