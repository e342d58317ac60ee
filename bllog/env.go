package bllog

import (
	"github.com/advdv/blambda/blenv"
	"go.uber.org/zap/zapcore"
)

// Env reads logger options from the environment. Use it with [blenv.Manager] or embed it in a larger schema.
type Env struct {
	Enabled blenv.StrictBool `env:"BL_LOG_ENABLED" envDefault:"true"`
	Level   zapcore.Level    `env:"BL_LOG_LEVEL" envDefault:"info" validate:"gte=-1,lte=2"`
	Format  Format           `env:"BL_LOG_FORMAT" envDefault:"json"`
}

// Options converts the environment into logger options.
func (e Env) Options() []Option {
	return []Option{
		WithEnabled(bool(e.Enabled)),
		WithLevel(e.Level),
		WithFormat(e.Format),
	}
}

// FromEnv validates the logger environment and returns a Logger configured from it.
func FromEnv(opts ...blenv.Option) (*Logger, error) {
	env, err := blenv.NewManager[Env](opts...).Get()
	if err != nil {
		return nil, err
	}

	return New(env.Options()...), nil
}
