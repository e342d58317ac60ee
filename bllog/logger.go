// Package bllog wraps zap for Lambda functions: a lazily built logger per wrapper, a process-wide request tracker
// that stamps invocation metadata on every record, and context helpers for trace-correlated logging.
package bllog

import (
	"os"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Format selects how records are encoded.
type Format string

const (
	// FormatJSON encodes records as JSON, suitable for CloudWatch.
	FormatJSON Format = "json"
	// FormatPretty encodes records for humans, suitable for local development.
	FormatPretty Format = "pretty"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	switch Format(text) {
	case FormatJSON, FormatPretty:
		*f = Format(text)
		return nil
	default:
		return errors.Newf("unsupported log format %q (supported: json, pretty)", text)
	}
}

type config struct {
	enabled bool
	level   zapcore.Level
	format  Format
	output  zapcore.WriteSyncer
}

// Option configures a Logger.
type Option func(*config)

// WithEnabled turns logging on or off. Enabled by default.
func WithEnabled(enabled bool) Option {
	return func(c *config) { c.enabled = enabled }
}

// WithLevel sets the minimum level: debug, info (default), warn or error. Levels outside that range are
// clamped to it.
func WithLevel(level zapcore.Level) Option {
	return func(c *config) { c.level = min(max(level, zapcore.DebugLevel), zapcore.ErrorLevel) }
}

// WithFormat sets the encoding. Defaults to [FormatJSON].
func WithFormat(format Format) Option {
	return func(c *config) { c.format = format }
}

// WithOutput sets where records are written. Defaults to stdout.
func WithOutput(w zapcore.WriteSyncer) Option {
	return func(c *config) { c.output = w }
}

// Logger builds a zap logger on first use and keeps it for its own lifetime.
type Logger struct {
	cfg config

	once sync.Once
	inst *zap.Logger
}

// New captures the options. Nothing is built until [Logger.Instance] is called.
func New(opts ...Option) *Logger {
	cfg := config{
		enabled: true,
		level:   zapcore.InfoLevel,
		format:  FormatJSON,
		output:  zapcore.Lock(os.Stdout),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Logger{cfg: cfg}
}

// Instance returns the underlying logger, building it on the first call.
func (l *Logger) Instance() *zap.Logger {
	l.once.Do(func() {
		l.inst = build(l.cfg, tracker)
	})

	return l.inst
}

func build(cfg config, t *requestTracker) *zap.Logger {
	if !cfg.enabled {
		return zap.NewNop()
	}

	var enc zapcore.Encoder
	switch cfg.format {
	case FormatPretty:
		ecfg := zap.NewDevelopmentEncoderConfig()
		ecfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(ecfg)
	default:
		ecfg := zap.NewProductionEncoderConfig()
		ecfg.TimeKey = "timestamp"
		ecfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(ecfg)
	}

	core := zapcore.NewCore(enc, cfg.output, zap.NewAtomicLevelAt(cfg.level))

	return zap.New(newTrackingCore(core, t), zap.AddCaller())
}
