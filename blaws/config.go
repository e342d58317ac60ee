package blaws

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const configTimeout = 10 * time.Second

// ConfigOption configures how the base AWS config is loaded.
type ConfigOption func(*configOptions)

type configOptions struct {
	tp      trace.TracerProvider
	prop    propagation.TextMapPropagator
	loadFns []func(*awsconfig.LoadOptions) error
}

// WithTracing instruments every client built from the config with OpenTelemetry. The provider and propagator are
// passed explicitly so no global state is involved.
func WithTracing(tp trace.TracerProvider, prop propagation.TextMapPropagator) ConfigOption {
	return func(o *configOptions) {
		o.tp, o.prop = tp, prop
	}
}

// WithLoadOptions passes options through to config.LoadDefaultConfig.
func WithLoadOptions(fns ...func(*awsconfig.LoadOptions) error) ConfigOption {
	return func(o *configOptions) {
		o.loadFns = append(o.loadFns, fns...)
	}
}

// LoadConfig loads the default AWS SDK v2 configuration: region and credentials from the Lambda environment.
// Loading is bounded by a timeout so a misconfigured credential chain cannot stall a cold start.
func LoadConfig(ctx context.Context, opts ...ConfigOption) (aws.Config, error) {
	var o configOptions
	for _, opt := range opts {
		opt(&o)
	}

	ctx, cancel := context.WithTimeout(ctx, configTimeout)
	defer cancel()

	cfg, err := awsconfig.LoadDefaultConfig(ctx, o.loadFns...)
	if err != nil {
		return cfg, err
	}

	if o.tp != nil {
		Instrument(&cfg, o.tp, o.prop)
	}

	return cfg, nil
}

// Instrument adds OpenTelemetry tracing to every client later built from cfg.
func Instrument(cfg *aws.Config, tp trace.TracerProvider, prop propagation.TextMapPropagator) {
	otelOpts := []otelaws.Option{otelaws.WithTracerProvider(tp)}
	if prop != nil {
		otelOpts = append(otelOpts, otelaws.WithTextMapPropagator(prop))
	}

	otelaws.AppendMiddlewares(&cfg.APIOptions, otelOpts...)
}
