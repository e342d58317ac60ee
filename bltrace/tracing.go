// Package bltrace sets up OpenTelemetry tracing for Lambda functions.
//
// Spans are exported to stdout during development or to the X-Ray daemon over UDP inside Lambda. The
// propagator follows the exporter: X-Ray headers for "xrayudp", W3C TraceContext and Baggage otherwise.
package bltrace

import (
	"context"
	"time"

	"github.com/aws-observability/aws-otel-go/exporters/xrayudp"
	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/detectors/aws/lambda"
	"go.opentelemetry.io/contrib/propagators/aws/xray"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const initTimeout = 5 * time.Second

// Exporter names.
const (
	ExporterStdout  = "stdout"
	ExporterXRayUDP = "xrayudp"
)

// NewTracerProvider creates a tracer provider for env.Exporter. The caller owns shutdown.
func NewTracerProvider(ctx context.Context, env Env) (*sdktrace.TracerProvider, error) {
	ctx, cancel := context.WithTimeout(ctx, initTimeout)
	defer cancel()

	exporter, err := newExporter(ctx, env.Exporter)
	if err != nil {
		return nil, err
	}

	res, err := newResource(ctx, env.Exporter, env.ServiceName, env.LogGroups...)
	if err != nil {
		return nil, err
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
		sdktrace.WithResource(res),
	}
	if env.Exporter == ExporterXRayUDP {
		opts = append(opts, sdktrace.WithIDGenerator(xray.NewIDGenerator()))
	}

	return sdktrace.NewTracerProvider(opts...), nil
}

// NewPropagator returns the propagator matching env.Exporter.
func NewPropagator(env Env) propagation.TextMapPropagator {
	if env.Exporter == ExporterXRayUDP {
		return xray.Propagator{}
	}

	return propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
}

func newExporter(ctx context.Context, exporterType string) (sdktrace.SpanExporter, error) {
	switch exporterType {
	case ExporterStdout, "":
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	case ExporterXRayUDP:
		return xrayudp.NewSpanExporter(ctx)
	default:
		return nil, errors.Newf("unsupported exporter: %q (supported: stdout, xrayudp)", exporterType)
	}
}

// newResource describes the function. Inside Lambda the resource detector fills in the function attributes and
// the log groups are attached for X-Ray log correlation.
func newResource(ctx context.Context, exporterType, serviceName string, logGroups ...string) (*resource.Resource, error) {
	if exporterType == ExporterXRayUDP {
		res, err := lambda.NewResourceDetector().Detect(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "detect lambda resource")
		}

		return withAdditionalLogGroups(ctx, res, logGroups...)
	}

	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
	), nil
}

// withAdditionalLogGroups merges non-empty log group names into aws.log.group.names.
func withAdditionalLogGroups(ctx context.Context, base *resource.Resource, logGroups ...string) (*resource.Resource, error) {
	var filtered []string
	for _, lg := range logGroups {
		if lg != "" {
			filtered = append(filtered, lg)
		}
	}
	if len(filtered) == 0 {
		return base, nil
	}

	custom, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.StringSlice("aws.log.group.names", filtered),
		),
	)
	if err != nil {
		return nil, err
	}

	return resource.Merge(base, custom)
}
