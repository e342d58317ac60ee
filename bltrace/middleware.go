package bltrace

import (
	"context"
	"net/http"

	"github.com/advdv/blambda"
	"github.com/aws/aws-lambda-go/events"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/advdv/blambda/bltrace"

// Middleware starts a server span for every request, continuing the trace found in the request headers.
// Requests for excludePaths are not traced.
func Middleware(
	tp trace.TracerProvider, prop propagation.TextMapPropagator, excludePaths ...string,
) blambda.Middleware {
	excluded := make(map[string]struct{}, len(excludePaths))
	for _, p := range excludePaths {
		excluded[p] = struct{}{}
	}

	tracer := tp.Tracer(tracerName)

	return func(next blambda.HandlerFunc) blambda.HandlerFunc {
		return func(ctx context.Context, req events.APIGatewayProxyRequest) (blambda.Response, error) {
			if _, skip := excluded[req.Path]; skip {
				return next(ctx, req)
			}

			ctx = prop.Extract(ctx, propagation.MapCarrier(req.Headers))
			ctx, span := tracer.Start(ctx, req.HTTPMethod+" "+req.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					semconv.HTTPRequestMethodKey.String(req.HTTPMethod),
					semconv.URLPath(req.Path),
				))
			defer span.End()

			resp, err := next(ctx, req)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())

				return resp, err
			}

			span.SetAttributes(semconv.HTTPResponseStatusCode(resp.StatusCode))
			if resp.StatusCode >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
			}

			return resp, nil
		}
	}
}
