package bllog

import (
	"context"

	"github.com/advdv/blambda"
	"github.com/aws/aws-lambda-go/events"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ctxKey is the key type for context values.
type ctxKey int

const ctxKeyLogger ctxKey = iota

// WithLogger returns a copy of ctx that carries l.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKeyLogger, l)
}

// Log returns a trace-correlated logger from the context. Falls back to the global zap logger when the context
// carries none.
func Log(ctx context.Context) *zap.Logger {
	l, ok := ctx.Value(ctxKeyLogger).(*zap.Logger)
	if !ok {
		l = zap.L()
	}

	return l.With(traceFields(ctx)...)
}

// traceFields extracts trace_id and span_id from the context for log correlation.
func traceFields(ctx context.Context) []zap.Field {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return nil
	}
	sc := span.SpanContext()
	return []zap.Field{
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
	}
}

// Middleware tracks the invocation and puts l on the context of every request.
func Middleware(l *zap.Logger) blambda.Middleware {
	return func(next blambda.HandlerFunc) blambda.HandlerFunc {
		return func(ctx context.Context, req events.APIGatewayProxyRequest) (blambda.Response, error) {
			TrackRequest(ctx)
			return next(WithLogger(ctx, l), req)
		}
	}
}

type zapLogger struct{ *zap.Logger }

func (l zapLogger) LogUnhandledError(err error) {
	l.Logger.Error("unhandled error", zap.Error(err))
}

// ProxyLogger reports errors swallowed by [blambda.ToProxy] to l.
func ProxyLogger(l *zap.Logger) blambda.Logger {
	return zapLogger{l.Named("blambda")}
}
