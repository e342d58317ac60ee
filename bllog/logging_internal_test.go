package bllog

import (
	"context"
	"testing"

	"github.com/advdv/blambda"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTrackingCore(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	tr := newRequestTracker()
	l := zap.New(newTrackingCore(core, tr)).With(zap.String("k", "v"))

	l.Info("before")
	tr.track(lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "r1"}))
	l.Info("after")
	l.Debug("filtered")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.NotContains(t, entries[0].ContextMap(), "aws_request_id")
	require.Equal(t, "v", entries[0].ContextMap()["k"])
	require.Equal(t, "r1", entries[1].ContextMap()["aws_request_id"])
	require.Equal(t, "v", entries[1].ContextMap()["k"])
}

func TestTrackerWithoutLambdaContext(t *testing.T) {
	t.Setenv("_X_AMZN_TRACE_ID", "")

	tr := newRequestTracker()
	require.Empty(t, tr.fields())

	tr.track(context.Background())
	require.Empty(t, tr.fields())
}

func TestLogTraceFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	Log(WithLogger(ctx, zap.New(core))).Info("correlated")
	Log(WithLogger(context.Background(), zap.New(core))).Info("plain")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", entries[0].ContextMap()["trace_id"])
	require.Equal(t, "00f067aa0ba902b7", entries[0].ContextMap()["span_id"])
	require.NotContains(t, entries[1].ContextMap(), "trace_id")
}

func TestLogWithoutLogger(t *testing.T) {
	require.NotNil(t, Log(context.Background()))
}

func TestMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	h := blambda.Wrap(func(ctx context.Context, _ events.APIGatewayProxyRequest) (blambda.Response, error) {
		Log(ctx).Info("handling")
		return blambda.NoContent(nil), nil
	}, Middleware(zap.New(core)))

	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "mw-1"})
	_, err := h(ctx, events.APIGatewayProxyRequest{})
	require.NoError(t, err)

	require.Equal(t, 1, logs.FilterMessage("handling").Len())
	require.Contains(t, tracker.fields(), zap.String("aws_request_id", "mw-1"))
}

func TestProxyLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ProxyLogger(zap.New(core)).LogUnhandledError(errors.New("boom"))

	entries := logs.FilterMessage("unhandled error").All()
	require.Len(t, entries, 1)
	require.Equal(t, "blambda", entries[0].LoggerName)
	require.Equal(t, "boom", entries[0].ContextMap()["error"])
}
