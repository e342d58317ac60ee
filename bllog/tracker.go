package bllog

import (
	"context"
	"os"
	"sync/atomic"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// tracker is shared by every logger this package builds.
var tracker = newRequestTracker()

// TrackRequest records the Lambda invocation metadata carried by ctx. Every record emitted afterwards by a logger
// from this package, including loggers built earlier, carries that metadata until the next call.
func TrackRequest(ctx context.Context) {
	tracker.track(ctx)
}

type requestTracker struct {
	current atomic.Pointer[[]zap.Field]
}

func newRequestTracker() *requestTracker {
	return &requestTracker{}
}

func (t *requestTracker) track(ctx context.Context) {
	var fields []zap.Field
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		fields = append(fields,
			zap.String("aws_request_id", lc.AwsRequestID),
			zap.String("function_arn", lc.InvokedFunctionArn),
		)
	}

	if lambdacontext.FunctionName != "" {
		fields = append(fields,
			zap.String("function_name", lambdacontext.FunctionName),
			zap.String("function_version", lambdacontext.FunctionVersion),
			zap.Int("function_memory_size", lambdacontext.MemoryLimitInMB),
		)
	}

	if traceID := os.Getenv("_X_AMZN_TRACE_ID"); traceID != "" {
		fields = append(fields, zap.String("xray_trace_id", traceID))
	}

	t.current.Store(&fields)
}

func (t *requestTracker) fields() []zap.Field {
	if cur := t.current.Load(); cur != nil {
		return *cur
	}

	return nil
}

// trackingCore prepends the tracked invocation fields at write time.
type trackingCore struct {
	zapcore.Core
	tracker *requestTracker
}

func newTrackingCore(core zapcore.Core, t *requestTracker) zapcore.Core {
	return trackingCore{Core: core, tracker: t}
}

func (c trackingCore) With(fields []zapcore.Field) zapcore.Core {
	return trackingCore{Core: c.Core.With(fields), tracker: c.tracker}
}

func (c trackingCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}

	return ce
}

func (c trackingCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	if tracked := c.tracker.fields(); len(tracked) > 0 {
		fields = append(tracked[:len(tracked):len(tracked)], fields...)
	}

	return c.Core.Write(ent, fields)
}
