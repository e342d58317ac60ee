package blambda

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/events"
)

// DefaultDeadlineBuffer is the time reserved before the invocation deadline for rendering an error response.
const DefaultDeadlineBuffer = 500 * time.Millisecond

// WithDeadlineBuffer returns middleware that moves the context deadline set by the Lambda runtime forward by
// buffer, so handlers and downstream calls give up while there is still time to respond. Contexts without a
// deadline, or with one that is closer than buffer, are passed on unchanged. A buffer <= 0 means
// DefaultDeadlineBuffer.
func WithDeadlineBuffer(buffer time.Duration) Middleware {
	if buffer <= 0 {
		buffer = DefaultDeadlineBuffer
	}

	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, req events.APIGatewayProxyRequest) (Response, error) {
			if deadline, ok := ctx.Deadline(); ok {
				if adjusted := deadline.Add(-buffer); time.Until(adjusted) > 0 {
					var cancel context.CancelFunc
					ctx, cancel = context.WithDeadline(ctx, adjusted)
					defer cancel()
				}
			}

			return next(ctx, req)
		}
	}
}

// RemainingTime returns the time until the context deadline, or 0 if there is none or it passed.
func RemainingTime(ctx context.Context) time.Duration {
	deadline, ok := ctx.Deadline()
	if !ok {
		return 0
	}

	return max(time.Until(deadline), 0)
}
