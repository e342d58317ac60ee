package blambda

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
)

// HandlerFunc handles an API Gateway proxy request and returns a response envelope or an error.
type HandlerFunc func(ctx context.Context, req events.APIGatewayProxyRequest) (Response, error)

// ProxyHandlerFunc has the signature expected by lambda.Start for REST API proxy integrations.
type ProxyHandlerFunc func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// ToProxy converts h into a handler that can be passed to lambda.Start. Errors returned by h never reach the Lambda
// runtime: errors carrying a [Code] are rendered with [ErrorResponse], any other error is reported to logs and
// rendered as a 500 so the client never receives the runtime's generic error payload.
func ToProxy(h HandlerFunc, logs Logger) ProxyHandlerFunc {
	if logs == nil {
		logs = NewStdLogger(nil)
	}

	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		resp, err := h(ctx, req)
		if err != nil {
			if CodeOf(err) == CodeUnknown {
				logs.LogUnhandledError(err)
			}

			resp = ErrorResponse(err, nil)
		}

		return resp.Proxy(), nil
	}
}
