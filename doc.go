// Package blambda provides small building blocks for API Gateway backed Lambda functions.
//
// # Responses
//
// [Response] is the envelope a proxy integration expects: a status code, headers and a JSON body. Build one with
// [NewResponse] or one of the shorthands:
//
//	resp, err := blambda.OK(item, nil)                   // 200, body is the JSON of item
//	resp, err = blambda.Created(item, blambda.Headers{"Location": "/items/1"})
//	resp = blambda.NoContent(nil)                        // 204, empty body
//	resp = blambda.NotFound("", nil)                     // 404, {"message":"Not Found"}
//	resp = blambda.BadRequest("quantity must be positive", nil)
//
// Serializing the body is the only thing that can fail; the error of encoding/json is returned unchanged.
// Convert to the aws-lambda-go event types with [Response.Proxy] or [Response.ProxyV2].
//
// # Handlers and errors
//
// A [HandlerFunc] returns a [Response] or an error. [ToProxy] turns it into a function that can be passed to
// lambda.Start. Errors that carry a [Code], created with [NewError], become a response with that status:
//
//	return blambda.Response{}, blambda.NewError(blambda.CodeConflict, errors.New("order exists"))
//
// Client errors (4xx) expose the underlying message, server errors only the status text. Any other error is
// reported to the [Logger] and rendered as 500 Internal Server Error.
//
// # Middleware
//
// A [Middleware] wraps a HandlerFunc. [Wrap] applies several, the first one given being the outermost:
//
//	h := blambda.Wrap(orders.Route, bltrace.Middleware(tp, prop), bllog.Middleware(logs))
//	lambda.Start(blambda.ToProxy(h, bllog.ProxyLogger(logs)))
//
// [WithDeadlineBuffer] shortens the invocation deadline so a handler that runs out of time still returns a
// response instead of being cut off by the runtime.
//
// The sub packages cover the rest of a function: blenv validates configuration from the environment, bllog
// builds zap loggers that carry the current invocation, blaws keeps one AWS client per service and bltrace sets
// up OpenTelemetry.
package blambda
