// Package blawstest provides test helpers for code that uses blaws clients.
//
// A [Stub] produces an aws.Config whose clients never reach the network: every operation is answered by a
// responder function and its input is recorded.
//
// Example:
//
//	stub := blawstest.New(func(_ context.Context, in any) (any, error) {
//	    return &sns.PublishOutput{MessageId: aws.String("m-1")}, nil
//	})
//	reg := blaws.NewRegistry()
//	reg.InitSNS(stub.Config())
package blawstest

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/smithy-go/middleware"
)

// Responder answers an operation input with the operation output, e.g. *sns.PublishInput with
// *sns.PublishOutput.
type Responder func(ctx context.Context, in any) (any, error)

// Stub records operation inputs and answers them with a Responder.
type Stub struct {
	respond Responder

	mu    sync.Mutex
	calls []any
}

// New inits a stub answering with respond.
func New(respond Responder) *Stub {
	return &Stub{respond: respond}
}

// Returning creates a stub that answers every operation with out.
func Returning(out any) *Stub {
	return New(func(context.Context, any) (any, error) { return out, nil })
}

// Failing creates a stub that fails every operation with err.
func Failing(err error) *Stub {
	return New(func(context.Context, any) (any, error) { return nil, err })
}

// Config returns a config for constructing SDK clients that are answered by the stub.
func (s *Stub) Config() aws.Config {
	return aws.Config{
		Region:      "us-east-1",
		Credentials: aws.AnonymousCredentials{},
		APIOptions:  []func(*middleware.Stack) error{s.install},
	}
}

// Calls returns the recorded operation inputs in call order.
func (s *Stub) Calls() []any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]any(nil), s.calls...)
}

func (s *Stub) install(stack *middleware.Stack) error {
	return stack.Initialize.Add(middleware.InitializeMiddlewareFunc("blawstest.Stub",
		func(
			ctx context.Context, in middleware.InitializeInput, _ middleware.InitializeHandler,
		) (middleware.InitializeOutput, middleware.Metadata, error) {
			s.mu.Lock()
			s.calls = append(s.calls, in.Parameters)
			s.mu.Unlock()

			out, err := s.respond(ctx, in.Parameters)

			return middleware.InitializeOutput{Result: out}, middleware.Metadata{}, err
		}), middleware.Before)
}
