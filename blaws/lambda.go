package blaws

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"
)

// FunctionError is returned when the invoked function itself failed, as opposed to the invoke request.
type FunctionError struct {
	// FunctionName is the function that was invoked.
	FunctionName string
	// Kind is the marker Lambda reported, e.g. "Unhandled".
	Kind string
	// Message is the errorMessage field of the response payload, if any.
	Message string
	// Payload is the raw response payload.
	Payload []byte
}

func (e *FunctionError) Error() string {
	msg := fmt.Sprintf("function %q failed: %s", e.FunctionName, e.Kind)
	if e.Message != "" {
		msg += ": " + e.Message
	}

	return msg
}

func newFunctionError(name string, out *lambda.InvokeOutput) error {
	if out.FunctionError == nil {
		return nil
	}

	return &FunctionError{
		FunctionName: name,
		Kind:         *out.FunctionError,
		Message:      gjson.GetBytes(out.Payload, "errorMessage").String(),
		Payload:      out.Payload,
	}
}

// InitLambda creates the Lambda client from cfg, replacing any previous one.
func (r *Registry) InitLambda(cfg aws.Config, optFns ...func(*lambda.Options)) *lambda.Client {
	return r.lambda.set(lambda.NewFromConfig(cfg, optFns...))
}

// Lambda returns the Lambda client, creating it from the base config when absent.
func (r *Registry) Lambda(ctx context.Context) (*lambda.Client, error) {
	return onDemand(ctx, r, &r.lambda, func(cfg aws.Config) *lambda.Client {
		return lambda.NewFromConfig(cfg)
	})
}

// ResetLambda drops the Lambda client.
func (r *Registry) ResetLambda() { r.lambda.reset() }

// InvokeSync invokes the function with payload as JSON and waits for the result. The response payload is decoded
// into out unless out is nil. It reports false when the function returned no payload (or a JSON null). A failure
// inside the function is returned as a *FunctionError.
func (r *Registry) InvokeSync(ctx context.Context, functionName string, payload, out any) (bool, error) {
	res, err := r.invoke(ctx, functionName, types.InvocationTypeRequestResponse, payload)
	if err != nil {
		return false, err
	}

	body := bytes.TrimSpace(res.Payload)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return false, nil
	}

	if out == nil {
		return true, nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return false, errors.Wrapf(err, "decode response of %q", functionName)
	}

	return true, nil
}

// InvokeAsync queues an invocation of the function and returns once Lambda accepted it.
func (r *Registry) InvokeAsync(ctx context.Context, functionName string, payload any) error {
	_, err := r.invoke(ctx, functionName, types.InvocationTypeEvent, payload)
	return err
}

func (r *Registry) invoke(
	ctx context.Context, name string, typ types.InvocationType, payload any,
) (*lambda.InvokeOutput, error) {
	client, err := r.Lambda(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	out, err := client.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(name),
		InvocationType: typ,
		Payload:        data,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "invoke %q", name)
	}

	if err := newFunctionError(name, out); err != nil {
		return nil, err
	}

	return out, nil
}
