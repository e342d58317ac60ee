package blaws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// InitDynamo initializes the DynamoDB clients of the Default registry.
func InitDynamo(cfg aws.Config, docOpts DocumentOptions, optFns ...func(*dynamodb.Options)) *dynamodb.Client {
	return Default.InitDynamo(cfg, docOpts, optFns...)
}

// Dynamo returns the DynamoDB client of the Default registry.
func Dynamo() (*dynamodb.Client, error) { return Default.Dynamo() }

// DynamoDocument returns the document client of the Default registry.
func DynamoDocument() (*DocumentClient, error) { return Default.DynamoDocument() }

// ResetDynamo clears the DynamoDB clients of the Default registry.
func ResetDynamo() { Default.ResetDynamo() }

// InitSNS sets the SNS client of the Default registry.
func InitSNS(cfg aws.Config, optFns ...func(*sns.Options)) *sns.Client {
	return Default.InitSNS(cfg, optFns...)
}

// ResetSNS drops the SNS client of the Default registry.
func ResetSNS() { Default.ResetSNS() }

// Publish publishes through the Default registry.
func Publish(ctx context.Context, topicARN string, payload any, opts ...MessageOption) (string, error) {
	return Default.Publish(ctx, topicARN, payload, opts...)
}

// InitSQS sets the SQS client of the Default registry.
func InitSQS(cfg aws.Config, optFns ...func(*sqs.Options)) *sqs.Client {
	return Default.InitSQS(cfg, optFns...)
}

// ResetSQS drops the SQS client of the Default registry.
func ResetSQS() { Default.ResetSQS() }

// Send enqueues through the Default registry.
func Send(ctx context.Context, queueURL string, payload any, opts ...MessageOption) (string, error) {
	return Default.Send(ctx, queueURL, payload, opts...)
}

// InitLambda sets the Lambda client of the Default registry.
func InitLambda(cfg aws.Config, optFns ...func(*lambda.Options)) *lambda.Client {
	return Default.InitLambda(cfg, optFns...)
}

// ResetLambda drops the Lambda client of the Default registry.
func ResetLambda() { Default.ResetLambda() }

// InvokeSync invokes a function through the Default registry and decodes its result. It returns nil when the
// function returned no payload.
func InvokeSync[T any](ctx context.Context, functionName string, payload any) (*T, error) {
	return Invoke[T](ctx, Default, functionName, payload)
}

// Invoke is InvokeSync against a specific registry.
func Invoke[T any](ctx context.Context, r *Registry, functionName string, payload any) (*T, error) {
	var out T

	ok, err := r.InvokeSync(ctx, functionName, payload, &out)
	if err != nil || !ok {
		return nil, err
	}

	return &out, nil
}

// InvokeAsync queues an invocation through the Default registry.
func InvokeAsync(ctx context.Context, functionName string, payload any) error {
	return Default.InvokeAsync(ctx, functionName, payload)
}

// Secret reads a secret through the Default registry.
func Secret(ctx context.Context, secretID string, jsonPath ...string) (string, error) {
	return Default.Secret(ctx, secretID, jsonPath...)
}

// Parameter reads a parameter through the Default registry.
func Parameter(ctx context.Context, name string) (string, error) {
	return Default.Parameter(ctx, name)
}

// Reset drops every client of the Default registry.
func Reset() { Default.Reset() }
