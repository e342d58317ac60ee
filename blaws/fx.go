package blaws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"go.uber.org/fx"
)

// Module provides the registry and its clients for dependency injection. DynamoDB clients can only be resolved
// once InitDynamo was called on r.
func Module(r *Registry) fx.Option {
	ctx := context.Background()

	return fx.Module("blaws",
		fx.Supply(r),
		fx.Provide(func() (aws.Config, error) { return r.Config(ctx) }),
		fx.Provide(r.Dynamo),
		fx.Provide(r.DynamoDocument),
		fx.Provide(func() (*sns.Client, error) { return r.SNS(ctx) }),
		fx.Provide(func() (*sqs.Client, error) { return r.SQS(ctx) }),
		fx.Provide(func() (*lambda.Client, error) { return r.Lambda(ctx) }),
		fx.Provide(func() (*s3.Client, error) { return r.S3(ctx) }),
		fx.Provide(func() (*ssm.Client, error) { return r.SSM(ctx) }),
		fx.Provide(func() (SecretReader, error) { return r.Secrets(ctx) }),
	)
}
