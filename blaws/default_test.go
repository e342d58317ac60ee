package blaws_test

import (
	"context"
	"testing"

	"github.com/advdv/blambda/blaws"
	"github.com/advdv/blambda/blaws/blawstest"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestDefaultRegistry(t *testing.T) {
	t.Cleanup(blaws.Reset)

	ctx := context.Background()

	_, err := blaws.Dynamo()
	require.ErrorIs(t, err, blaws.ErrDynamoNotInitialized)

	blaws.InitDynamo(blawstest.Returning(nil).Config(), blaws.DocumentOptions{})
	_, err = blaws.DynamoDocument()
	require.NoError(t, err)
	blaws.ResetDynamo()
	_, err = blaws.DynamoDocument()
	require.ErrorIs(t, err, blaws.ErrDynamoNotInitialized)

	blaws.InitSNS(blawstest.Returning(&sns.PublishOutput{MessageId: aws.String("n-1")}).Config())
	id, err := blaws.Publish(ctx, "arn:topic", "x")
	require.NoError(t, err)
	require.Equal(t, "n-1", id)

	blaws.InitSQS(blawstest.Returning(&sqs.SendMessageOutput{MessageId: aws.String("q-1")}).Config())
	id, err = blaws.Send(ctx, "https://queue", "x")
	require.NoError(t, err)
	require.Equal(t, "q-1", id)

	blaws.InitLambda(blawstest.Returning(&lambda.InvokeOutput{Payload: []byte(`{"text":"ok"}`)}).Config())
	res, err := blaws.InvokeSync[greeting](ctx, "greeter", nil)
	require.NoError(t, err)
	require.Equal(t, "ok", res.Text)
	require.NoError(t, blaws.InvokeAsync(ctx, "greeter", nil))
}

func TestModule(t *testing.T) {
	stub := blawstest.Returning(&sns.PublishOutput{MessageId: aws.String("fx-1")})
	reg := blaws.NewRegistry()
	reg.SetConfig(stub.Config())

	var (
		snsClient *sns.Client
		sqsClient *sqs.Client
		cfg       aws.Config
	)

	app := fxtest.New(t, blaws.Module(reg), fx.NopLogger, fx.Populate(&snsClient, &sqsClient, &cfg))
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	fromReg, err := reg.SNS(context.Background())
	require.NoError(t, err)
	require.Same(t, fromReg, snsClient)
	require.NotNil(t, sqsClient)
	require.Equal(t, "us-east-1", cfg.Region)
}

func TestModuleDynamoRequiresInit(t *testing.T) {
	reg := blaws.NewRegistry()
	reg.SetConfig(blawstest.Returning(nil).Config())

	var doc *blaws.DocumentClient

	app := fx.New(blaws.Module(reg), fx.NopLogger, fx.Populate(&doc))
	require.ErrorContains(t, app.Err(), "call InitDynamo first")
}
