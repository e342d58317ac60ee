package blaws_test

import (
	"context"
	"testing"

	"github.com/advdv/blambda/blaws"
	"github.com/advdv/blambda/blaws/blawstest"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestDynamoRequiresInit(t *testing.T) {
	reg := blaws.NewRegistry()

	_, err := reg.Dynamo()
	require.ErrorIs(t, err, blaws.ErrDynamoNotInitialized)
	_, err = reg.DynamoDocument()
	require.ErrorIs(t, err, blaws.ErrDynamoNotInitialized)
	require.ErrorContains(t, err, "call InitDynamo first")

	client := reg.InitDynamo(blawstest.Returning(nil).Config(), blaws.DocumentOptions{})

	got, err := reg.Dynamo()
	require.NoError(t, err)
	require.Same(t, client, got)

	doc, err := reg.DynamoDocument()
	require.NoError(t, err)
	require.Same(t, client, doc.Client())

	again, err := reg.Dynamo()
	require.NoError(t, err)
	require.Same(t, got, again)

	reg.ResetDynamo()

	_, err = reg.Dynamo()
	require.ErrorIs(t, err, blaws.ErrDynamoNotInitialized)
	_, err = reg.DynamoDocument()
	require.ErrorIs(t, err, blaws.ErrDynamoNotInitialized)
}

func TestInitDynamoReplacesPair(t *testing.T) {
	reg := blaws.NewRegistry()
	cfg := blawstest.Returning(nil).Config()

	first := reg.InitDynamo(cfg, blaws.DocumentOptions{})
	firstDoc, err := reg.DynamoDocument()
	require.NoError(t, err)

	second := reg.InitDynamo(cfg, blaws.DocumentOptions{})
	secondDoc, err := reg.DynamoDocument()
	require.NoError(t, err)

	require.NotSame(t, first, second)
	require.NotSame(t, firstDoc, secondDoc)
	require.Same(t, first, firstDoc.Client())
	require.Same(t, second, secondDoc.Client())
}

func TestCreateOnDemand(t *testing.T) {
	reg := blaws.NewRegistry()
	reg.SetConfig(blawstest.Returning(nil).Config())

	ctx := context.Background()

	first, err := reg.SNS(ctx)
	require.NoError(t, err)
	again, err := reg.SNS(ctx)
	require.NoError(t, err)
	require.Same(t, first, again)

	reg.ResetSNS()

	fresh, err := reg.SNS(ctx)
	require.NoError(t, err)
	require.NotSame(t, first, fresh)

	sqsA, err := reg.SQS(ctx)
	require.NoError(t, err)
	sqsB, err := reg.SQS(ctx)
	require.NoError(t, err)
	require.Same(t, sqsA, sqsB)

	lamA, err := reg.Lambda(ctx)
	require.NoError(t, err)
	reg.ResetLambda()
	lamB, err := reg.Lambda(ctx)
	require.NoError(t, err)
	require.NotSame(t, lamA, lamB)
}

func TestInitReplacesWithoutTouchingOldHandle(t *testing.T) {
	reg := blaws.NewRegistry()
	oldStub := blawstest.Returning(&sns.PublishOutput{})
	newStub := blawstest.Returning(&sns.PublishOutput{})

	old := reg.InitSNS(oldStub.Config())
	current := reg.InitSNS(newStub.Config())
	require.NotSame(t, old, current)

	got, err := reg.SNS(context.Background())
	require.NoError(t, err)
	require.Same(t, current, got)

	_, err = old.Publish(context.Background(), &sns.PublishInput{})
	require.NoError(t, err)
	require.Len(t, oldStub.Calls(), 1)
	require.Empty(t, newStub.Calls())
}

func TestConfigLoadedOnce(t *testing.T) {
	blawstest.SetBaseEnv(t).AWSRegion("eu-west-1")

	reg := blaws.NewRegistry()
	cfg, err := reg.Config(context.Background())
	require.NoError(t, err)
	require.Equal(t, "eu-west-1", cfg.Region)

	t.Setenv("AWS_REGION", "eu-central-1")

	cfg, err = reg.Config(context.Background())
	require.NoError(t, err)
	require.Equal(t, "eu-west-1", cfg.Region)

	reg.Reset()

	cfg, err = reg.Config(context.Background())
	require.NoError(t, err)
	require.Equal(t, "eu-central-1", cfg.Region)
}

func TestLoadConfigWithTracing(t *testing.T) {
	blawstest.SetBaseEnv(t)

	plain, err := blaws.LoadConfig(context.Background())
	require.NoError(t, err)

	traced, err := blaws.LoadConfig(context.Background(),
		blaws.WithTracing(noop.NewTracerProvider(), propagation.TraceContext{}))
	require.NoError(t, err)
	require.Greater(t, len(traced.APIOptions), len(plain.APIOptions))
}

func TestResetAll(t *testing.T) {
	reg := blaws.NewRegistry()
	cfg := blawstest.Returning(nil).Config()
	reg.SetConfig(cfg)
	reg.InitDynamo(cfg, blaws.DocumentOptions{})

	first, err := reg.SQS(context.Background())
	require.NoError(t, err)

	reg.Reset()

	_, err = reg.Dynamo()
	require.True(t, errors.Is(err, blaws.ErrDynamoNotInitialized))

	reg.SetConfig(cfg)
	second, err := reg.SQS(context.Background())
	require.NoError(t, err)
	require.NotSame(t, first, second)
}
