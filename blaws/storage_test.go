package blaws_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/advdv/blambda/blaws"
	"github.com/advdv/blambda/blaws/blawstest"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutJSON(t *testing.T) {
	stub := blawstest.Returning(&s3.PutObjectOutput{})
	reg := blaws.NewRegistry()
	reg.InitS3(stub.Config())

	require.NoError(t, reg.PutJSON(context.Background(), "bucket", "a/b.json", map[string]int{"n": 1}))

	in := stub.Calls()[0].(*s3.PutObjectInput)
	assert.Equal(t, "bucket", aws.ToString(in.Bucket))
	assert.Equal(t, "a/b.json", aws.ToString(in.Key))
	assert.Equal(t, "application/json", aws.ToString(in.ContentType))

	body, err := io.ReadAll(in.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":1}`, string(body))
}

func TestGetJSON(t *testing.T) {
	reg := blaws.NewRegistry()
	reg.InitS3(blawstest.Returning(&s3.GetObjectOutput{
		Body: io.NopCloser(bytes.NewReader([]byte(`{"n":7}`))),
	}).Config())

	var out struct{ N int }
	found, err := reg.GetJSON(context.Background(), "bucket", "a/b.json", &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 7, out.N)
}

func TestGetJSONMissingKey(t *testing.T) {
	reg := blaws.NewRegistry()
	reg.InitS3(blawstest.Failing(&s3types.NoSuchKey{}).Config())

	var out map[string]any
	found, err := reg.GetJSON(context.Background(), "bucket", "missing.json", &out)
	require.NoError(t, err)
	require.False(t, found)
}

func TestParameter(t *testing.T) {
	stub := blawstest.Returning(&ssm.GetParameterOutput{Parameter: &ssmtypes.Parameter{Value: aws.String("s3cr3t")}})
	reg := blaws.NewRegistry()
	reg.InitSSM(stub.Config())

	v, err := reg.Parameter(context.Background(), "/app/db/password")
	require.NoError(t, err)
	require.Equal(t, "s3cr3t", v)

	in := stub.Calls()[0].(*ssm.GetParameterInput)
	assert.Equal(t, "/app/db/password", aws.ToString(in.Name))
	assert.True(t, aws.ToBool(in.WithDecryption))
}

func TestParameterWithoutValue(t *testing.T) {
	reg := blaws.NewRegistry()
	reg.InitSSM(blawstest.Returning(&ssm.GetParameterOutput{}).Config())

	_, err := reg.Parameter(context.Background(), "/app/missing")
	require.ErrorContains(t, err, `parameter "/app/missing" has no value`)
}
