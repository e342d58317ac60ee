package blaws

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/cockroachdb/errors"
)

// InitS3 creates the S3 client from cfg, replacing any previous one.
func (r *Registry) InitS3(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
	return r.s3.set(s3.NewFromConfig(cfg, optFns...))
}

// S3 returns the S3 client, creating it from the base config when absent.
func (r *Registry) S3(ctx context.Context) (*s3.Client, error) {
	return onDemand(ctx, r, &r.s3, func(cfg aws.Config) *s3.Client {
		return s3.NewFromConfig(cfg)
	})
}

// ResetS3 drops the S3 client.
func (r *Registry) ResetS3() { r.s3.reset() }

// PutJSON stores v as a JSON object under key.
func (r *Registry) PutJSON(ctx context.Context, bucket, key string, v any) error {
	client, err := r.S3(ctx)
	if err != nil {
		return err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	if _, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	}); err != nil {
		return errors.Wrapf(err, "put s3://%s/%s", bucket, key)
	}

	return nil
}

// GetJSON decodes the JSON object under key into out. It reports false when the key does not exist.
func (r *Registry) GetJSON(ctx context.Context, bucket, key string, out any) (bool, error) {
	client, err := r.S3(ctx)
	if err != nil {
		return false, err
	}

	res, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})

	var noSuchKey *s3types.NoSuchKey
	switch {
	case errors.As(err, &noSuchKey):
		return false, nil
	case err != nil:
		return false, errors.Wrapf(err, "get s3://%s/%s", bucket, key)
	}

	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return false, errors.Wrapf(err, "decode s3://%s/%s", bucket, key)
	}

	return true, nil
}
