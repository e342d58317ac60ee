package blaws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-secretsmanager-caching-go/v2/secretcache"
	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"
)

// SecretReader reads secret strings by id.
type SecretReader interface {
	GetSecretString(ctx context.Context, secretID string) (string, error)
}

// AWSSecretReader reads secrets from Secrets Manager through a local cache.
type AWSSecretReader struct {
	cache *secretcache.Cache
}

// NewAWSSecretReader creates a caching reader from cfg.
func NewAWSSecretReader(cfg aws.Config) (*AWSSecretReader, error) {
	client := secretsmanager.NewFromConfig(cfg)

	cache, err := secretcache.New(func(c *secretcache.Cache) {
		c.Client = client
	})
	if err != nil {
		return nil, errors.Wrap(err, "create secret cache")
	}

	return &AWSSecretReader{cache: cache}, nil
}

// GetSecretString returns the secret, served from cache when fresh.
func (r *AWSSecretReader) GetSecretString(ctx context.Context, secretID string) (string, error) {
	secret, err := r.cache.GetSecretStringWithContext(ctx, secretID)
	if err != nil {
		return "", errors.Wrapf(err, "get secret %q", secretID)
	}

	return secret, nil
}

// InitSecrets installs reader as the secret source, replacing any previous one.
func (r *Registry) InitSecrets(reader SecretReader) SecretReader {
	return r.secrets.set(reader)
}

// Secrets returns the secret reader, creating a caching Secrets Manager reader from the base config when absent.
func (r *Registry) Secrets(ctx context.Context) (SecretReader, error) {
	return r.secrets.getOrCreate(func() (SecretReader, error) {
		cfg, err := r.Config(ctx)
		if err != nil {
			return nil, err
		}

		reader, err := NewAWSSecretReader(cfg)
		if err != nil {
			return nil, err
		}

		return reader, nil
	})
}

// ResetSecrets drops the secret reader together with its cache.
func (r *Registry) ResetSecrets() { r.secrets.reset() }

// Secret returns a secret value. With a jsonPath the secret is parsed as JSON and only the value at that
// path is returned.
func (r *Registry) Secret(ctx context.Context, secretID string, jsonPath ...string) (string, error) {
	reader, err := r.Secrets(ctx)
	if err != nil {
		return "", err
	}

	return secretFromReader(ctx, reader, secretID, jsonPath...)
}

func secretFromReader(ctx context.Context, reader SecretReader, secretID string, jsonPath ...string) (string, error) {
	if len(jsonPath) > 1 {
		return "", errors.New("blaws: Secret accepts at most one jsonPath argument")
	}

	secret, err := reader.GetSecretString(ctx, secretID)
	if err != nil {
		return "", err
	}

	if len(jsonPath) == 0 || jsonPath[0] == "" {
		return secret, nil
	}

	result := gjson.Get(secret, jsonPath[0])
	if !result.Exists() {
		return "", errors.Errorf("secret path %q not found in secret %q", jsonPath[0], secretID)
	}

	return result.String(), nil
}
