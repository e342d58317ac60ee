package blaws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// InitSSM creates the SSM client from cfg, replacing any previous one.
func (r *Registry) InitSSM(cfg aws.Config, optFns ...func(*ssm.Options)) *ssm.Client {
	return r.ssm.set(ssm.NewFromConfig(cfg, optFns...))
}

// SSM returns the SSM client, creating it from the base config when absent.
func (r *Registry) SSM(ctx context.Context) (*ssm.Client, error) {
	return onDemand(ctx, r, &r.ssm, func(cfg aws.Config) *ssm.Client {
		return ssm.NewFromConfig(cfg)
	})
}

// ResetSSM drops the SSM client.
func (r *Registry) ResetSSM() { r.ssm.reset() }

// Parameter returns the value of a parameter store entry. SecureString values are decrypted.
func (r *Registry) Parameter(ctx context.Context, name string) (string, error) {
	client, err := r.SSM(ctx)
	if err != nil {
		return "", err
	}

	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", errors.Wrapf(err, "get parameter %q", name)
	}

	if out.Parameter == nil {
		return "", errors.Newf("parameter %q has no value", name)
	}

	return lo.FromPtr(out.Parameter.Value), nil
}
