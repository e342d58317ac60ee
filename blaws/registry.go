package blaws

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// Registry holds at most one client per AWS service. DynamoDB must be initialized explicitly, every other
// service is created from the base config the first time it is requested.
type Registry struct {
	opts []ConfigOption

	cfgMu sync.Mutex
	cfg   *aws.Config

	dynamo   slot[*dynamodb.Client]
	document slot[*DocumentClient]
	sns      slot[*sns.Client]
	sqs      slot[*sqs.Client]
	lambda   slot[*lambda.Client]
	s3       slot[*s3.Client]
	ssm      slot[*ssm.Client]
	secrets  slot[SecretReader]
}

// NewRegistry inits an empty registry. The options are used when the base config is loaded for on-demand clients.
func NewRegistry(opts ...ConfigOption) *Registry {
	return &Registry{opts: opts}
}

// Default is the process-wide registry used by the package-level functions.
var Default = NewRegistry()

// SetConfig replaces the base config that on-demand clients are created from. Clients that already exist keep
// the config they were built with.
func (r *Registry) SetConfig(cfg aws.Config) {
	r.cfgMu.Lock()
	defer r.cfgMu.Unlock()

	r.cfg = &cfg
}

// Config returns the base config, loading it on first use.
func (r *Registry) Config(ctx context.Context) (aws.Config, error) {
	r.cfgMu.Lock()
	defer r.cfgMu.Unlock()

	if r.cfg != nil {
		return *r.cfg, nil
	}

	cfg, err := LoadConfig(ctx, r.opts...)
	if err != nil {
		return cfg, err
	}

	r.cfg = &cfg

	return cfg, nil
}

// Reset drops every client and the cached base config.
func (r *Registry) Reset() {
	r.ResetDynamo()
	r.ResetSNS()
	r.ResetSQS()
	r.ResetLambda()
	r.ResetS3()
	r.ResetSSM()
	r.ResetSecrets()

	r.cfgMu.Lock()
	defer r.cfgMu.Unlock()

	r.cfg = nil
}

// onDemand returns the client in s, creating it with newFn from the base config when absent.
func onDemand[C any](ctx context.Context, r *Registry, s *slot[*C], newFn func(aws.Config) *C) (*C, error) {
	return s.getOrCreate(func() (*C, error) {
		cfg, err := r.Config(ctx)
		if err != nil {
			return nil, err
		}

		return newFn(cfg), nil
	})
}
