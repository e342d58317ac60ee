package example

import (
	"context"

	"github.com/advdv/blambda"
	"github.com/advdv/blambda/blaws"
	"github.com/advdv/blambda/blenv"
	"github.com/advdv/blambda/bllog"
	"github.com/advdv/blambda/bltrace"
	"github.com/aws/aws-sdk-go-v2/aws"
)

// Env is the configuration of the orders function.
type Env struct {
	Log   bllog.Env
	Trace bltrace.Env

	TableName       string `env:"ORDERS_TABLE,required"`
	TopicARN        string `env:"ORDERS_TOPIC_ARN,required" validate:"startswith=arn:"`
	QueueURL        string `env:"ORDERS_QUEUE_URL,required" validate:"url"`
	PricingFunction string `env:"PRICING_FUNCTION" envDefault:"pricing"`
}

// Function is the assembled Lambda entry point.
type Function struct {
	Handler  blambda.ProxyHandlerFunc
	Registry *blaws.Registry
	Shutdown func(context.Context) error
}

// FromEnvironment reads Env from the process environment and loads the default AWS config.
func FromEnvironment(ctx context.Context) (*Function, error) {
	env, err := blenv.NewManager[Env]().Get()
	if err != nil {
		return nil, err
	}

	cfg, err := blaws.LoadConfig(ctx)
	if err != nil {
		return nil, err
	}

	return Build(ctx, env, cfg)
}

// Build assembles the function. Every AWS client is created from cfg, instrumented with the function's tracer.
func Build(ctx context.Context, env *Env, cfg aws.Config) (*Function, error) {
	tp, err := bltrace.NewTracerProvider(ctx, env.Trace)
	if err != nil {
		return nil, err
	}

	prop := bltrace.NewPropagator(env.Trace)
	blaws.Instrument(&cfg, tp, prop)

	reg := blaws.NewRegistry()
	reg.SetConfig(cfg)
	reg.InitDynamo(cfg, blaws.OmitEmpty())

	logs := bllog.New(env.Log.Options()...).Instance()
	orders := NewOrders(env, reg)

	h := blambda.Wrap(orders.Route,
		blambda.WithDeadlineBuffer(blambda.DefaultDeadlineBuffer),
		bltrace.Middleware(tp, prop),
		bllog.Middleware(logs),
	)

	return &Function{
		Handler:  blambda.ToProxy(h, bllog.ProxyLogger(logs)),
		Registry: reg,
		Shutdown: tp.Shutdown,
	}, nil
}
