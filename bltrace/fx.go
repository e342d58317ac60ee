package bltrace

import (
	"context"

	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

// Module provides a trace.TracerProvider and a propagation.TextMapPropagator built from an Env that must be
// provided elsewhere, e.g. with blenv.Provide[bltrace.Env](). The provider is shut down when the app stops.
func Module() fx.Option {
	return fx.Module("bltrace",
		fx.Provide(
			func(lc fx.Lifecycle, env *Env) (trace.TracerProvider, error) {
				tp, err := NewTracerProvider(context.Background(), *env)
				if err != nil {
					return nil, err
				}

				lc.Append(fx.Hook{OnStop: tp.Shutdown})

				return tp, nil
			},
			func(env *Env) propagation.TextMapPropagator { return NewPropagator(*env) },
		),
	)
}
