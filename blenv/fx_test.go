package blenv_test

import (
	"testing"

	"github.com/advdv/blambda/blenv"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestProvide(t *testing.T) {
	_, opt := mapEnviron("TABLE_NAME", "items")

	var (
		m   *blenv.Manager[tableEnv]
		cfg *tableEnv
	)

	app := fxtest.New(t,
		fx.NopLogger,
		blenv.Provide[tableEnv](opt),
		fx.Populate(&m, &cfg),
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	require.Equal(t, "items", cfg.TableName)

	cached, err := m.Get()
	require.NoError(t, err)
	require.Same(t, cfg, cached)
}

func TestProvideFailsOnInvalidEnvironment(t *testing.T) {
	_, opt := mapEnviron()

	app := fx.New(
		fx.NopLogger,
		blenv.Provide[tableEnv](opt),
		fx.Invoke(func(*tableEnv) {}),
	)
	require.ErrorContains(t, app.Err(), "configuration validation failed")
}
