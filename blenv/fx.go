package blenv

import "go.uber.org/fx"

// Provide supplies a *Manager[T] and the validated *T to an fx graph. The application fails to start when the
// environment does not satisfy T.
func Provide[T any](opts ...Option) fx.Option {
	return fx.Options(
		fx.Provide(func() *Manager[T] { return NewManager[T](opts...) }),
		fx.Provide(func(m *Manager[T]) (*T, error) { return m.Get() }),
	)
}
