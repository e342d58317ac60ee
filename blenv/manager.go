package blenv

import "sync"

// Manager validates the environment against the schema T once and caches the snapshot.
type Manager[T any] struct {
	opts *options

	mu    sync.Mutex
	cache *T
}

// NewManager wraps the schema T. No validation happens until the first Get or Refresh.
func NewManager[T any](opts ...Option) *Manager[T] {
	return &Manager[T]{opts: newOptions(opts...)}
}

// Get returns the cached snapshot, validating the environment first if nothing is cached yet. Repeated calls return
// the same pointer. When validation fails the cache stays empty and the next call validates again.
func (m *Manager[T]) Get() (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cache != nil {
		return m.cache, nil
	}

	return m.refresh()
}

// Refresh re-validates the current environment and replaces the cached snapshot. When validation fails the
// previously cached snapshot is kept.
func (m *Manager[T]) Refresh() (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.refresh()
}

func (m *Manager[T]) refresh() (*T, error) {
	environ, err := m.opts.load()
	if err != nil {
		return nil, err
	}

	cfg, err := validate[T](m.opts, environ)
	if err != nil {
		return nil, err
	}

	m.cache = cfg

	return cfg, nil
}
