package blaws

import "sync"

// slot holds at most one client handle of a kind. Replacing or resetting the slot never touches handles that
// were handed out before.
type slot[H any] struct {
	mu      sync.Mutex
	present bool
	handle  H
}

func (s *slot[H]) set(h H) H {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.present, s.handle = true, h

	return h
}

func (s *slot[H]) get() (h H, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.handle, s.present
}

// getOrCreate returns the current handle or stores the result of create. The lock is held while creating so
// concurrent callers end up with the same handle.
func (s *slot[H]) getOrCreate(create func() (H, error)) (H, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.present {
		return s.handle, nil
	}

	h, err := create()
	if err != nil {
		var zero H
		return zero, err
	}

	s.present, s.handle = true, h

	return h, nil
}

func (s *slot[H]) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero H
	s.present, s.handle = false, zero
}
