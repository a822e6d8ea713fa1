// Package testutils provides deterministic generators and controllable
// collaborators (scheduler, authenticator) for Syncro tests and test mode.
package testutils

import (
	"fmt"
	"sync"
)

// IDSequence generates ids that keep the UUID v4 shape but are predictable:
// 00000001-0000-4000-8000-000000000001, 00000002-0000-4000-8000-000000000002, ...
type IDSequence struct {
	mu      sync.Mutex
	counter uint64
}

// NewIDSequence creates a sequence starting at 1.
func NewIDSequence() *IDSequence {
	return &IDSequence{}
}

// Next returns the next id in the sequence.
func (s *IDSequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	return fmt.Sprintf("%08x-0000-4000-8000-%012x", s.counter, s.counter)
}
