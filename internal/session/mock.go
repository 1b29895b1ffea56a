package session

import (
	"fmt"
	"sync"
)

// MockAllocator is a deterministic Allocator for testing. It hands out
// "session-1", "session-2", ... in order.
type MockAllocator struct {
	mu   sync.Mutex
	next int

	// Call record
	Allocated []string
}

var _ Allocator = (*MockAllocator)(nil)

// NewMockAllocator creates a new mock instance.
func NewMockAllocator() *MockAllocator {
	return &MockAllocator{}
}

func (a *MockAllocator) NextSessionID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.next++
	id := fmt.Sprintf("session-%d", a.next)
	a.Allocated = append(a.Allocated, id)
	return id
}
