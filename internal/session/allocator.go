package session

import "github.com/google/uuid"

// UUIDAllocator mints random session IDs. UUIDs are unique across all live
// sessions without any coordination, which is all the pairing core requires.
type UUIDAllocator struct{}

var _ Allocator = (*UUIDAllocator)(nil)

// NewUUIDAllocator creates a new allocator.
func NewUUIDAllocator() *UUIDAllocator {
	return &UUIDAllocator{}
}

func (a *UUIDAllocator) NextSessionID() string {
	return uuid.NewString()
}
