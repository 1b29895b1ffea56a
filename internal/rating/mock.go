package rating

import (
	"context"
	"sync"
)

// MockProvider is a mock implementation of the Provider interface for testing.
// It is safe for concurrent use.
type MockProvider struct {
	mu sync.Mutex

	// Spies for method calls
	RatingFunc func(ctx context.Context, playerID string) (int, error)
	SetFunc    func(playerID string, rating int)

	// Call records
	RatingCalls []string
	SetCalls    []SetCall
}

// SetCall holds the arguments for a call to Set.
type SetCall struct {
	Player string
	Rating int
}

// NewMockProvider creates a new mock instance.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Reset clears all call records.
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RatingCalls = nil
	m.SetCalls = nil
}

func (m *MockProvider) Rating(ctx context.Context, playerID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RatingCalls = append(m.RatingCalls, playerID)
	if m.RatingFunc != nil {
		return m.RatingFunc(ctx, playerID)
	}
	return 1200, nil
}

func (m *MockProvider) Set(playerID string, rating int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls = append(m.SetCalls, SetCall{Player: playerID, Rating: rating})
	if m.SetFunc != nil {
		m.SetFunc(playerID, rating)
	}
}
