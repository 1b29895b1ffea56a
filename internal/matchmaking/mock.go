package matchmaking

import "sync"

// MockMatchmaker is a mock implementation of the Matchmaker interface for
// testing. It is safe for concurrent use.
type MockMatchmaker struct {
	mu sync.Mutex

	// Spies for method calls
	EnqueueFunc func(req EnqueueRequest) (QueueStatus, error)
	CancelFunc  func(playerID string) bool
	StatusFunc  func(playerID string) (QueueStatus, error)
	PollFunc    func(playerID string) (*MatchView, bool)
	AcceptFunc  func(playerID, sessionID string) error
	StatsFunc   func() Stats

	// Call records
	EnqueueCalls []EnqueueRequest
	CancelCalls  []string
	StatusCalls  []string
	PollCalls    []string
	AcceptCalls  []AcceptCall
	StatsCalls   int
}

// AcceptCall holds the arguments for a call to Accept.
type AcceptCall struct {
	PlayerID  string
	SessionID string
}

var _ Matchmaker = (*MockMatchmaker)(nil)

// NewMockMatchmaker creates a new mock instance.
func NewMockMatchmaker() *MockMatchmaker {
	return &MockMatchmaker{}
}

// Reset clears all call records.
func (m *MockMatchmaker) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EnqueueCalls = nil
	m.CancelCalls = nil
	m.StatusCalls = nil
	m.PollCalls = nil
	m.AcceptCalls = nil
	m.StatsCalls = 0
}

func (m *MockMatchmaker) Enqueue(req EnqueueRequest) (QueueStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EnqueueCalls = append(m.EnqueueCalls, req)
	if m.EnqueueFunc != nil {
		return m.EnqueueFunc(req)
	}
	return QueueStatus{IsQueued: true, QueuePosition: 1, EstimatedWaitSeconds: 5, PreferredOpponent: req.Preference}, nil
}

func (m *MockMatchmaker) Cancel(playerID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CancelCalls = append(m.CancelCalls, playerID)
	if m.CancelFunc != nil {
		return m.CancelFunc(playerID)
	}
	return true
}

func (m *MockMatchmaker) Status(playerID string) (QueueStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StatusCalls = append(m.StatusCalls, playerID)
	if m.StatusFunc != nil {
		return m.StatusFunc(playerID)
	}
	return QueueStatus{}, ErrNotFound
}

func (m *MockMatchmaker) Poll(playerID string) (*MatchView, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PollCalls = append(m.PollCalls, playerID)
	if m.PollFunc != nil {
		return m.PollFunc(playerID)
	}
	return nil, false
}

func (m *MockMatchmaker) Accept(playerID, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AcceptCalls = append(m.AcceptCalls, AcceptCall{PlayerID: playerID, SessionID: sessionID})
	if m.AcceptFunc != nil {
		return m.AcceptFunc(playerID, sessionID)
	}
	return nil
}

func (m *MockMatchmaker) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StatsCalls++
	if m.StatsFunc != nil {
		return m.StatsFunc()
	}
	return Stats{}
}
