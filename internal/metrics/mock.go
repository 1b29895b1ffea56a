package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu            sync.Mutex
	ticks         int
	tickErrors    int
	humanPairings int
	botPairings   int
	tickDurations []float64
	queueSizes    [3]float64
	activeMatches float64
	startupTime   float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		tickDurations: make([]float64, 0),
	}
}

func (m *Mock) IncTicks() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ticks++
}

func (m *Mock) IncTickErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickErrors++
}

func (m *Mock) IncHumanPairings() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.humanPairings++
}

func (m *Mock) IncBotPairings() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.botPairings++
}

func (m *Mock) ObserveTickDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickDurations = append(m.tickDurations, duration)
}

func (m *Mock) SetQueueSizes(human, bot, anyQueue float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queueSizes = [3]float64{human, bot, anyQueue}
}

func (m *Mock) SetActiveMatches(count float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activeMatches = count
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Ticks returns the number of times IncTicks was called.
func (m *Mock) Ticks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ticks
}

// TickErrors returns the number of times IncTickErrors was called.
func (m *Mock) TickErrors() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tickErrors
}

// HumanPairings returns the number of times IncHumanPairings was called.
func (m *Mock) HumanPairings() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.humanPairings
}

// BotPairings returns the number of times IncBotPairings was called.
func (m *Mock) BotPairings() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.botPairings
}
