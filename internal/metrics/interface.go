package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncTicks()
	IncTickErrors()
	IncHumanPairings()
	IncBotPairings()
	ObserveTickDuration(duration float64)
	SetQueueSizes(human, bot, anyQueue float64)
	SetActiveMatches(count float64)
	SetStartupTime(duration float64)
}
