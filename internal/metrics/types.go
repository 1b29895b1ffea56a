package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	Ticks              prometheus.Counter
	TickErrors         prometheus.Counter
	HumanPairings      prometheus.Counter
	BotPairings        prometheus.Counter
	TickDuration       prometheus.Histogram
	HumanQueueSize     prometheus.Gauge
	BotQueueSize       prometheus.Gauge
	AnyQueueSize       prometheus.Gauge
	ActiveMatches      prometheus.Gauge
	StartupTimeSeconds prometheus.Gauge
}
