package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matchmaking_ticks_total",
			Help: "The total number of pairing ticks executed.",
		}),
		TickErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matchmaking_tick_errors_total",
			Help: "The total number of pairing ticks that failed.",
		}),
		HumanPairings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matchmaking_human_pairings_total",
			Help: "The total number of human-vs-human pairings created.",
		}),
		BotPairings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matchmaking_bot_pairings_total",
			Help: "The total number of human-vs-bot pairings created.",
		}),
		TickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "matchmaking_tick_duration_seconds",
			Help:    "The duration of individual pairing ticks.",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		HumanQueueSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "matchmaking_human_queue_size",
			Help: "The number of players waiting in the HUMAN queue.",
		}),
		BotQueueSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "matchmaking_bot_queue_size",
			Help: "The number of players waiting in the AI queue.",
		}),
		AnyQueueSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "matchmaking_any_queue_size",
			Help: "The number of players waiting in the ANY queue.",
		}),
		ActiveMatches: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "matchmaking_active_matches",
			Help: "The number of pairing decisions awaiting retrieval or acceptance.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "matchmaking_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.Ticks,
		s.TickErrors,
		s.HumanPairings,
		s.BotPairings,
		s.TickDuration,
		s.HumanQueueSize,
		s.BotQueueSize,
		s.AnyQueueSize,
		s.ActiveMatches,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncTicks() {
	s.Ticks.Inc()
}

func (s *Service) IncTickErrors() {
	s.TickErrors.Inc()
}

func (s *Service) IncHumanPairings() {
	s.HumanPairings.Inc()
}

func (s *Service) IncBotPairings() {
	s.BotPairings.Inc()
}

func (s *Service) ObserveTickDuration(duration float64) {
	s.TickDuration.Observe(duration)
}

func (s *Service) SetQueueSizes(human, bot, anyQueue float64) {
	s.HumanQueueSize.Set(human)
	s.BotQueueSize.Set(bot)
	s.AnyQueueSize.Set(anyQueue)
}

func (s *Service) SetActiveMatches(count float64) {
	s.ActiveMatches.Set(count)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
