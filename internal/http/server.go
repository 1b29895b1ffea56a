package http

import (
	"net/http"

	"github.com/mauv0809/probable-spork/internal/config"
	"github.com/mauv0809/probable-spork/internal/matchmaking"
	"github.com/mauv0809/probable-spork/internal/metrics"
	"github.com/mauv0809/probable-spork/internal/pubsub"
	"github.com/mauv0809/probable-spork/internal/rating"
)

func NewServer(matchmaker matchmaking.Matchmaker, ratings rating.Store, pubsubClient pubsub.PubSubClient, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Matchmaker:     matchmaker,
		Ratings:        ratings,
		PubSub:         pubsubClient,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/queue", Chain(s.EnqueueHandler(), paramsMiddleware))
	s.Router.Handle("/queue/cancel", Chain(s.CancelHandler(), paramsMiddleware))
	s.Router.Handle("/queue/status", Chain(s.QueueStatusHandler(), paramsMiddleware))
	s.Router.Handle("/match/poll", Chain(s.PollMatchHandler(), paramsMiddleware))
	s.Router.Handle("/match/accept", Chain(s.AcceptMatchHandler(), paramsMiddleware))
	s.Router.Handle("/stats", Chain(s.StatsHandler(), paramsMiddleware))
	s.Router.Handle("/pubsub/rating-updated", Chain(s.RatingUpdatedHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
