package http

import (
	"net/http"

	"github.com/mauv0809/probable-spork/internal/config"
	"github.com/mauv0809/probable-spork/internal/matchmaking"
	"github.com/mauv0809/probable-spork/internal/metrics"
	"github.com/mauv0809/probable-spork/internal/pubsub"
	"github.com/mauv0809/probable-spork/internal/rating"
)

type Server struct {
	Matchmaker     matchmaking.Matchmaker
	Ratings        rating.Store
	PubSub         pubsub.PubSubClient
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}

// enqueueRequest is the JSON body for POST /queue. Rating is optional; when
// omitted (or non-positive) the rating provider supplies it.
type enqueueRequest struct {
	Player            string                   `json:"player"`
	Rating            int                      `json:"rating"`
	PreferredOpponent matchmaking.OpponentType `json:"preferred_opponent"`
	MinRating         int                      `json:"min_rating"`
	MaxRating         int                      `json:"max_rating"`
}

// cancelRequest is the JSON body for POST /queue/cancel.
type cancelRequest struct {
	Player string `json:"player"`
}

// acceptRequest is the JSON body for POST /match/accept.
type acceptRequest struct {
	Player    string `json:"player"`
	SessionID string `json:"session_id"`
}

// ratingUpdate is the MessagePack payload of a rating-updated push message.
type ratingUpdate struct {
	Player string `msgpack:"player"`
	Rating int    `msgpack:"rating"`
}
