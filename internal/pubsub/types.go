package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	// EventMatchCreated is published for every recorded pairing decision so the
	// session-owning system can set up the board and rules for the new game.
	EventMatchCreated EventType = "match-created"
	// EventRatingUpdated is pushed by the rating system whenever a player's
	// rating changes, so later enqueues see the current value.
	EventRatingUpdated EventType = "rating-updated"
)
