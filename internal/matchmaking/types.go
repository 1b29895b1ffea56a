package matchmaking

import (
	"time"
)

// OpponentType selects which queue a player waits in.
type OpponentType string

const (
	OpponentHuman OpponentType = "HUMAN"
	OpponentAI    OpponentType = "AI"
	OpponentAny   OpponentType = "ANY"
)

// Valid reports whether t is one of the known opponent types.
func (t OpponentType) Valid() bool {
	switch t {
	case OpponentHuman, OpponentAI, OpponentAny:
		return true
	}
	return false
}

// Side is the board side a participant is assigned. The higher-rated human
// (or the human in a bot match) takes white.
type Side string

const (
	SideWhite Side = "WHITE"
	SideBlack Side = "BLACK"
)

// WaitingPlayer is a player sitting in a matchmaking queue. It is immutable
// once stored; the only mutation is removal.
type WaitingPlayer struct {
	PlayerID   string
	Rating     int
	Preference OpponentType
	MinRating  int
	MaxRating  int
	EnqueuedAt time.Time

	bucket int // rating rounded to the configured granularity
}

// WaitTime returns how long the player has been waiting as of now.
func (p *WaitingPlayer) WaitTime(now time.Time) time.Duration {
	return now.Sub(p.EnqueuedAt)
}

// EnqueueRequest is the input for adding a player to a queue.
type EnqueueRequest struct {
	PlayerID   string       `json:"player"`
	Rating     int          `json:"rating"`
	Preference OpponentType `json:"preferred_opponent"`
	MinRating  int          `json:"min_rating"`
	MaxRating  int          `json:"max_rating"`
}

// QueueStatus describes a queued player's position. The estimated wait is
// advisory only, never a contract.
type QueueStatus struct {
	IsQueued             bool         `json:"is_queued"`
	QueuePosition        int          `json:"queue_position"`
	EstimatedWaitSeconds int          `json:"estimated_wait_seconds"`
	PreferredOpponent    OpponentType `json:"preferred_opponent"`
}

// PairingDecision is the record of two parties assigned to the same session.
// Created only by the pairing engine and immutable thereafter; acceptance
// state is tracked by the registry, not on the decision itself.
type PairingDecision struct {
	SessionID   string    `json:"session_id" msgpack:"session_id"`
	White       string    `json:"white" msgpack:"white"`
	WhiteRating int       `json:"white_rating" msgpack:"white_rating"`
	Black       string    `json:"black" msgpack:"black"`
	BlackRating int       `json:"black_rating" msgpack:"black_rating"`
	IsBotMatch  bool      `json:"is_bot_match" msgpack:"is_bot_match"`
	BotLevel    int       `json:"bot_level,omitempty" msgpack:"bot_level"`
	CreatedAt   time.Time `json:"created_at" msgpack:"created_at"`
}

// Involves reports whether playerID is one of the decision's participants.
func (d *PairingDecision) Involves(playerID string) bool {
	return d.White == playerID || d.Black == playerID
}

// MatchView is a single participant's view of a pairing decision, returned by
// PollMatch.
type MatchView struct {
	SessionID      string `json:"session_id"`
	Opponent       string `json:"opponent"`
	OpponentRating int    `json:"opponent_rating"`
	IsBot          bool   `json:"is_bot"`
	BotLevel       int    `json:"bot_level,omitempty"`
	Color          Side   `json:"color"`
}

// Stats is a read-only snapshot of queue sizes and active matches.
type Stats struct {
	HumanQueueSize int `json:"human_queue_size"`
	AIQueueSize    int `json:"ai_queue_size"`
	AnyQueueSize   int `json:"any_queue_size"`
	ActiveMatches  int `json:"active_matches"`
}
