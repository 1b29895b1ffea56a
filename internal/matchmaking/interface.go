package matchmaking

// Matchmaker is the request surface exposed to the API layer. All operations
// are safe for concurrent use and never observe a queue mid-tick.
type Matchmaker interface {
	// Enqueue adds a player to the queue selected by their preference.
	// Fails with ErrDuplicateEnqueue if the identity is already queued (or has
	// an unretired pairing), and with ErrDuplicateBucket under the "reject"
	// bucket collision policy.
	Enqueue(req EnqueueRequest) (QueueStatus, error)

	// Cancel removes a player from their queue. Returns false, not an error,
	// if absent. Idempotent.
	Cancel(playerID string) bool

	// Status reports a queued player's position, or ErrNotFound.
	Status(playerID string) (QueueStatus, error)

	// Poll returns the player's view of a recorded pairing, if any.
	Poll(playerID string) (*MatchView, bool)

	// Accept confirms a pairing. Fails with ErrMatchMismatch if sessionID does
	// not match the recorded decision, ErrNotFound if there is none.
	Accept(playerID, sessionID string) error

	// Stats returns per-category queue sizes and the live match count.
	Stats() Stats
}
