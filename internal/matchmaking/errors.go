package matchmaking

import "errors"

var (
	// ErrNotFound means the identity is absent from the queue or registry.
	ErrNotFound = errors.New("player not found")
	// ErrDuplicateEnqueue means the player is already queued or has an
	// unretired pairing decision.
	ErrDuplicateEnqueue = errors.New("player already queued")
	// ErrDuplicateBucket means the player's rating bucket is occupied and the
	// collision policy is "reject".
	ErrDuplicateBucket = errors.New("rating bucket already occupied")
	// ErrMatchMismatch means the session id presented on accept does not match
	// the recorded pairing decision.
	ErrMatchMismatch = errors.New("session id does not match recorded pairing")
)
