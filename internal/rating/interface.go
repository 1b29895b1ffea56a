package rating

import "context"

// Provider defines the interface for looking up a player's current skill rating.
// Rating computation and updates happen elsewhere; the matchmaking service only
// ever reads a rating at enqueue time.
type Provider interface {
	Rating(ctx context.Context, playerID string) (int, error)
}

// Store extends Provider with write access, for ratings pushed in from the
// rating system.
type Store interface {
	Provider
	Set(playerID string, rating int)
}
