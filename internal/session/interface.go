package session

// Allocator hands out identifiers for newly created game sessions. The session
// content itself (board setup, rules) is created and owned by the game service;
// matchmaking only needs a fresh ID that is unique across live sessions.
type Allocator interface {
	NextSessionID() string
}
