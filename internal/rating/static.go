package rating

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
)

// StaticProvider is an in-memory rating source. It serves the rating recorded
// for a player, or a configured default for players it has never seen.
type StaticProvider struct {
	mu            sync.RWMutex
	ratings       map[string]int
	defaultRating int
}

var _ Provider = (*StaticProvider)(nil)

// NewStaticProvider creates a provider that falls back to defaultRating for
// unknown players.
func NewStaticProvider(defaultRating int) *StaticProvider {
	return &StaticProvider{
		ratings:       make(map[string]int),
		defaultRating: defaultRating,
	}
}

// Rating returns the stored rating for playerID, or the default.
func (p *StaticProvider) Rating(ctx context.Context, playerID string) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if r, ok := p.ratings[playerID]; ok {
		return r, nil
	}
	log.Debug("No stored rating for player, using default", "player", playerID, "default", p.defaultRating)
	return p.defaultRating, nil
}

// Set records a rating for a player. Used for seeding and by tests.
func (p *StaticProvider) Set(playerID string, rating int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ratings[playerID] = rating
}
