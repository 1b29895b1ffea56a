package matchmaking

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/probable-spork/internal/config"
	"github.com/mauv0809/probable-spork/internal/session"
)

// PairingPolicy selects a partner for a waiter from the remaining candidates.
// maxDistance is the waiter's current (possibly expanded) acceptable rating
// distance. Implementations must not mutate the candidates slice.
type PairingPolicy interface {
	SelectPartner(p *WaitingPlayer, candidates []*WaitingPlayer, maxDistance int) *WaitingPlayer
}

// firstFitPolicy accepts the first candidate in queue order whose rating is
// within maxDistance. Ties are broken by iteration order, not by closeness of
// rating.
type firstFitPolicy struct{}

// NewFirstFitPolicy returns the default greedy pairing policy.
func NewFirstFitPolicy() PairingPolicy {
	return firstFitPolicy{}
}

func (firstFitPolicy) SelectPartner(p *WaitingPlayer, candidates []*WaitingPlayer, maxDistance int) *WaitingPlayer {
	for _, q := range candidates {
		if abs(q.Rating-p.Rating) <= maxDistance {
			return q
		}
	}
	return nil
}

// engine turns queued players into pairing decisions. One call to runTick is
// one "tick"; the caller holds the service mutex for its whole duration.
type engine struct {
	cfg       config.MatchmakingConfig
	catalog   *BotCatalog
	policy    PairingPolicy
	allocator session.Allocator
}

func newEngine(cfg config.MatchmakingConfig, catalog *BotCatalog, policy PairingPolicy, allocator session.Allocator) *engine {
	return &engine{
		cfg:       cfg,
		catalog:   catalog,
		policy:    policy,
		allocator: allocator,
	}
}

// expandedRange widens the acceptable rating distance as a function of wait
// time. Monotonically non-decreasing in waited.
func (e *engine) expandedRange(waited time.Duration) int {
	r := e.cfg.BaseRatingRange
	if waited > e.cfg.RangeExpandThreshold {
		expansions := int((waited - e.cfg.RangeExpandThreshold) / e.cfg.RangeExpandInterval)
		r += expansions * e.cfg.RangeExpandStep
	}
	return r
}

// runTick runs the pairing algorithm over all three queues. Matched players
// are removed from their queues; the returned decisions are in creation order.
func (e *engine) runTick(human, ai, anyQueue *bucketQueue, now time.Time) []*PairingDecision {
	var decisions []*PairingDecision
	matched := make(map[string]bool)

	decisions = append(decisions, e.pairHumans(human, false, matched, now)...)
	decisions = append(decisions, e.pairHumans(anyQueue, true, matched, now)...)

	// Players who explicitly asked for a bot are served unconditionally.
	for _, p := range ai.waiters() {
		decisions = append(decisions, e.newBotDecision(p, now))
		ai.remove(p.PlayerID)
	}

	return decisions
}

// pairHumans scans one queue in insertion order, pairing each waiter with the
// first compatible partner. In the ANY queue, a waiter past the bot-fallback
// threshold is paired with a synthetic opponent instead.
func (e *engine) pairHumans(q *bucketQueue, allowBotFallback bool, matched map[string]bool, now time.Time) []*PairingDecision {
	var decisions []*PairingDecision
	snapshot := q.waiters()

	for _, p := range snapshot {
		if matched[p.PlayerID] {
			continue
		}

		maxDistance := e.expandedRange(p.WaitTime(now))
		candidates := make([]*WaitingPlayer, 0, len(snapshot)-1)
		for _, other := range snapshot {
			if other.PlayerID == p.PlayerID || matched[other.PlayerID] {
				continue
			}
			candidates = append(candidates, other)
		}

		if partner := e.policy.SelectPartner(p, candidates, maxDistance); partner != nil {
			decisions = append(decisions, e.newHumanDecision(p, partner, now))
			matched[p.PlayerID] = true
			matched[partner.PlayerID] = true
			q.remove(p.PlayerID)
			q.remove(partner.PlayerID)
			continue
		}

		if allowBotFallback && p.WaitTime(now) > e.cfg.BotFallbackWait {
			decisions = append(decisions, e.newBotDecision(p, now))
			matched[p.PlayerID] = true
			q.remove(p.PlayerID)
		}
	}
	return decisions
}

// newHumanDecision pairs two humans; the higher-rated player takes white.
func (e *engine) newHumanDecision(p, partner *WaitingPlayer, now time.Time) *PairingDecision {
	white, black := p, partner
	if partner.Rating > p.Rating {
		white, black = partner, p
	}
	d := &PairingDecision{
		SessionID:   e.allocator.NextSessionID(),
		White:       white.PlayerID,
		WhiteRating: white.Rating,
		Black:       black.PlayerID,
		BlackRating: black.Rating,
		CreatedAt:   now,
	}
	log.Info("Pairing created", "session", d.SessionID, "white", d.White, "black", d.Black)
	return d
}

// newBotDecision pairs a waiter with a synthetic opponent; the human always
// takes white.
func (e *engine) newBotDecision(p *WaitingPlayer, now time.Time) *PairingDecision {
	level := e.catalog.LevelFor(p.Rating)
	d := &PairingDecision{
		SessionID:   e.allocator.NextSessionID(),
		White:       p.PlayerID,
		WhiteRating: p.Rating,
		Black:       BotID(level),
		BlackRating: e.catalog.NominalRating(level),
		IsBotMatch:  true,
		BotLevel:    level,
		CreatedAt:   now,
	}
	log.Info("Bot pairing created", "session", d.SessionID, "player", d.White, "level", level)
	return d
}
