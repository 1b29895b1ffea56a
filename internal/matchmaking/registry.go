package matchmaking

import (
	"time"

	"github.com/charmbracelet/log"
)

// matchRegistry stores pairing decisions awaiting retrieval and acceptance.
// A decision is retired once both participants accept it, or when it outlives
// the TTL. Not safe for concurrent use; the owning Service serializes access.
type matchRegistry struct {
	ttl       time.Duration
	order     []string // session IDs in insertion order
	decisions map[string]*PairingDecision
	accepted  map[string]map[string]bool // session ID -> accepting participants
}

func newMatchRegistry(ttl time.Duration) *matchRegistry {
	return &matchRegistry{
		ttl:       ttl,
		decisions: make(map[string]*PairingDecision),
		accepted:  make(map[string]map[string]bool),
	}
}

// record stores a decision. The synthetic side of a bot match counts as
// pre-accepted, so a single human accept retires the decision.
func (r *matchRegistry) record(d *PairingDecision) {
	r.order = append(r.order, d.SessionID)
	r.decisions[d.SessionID] = d
	acceptedBy := make(map[string]bool)
	if d.IsBotMatch {
		acceptedBy[d.Black] = true
	}
	r.accepted[d.SessionID] = acceptedBy
}

// findFor returns the first unretired decision involving playerID, scanning
// insertion order.
func (r *matchRegistry) findFor(playerID string) *PairingDecision {
	for _, sessionID := range r.order {
		d, ok := r.decisions[sessionID]
		if !ok {
			continue // retired
		}
		if d.Involves(playerID) {
			return d
		}
	}
	return nil
}

// accept validates that sessionID matches the player's recorded decision and
// marks the player's side as accepted. Retires the decision once every
// participant has accepted.
func (r *matchRegistry) accept(playerID, sessionID string) error {
	d := r.findFor(playerID)
	if d == nil {
		return ErrNotFound
	}
	if d.SessionID != sessionID {
		return ErrMatchMismatch
	}

	acceptedBy := r.accepted[d.SessionID]
	acceptedBy[playerID] = true
	if acceptedBy[d.White] && acceptedBy[d.Black] {
		r.retire(d.SessionID)
		log.Info("Match accepted by both sides, retiring decision", "session", d.SessionID)
	}
	return nil
}

// sweep retires decisions older than the TTL relative to now. Returns the
// number retired.
func (r *matchRegistry) sweep(now time.Time) int {
	// Collect first; retire compacts r.order in place, which would shift
	// entries past the iteration index.
	var expired []string
	for _, sessionID := range r.order {
		d, ok := r.decisions[sessionID]
		if !ok {
			continue
		}
		if now.Sub(d.CreatedAt) > r.ttl {
			expired = append(expired, sessionID)
		}
	}
	for _, sessionID := range expired {
		r.retire(sessionID)
	}
	if len(expired) > 0 {
		log.Info("Swept expired pairing decisions", "count", len(expired))
	}
	return len(expired)
}

// hasUnretired reports whether playerID is a participant in any live decision.
func (r *matchRegistry) hasUnretired(playerID string) bool {
	return r.findFor(playerID) != nil
}

func (r *matchRegistry) size() int {
	return len(r.decisions)
}

// retire drops a decision and compacts the insertion-order index.
func (r *matchRegistry) retire(sessionID string) {
	delete(r.decisions, sessionID)
	delete(r.accepted, sessionID)
	for i, id := range r.order {
		if id == sessionID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}
