package matchmaking

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/probable-spork/internal/config"
	"github.com/mauv0809/probable-spork/internal/metrics"
	"github.com/mauv0809/probable-spork/internal/pubsub"
	"github.com/mauv0809/probable-spork/internal/session"
)

// Service owns all matchmaking state: the three queues, the player reverse
// index and the match registry form one critical section guarded by a single
// mutex. It is constructed at service start and torn down at shutdown; there
// is no package-level state.
type Service struct {
	mu sync.Mutex

	cfg      config.MatchmakingConfig
	human    *bucketQueue
	ai       *bucketQueue
	anyQueue *bucketQueue
	lookup   map[string]OpponentType // player -> queue holding them
	registry *matchRegistry
	engine   *engine

	metrics metrics.Metrics
	pubsub  pubsub.PubSubClient

	now func() time.Time
}

var _ Matchmaker = (*Service)(nil)

// New creates the matchmaking service.
func New(
	cfg config.MatchmakingConfig,
	catalog *BotCatalog,
	policy PairingPolicy,
	allocator session.Allocator,
	metricsSvc metrics.Metrics,
	pubsubClient pubsub.PubSubClient,
) *Service {
	return &Service{
		cfg:      cfg,
		human:    newBucketQueue(cfg.BucketGranularity, cfg.BucketPolicy),
		ai:       newBucketQueue(cfg.BucketGranularity, cfg.BucketPolicy),
		anyQueue: newBucketQueue(cfg.BucketGranularity, cfg.BucketPolicy),
		lookup:   make(map[string]OpponentType),
		registry: newMatchRegistry(cfg.MatchTTL),
		engine:   newEngine(cfg, catalog, policy, allocator),
		metrics:  metricsSvc,
		pubsub:   pubsubClient,
		now:      time.Now,
	}
}

// Enqueue adds a player to the queue selected by their opponent preference and
// returns their initial queue status.
func (s *Service) Enqueue(req EnqueueRequest) (QueueStatus, error) {
	if req.PlayerID == "" || !req.Preference.Valid() {
		return QueueStatus{}, fmt.Errorf("invalid enqueue request for player %q", req.PlayerID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, queued := s.lookup[req.PlayerID]; queued {
		return QueueStatus{}, ErrDuplicateEnqueue
	}
	// A player with an undelivered pairing must resolve it before requeueing,
	// otherwise they could appear in two live decisions at once.
	if s.registry.hasUnretired(req.PlayerID) {
		return QueueStatus{}, ErrDuplicateEnqueue
	}

	player := &WaitingPlayer{
		PlayerID:   req.PlayerID,
		Rating:     req.Rating,
		Preference: req.Preference,
		MinRating:  req.MinRating,
		MaxRating:  req.MaxRating,
		EnqueuedAt: s.now(),
	}

	q := s.queueFor(req.Preference)
	if err := q.add(player); err != nil {
		return QueueStatus{}, err
	}
	s.lookup[req.PlayerID] = req.Preference
	s.updateGaugesLocked()

	log.Info("Player queued", "player", req.PlayerID, "rating", req.Rating, "preference", req.Preference)
	return s.statusLocked(player, q), nil
}

// Cancel removes the player from whichever queue holds them. Returns false if
// the player is not queued. Idempotent.
func (s *Service) Cancel(playerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	pref, queued := s.lookup[playerID]
	if !queued {
		return false
	}
	s.queueFor(pref).remove(playerID)
	delete(s.lookup, playerID)
	s.updateGaugesLocked()

	log.Info("Player left queue", "player", playerID)
	return true
}

// Status returns the player's current queue status, or ErrNotFound.
func (s *Service) Status(playerID string) (QueueStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pref, queued := s.lookup[playerID]
	if !queued {
		return QueueStatus{}, ErrNotFound
	}
	q := s.queueFor(pref)
	player := q.find(playerID)
	if player == nil {
		return QueueStatus{}, ErrNotFound
	}
	return s.statusLocked(player, q), nil
}

// Poll returns the player's view of their recorded pairing, if one exists.
func (s *Service) Poll(playerID string) (*MatchView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.registry.findFor(playerID)
	if d == nil {
		return nil, false
	}
	return viewFor(d, playerID), true
}

// Accept validates the session id against the player's recorded decision.
func (s *Service) Accept(playerID, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.registry.accept(playerID, sessionID)
	if err == nil {
		s.updateGaugesLocked()
	}
	return err
}

// Stats returns a read-only snapshot of queue sizes and live match count.
func (s *Service) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		HumanQueueSize: s.human.size(),
		AIQueueSize:    s.ai.size(),
		AnyQueueSize:   s.anyQueue.size(),
		ActiveMatches:  s.registry.size(),
	}
}

// Tick runs one pairing pass over all queues and returns the number of
// decisions created. Pairings are recorded in the registry before Tick
// returns; the match-created events go out after the lock is released.
func (s *Service) Tick() int {
	start := s.now()
	decisions := s.runTickLocked(start)

	for _, d := range decisions {
		if err := s.pubsub.SendMessage(pubsub.EventMatchCreated, d); err != nil {
			log.Error("Failed to publish match-created event", "error", err, "session", d.SessionID)
		}
		if d.IsBotMatch {
			s.metrics.IncBotPairings()
		} else {
			s.metrics.IncHumanPairings()
		}
	}
	s.metrics.ObserveTickDuration(time.Since(start).Seconds())
	return len(decisions)
}

func (s *Service) runTickLocked(now time.Time) []*PairingDecision {
	s.mu.Lock()
	defer s.mu.Unlock()

	decisions := s.engine.runTick(s.human, s.ai, s.anyQueue, now)
	for _, d := range decisions {
		delete(s.lookup, d.White)
		if !d.IsBotMatch {
			delete(s.lookup, d.Black)
		}
		s.registry.record(d)
	}
	s.registry.sweep(now)
	s.updateGaugesLocked()
	return decisions
}

func (s *Service) queueFor(pref OpponentType) *bucketQueue {
	switch pref {
	case OpponentHuman:
		return s.human
	case OpponentAI:
		return s.ai
	default:
		return s.anyQueue
	}
}

func (s *Service) statusLocked(player *WaitingPlayer, q *bucketQueue) QueueStatus {
	return QueueStatus{
		IsQueued:             true,
		QueuePosition:        q.position(player, s.cfg.BaseRatingRange),
		EstimatedWaitSeconds: estimateWait(q.size()),
		PreferredOpponent:    player.Preference,
	}
}

func (s *Service) updateGaugesLocked() {
	s.metrics.SetQueueSizes(float64(s.human.size()), float64(s.ai.size()), float64(s.anyQueue.size()))
	s.metrics.SetActiveMatches(float64(s.registry.size()))
}

// viewFor projects a decision into one participant's perspective.
func viewFor(d *PairingDecision, playerID string) *MatchView {
	view := &MatchView{
		SessionID: d.SessionID,
		IsBot:     d.IsBotMatch,
		BotLevel:  d.BotLevel,
	}
	if d.White == playerID {
		view.Opponent = d.Black
		view.OpponentRating = d.BlackRating
		view.Color = SideWhite
	} else {
		view.Opponent = d.White
		view.OpponentRating = d.WhiteRating
		view.Color = SideBlack
	}
	return view
}
