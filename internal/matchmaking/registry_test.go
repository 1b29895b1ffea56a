package matchmaking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func humanDecision(sessionID string, createdAt time.Time) *PairingDecision {
	return &PairingDecision{
		SessionID:   sessionID,
		White:       "alice",
		WhiteRating: 1100,
		Black:       "bob",
		BlackRating: 1000,
		CreatedAt:   createdAt,
	}
}

func TestFindFor(t *testing.T) {
	r := newMatchRegistry(5 * time.Minute)
	now := time.Now()

	assert.Nil(t, r.findFor("alice"))

	d := humanDecision("s-1", now)
	r.record(d)

	assert.Equal(t, d, r.findFor("alice"))
	assert.Equal(t, d, r.findFor("bob"))
	assert.Nil(t, r.findFor("carol"))
}

func TestAcceptRetiresAfterBothSides(t *testing.T) {
	r := newMatchRegistry(5 * time.Minute)
	r.record(humanDecision("s-1", time.Now()))

	require.NoError(t, r.accept("alice", "s-1"))
	// Still live until bob accepts; repeat polls keep returning it.
	assert.NotNil(t, r.findFor("alice"))
	assert.Equal(t, 1, r.size())

	// Accepting twice is harmless.
	require.NoError(t, r.accept("alice", "s-1"))

	require.NoError(t, r.accept("bob", "s-1"))
	assert.Nil(t, r.findFor("alice"))
	assert.Nil(t, r.findFor("bob"))
	assert.Equal(t, 0, r.size())
}

func TestAcceptErrors(t *testing.T) {
	r := newMatchRegistry(5 * time.Minute)
	r.record(humanDecision("s-1", time.Now()))

	assert.ErrorIs(t, r.accept("carol", "s-1"), ErrNotFound)
	assert.ErrorIs(t, r.accept("alice", "wrong-session"), ErrMatchMismatch)

	// The failed attempts left the decision untouched.
	assert.NotNil(t, r.findFor("alice"))
}

func TestBotSidePreAccepted(t *testing.T) {
	r := newMatchRegistry(5 * time.Minute)
	r.record(&PairingDecision{
		SessionID:   "s-1",
		White:       "alice",
		WhiteRating: 1500,
		Black:       "bot_7",
		BlackRating: 1600,
		IsBotMatch:  true,
		BotLevel:    7,
		CreatedAt:   time.Now(),
	})

	// One human accept retires a bot match.
	require.NoError(t, r.accept("alice", "s-1"))
	assert.Nil(t, r.findFor("alice"))
	assert.Equal(t, 0, r.size())
}

func TestSweep(t *testing.T) {
	r := newMatchRegistry(5 * time.Minute)
	now := time.Now()

	r.record(humanDecision("s-old", now.Add(-10*time.Minute)))
	r.record(&PairingDecision{
		SessionID: "s-fresh",
		White:     "carol",
		Black:     "dave",
		CreatedAt: now,
	})

	retired := r.sweep(now)

	assert.Equal(t, 1, retired)
	assert.Nil(t, r.findFor("alice"))
	assert.NotNil(t, r.findFor("carol"))
	assert.Equal(t, 1, r.size())

	// Nothing left to sweep.
	assert.Equal(t, 0, r.sweep(now))
}

func TestSweepRetiresAllExpired(t *testing.T) {
	r := newMatchRegistry(5 * time.Minute)
	now := time.Now()

	// Consecutive expired decisions exercise the order compaction during
	// the sweep; every one of them must go.
	r.record(&PairingDecision{SessionID: "s-1", White: "a1", Black: "a2", CreatedAt: now.Add(-10 * time.Minute)})
	r.record(&PairingDecision{SessionID: "s-2", White: "b1", Black: "b2", CreatedAt: now.Add(-9 * time.Minute)})
	r.record(&PairingDecision{SessionID: "s-3", White: "c1", Black: "c2", CreatedAt: now.Add(-8 * time.Minute)})

	assert.Equal(t, 3, r.sweep(now))

	for _, player := range []string{"a1", "a2", "b1", "b2", "c1", "c2"} {
		assert.Nil(t, r.findFor(player), "player %s still has a decision", player)
	}
	assert.Equal(t, 0, r.size())
	assert.Empty(t, r.order)
}

func TestHasUnretired(t *testing.T) {
	r := newMatchRegistry(5 * time.Minute)
	r.record(humanDecision("s-1", time.Now()))

	assert.True(t, r.hasUnretired("alice"))
	assert.False(t, r.hasUnretired("carol"))

	require.NoError(t, r.accept("alice", "s-1"))
	require.NoError(t, r.accept("bob", "s-1"))
	assert.False(t, r.hasUnretired("alice"))
}

func TestFindForReturnsOldestDecision(t *testing.T) {
	r := newMatchRegistry(5 * time.Minute)
	now := time.Now()

	r.record(humanDecision("s-1", now))
	r.record(&PairingDecision{SessionID: "s-2", White: "alice", Black: "eve", CreatedAt: now.Add(time.Second)})

	d := r.findFor("alice")
	require.NotNil(t, d)
	assert.Equal(t, "s-1", d.SessionID)
}
