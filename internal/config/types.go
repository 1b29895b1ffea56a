package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	Port        string
	ProjectID   string // GCP project for pubsub; empty means events go to a no-op mock
	Matchmaking MatchmakingConfig
	Rating      RatingConfig
}

// MatchmakingConfig holds the tuning knobs for the pairing core.
type MatchmakingConfig struct {
	// BucketGranularity is the rating rounding step used for bucket keys.
	BucketGranularity int
	// BaseRatingRange is the initial acceptable rating distance for a pairing.
	BaseRatingRange int
	// RangeExpandThreshold is how long a player waits before the range starts widening.
	RangeExpandThreshold time.Duration
	// RangeExpandInterval is the wait time per additional widening step.
	RangeExpandInterval time.Duration
	// RangeExpandStep is the rating distance added per widening step.
	RangeExpandStep int
	// BotFallbackWait is how long an ANY-queue player waits before getting a bot.
	BotFallbackWait time.Duration
	// TickInterval is the scheduler cadence.
	TickInterval time.Duration
	// MatchTTL is how long an unaccepted pairing decision is kept before it is swept.
	MatchTTL time.Duration
	// BucketPolicy decides what happens when two players round into the same bucket.
	BucketPolicy BucketPolicy
}

// RatingConfig configures the default rating source.
type RatingConfig struct {
	DefaultRating int
}

// BucketPolicy is the collision policy for rating buckets.
type BucketPolicy string

const (
	// BucketPolicyList keeps an ordered list of waiters per bucket.
	BucketPolicyList BucketPolicy = "list"
	// BucketPolicyReject refuses a second waiter in an occupied bucket.
	BucketPolicyReject BucketPolicy = "reject"
)
