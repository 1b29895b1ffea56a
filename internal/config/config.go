package config

import (
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
// Every knob has a sensible default so the service can start with an empty
// environment.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	cfg := Config{
		Port:      getEnv("PORT", "8080"),
		ProjectID: getEnv("GCP_PROJECT", ""),
		Matchmaking: MatchmakingConfig{
			BucketGranularity:    getEnvInt("BUCKET_GRANULARITY", 100),
			BaseRatingRange:      getEnvInt("BASE_RATING_RANGE", 200),
			RangeExpandThreshold: getEnvDuration("RANGE_EXPAND_THRESHOLD", 30*time.Second),
			RangeExpandInterval:  getEnvDuration("RANGE_EXPAND_INTERVAL", 10*time.Second),
			RangeExpandStep:      getEnvInt("RANGE_EXPAND_STEP", 50),
			BotFallbackWait:      getEnvDuration("BOT_FALLBACK_WAIT", 10*time.Second),
			TickInterval:         getEnvDuration("TICK_INTERVAL", 2*time.Second),
			MatchTTL:             getEnvDuration("MATCH_TTL", 5*time.Minute),
			BucketPolicy:         loadBucketPolicy(),
		},
		Rating: RatingConfig{
			DefaultRating: getEnvInt("DEFAULT_RATING", 1200),
		},
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Error: environment variable %s must be an integer, got %q", key, value)
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Error: environment variable %s must be a duration (e.g. 30s), got %q", key, value)
	}
	return d
}

// loadBucketPolicy validates BUCKET_POLICY. The collision behaviour is an
// explicit deployment decision, so an unknown value is a startup failure
// rather than a silent default.
func loadBucketPolicy() BucketPolicy {
	value := getEnv("BUCKET_POLICY", string(BucketPolicyList))
	switch BucketPolicy(value) {
	case BucketPolicyList, BucketPolicyReject:
		return BucketPolicy(value)
	}
	log.Fatalf("Error: BUCKET_POLICY must be %q or %q, got %q", BucketPolicyList, BucketPolicyReject, value)
	return "" // never reached
}
