package matchmaking

import "fmt"

// BotConfig describes one synthetic-opponent difficulty level. The behaviour
// parameters are carried on the pairing decision's metadata only; they do not
// influence pairing.
type BotConfig struct {
	Rating     int
	Aggression int
	ErrorRate  int
}

// BotCatalog is the static lookup from a player's rating to an appropriate
// synthetic-opponent difficulty level.
type BotCatalog struct {
	levels map[int]BotConfig
}

const (
	minBotLevel = 1
	maxBotLevel = 10
)

// NewBotCatalog creates the catalog with the standard ten difficulty levels.
func NewBotCatalog() *BotCatalog {
	return &BotCatalog{
		levels: map[int]BotConfig{
			1:  {Rating: 400, Aggression: 10, ErrorRate: 30},
			2:  {Rating: 600, Aggression: 15, ErrorRate: 25},
			3:  {Rating: 800, Aggression: 20, ErrorRate: 20},
			4:  {Rating: 1000, Aggression: 25, ErrorRate: 15},
			5:  {Rating: 1200, Aggression: 30, ErrorRate: 12},
			6:  {Rating: 1400, Aggression: 35, ErrorRate: 10},
			7:  {Rating: 1600, Aggression: 40, ErrorRate: 8},
			8:  {Rating: 1800, Aggression: 45, ErrorRate: 6},
			9:  {Rating: 2000, Aggression: 50, ErrorRate: 4},
			10: {Rating: 2200, Aggression: 55, ErrorRate: 2},
		},
	}
}

// LevelFor maps a rating to a difficulty level via a clamped linear transform.
func (c *BotCatalog) LevelFor(rating int) int {
	level := (rating-200)/200 + 1
	if level < minBotLevel {
		return minBotLevel
	}
	if level > maxBotLevel {
		return maxBotLevel
	}
	return level
}

// NominalRating returns the rating estimate for a difficulty level.
func (c *BotCatalog) NominalRating(level int) int {
	return c.levels[level].Rating
}

// BehaviorParams returns the aggression and error-rate parameters for a level.
func (c *BotCatalog) BehaviorParams(level int) (aggression, errorRate int) {
	cfg := c.levels[level]
	return cfg.Aggression, cfg.ErrorRate
}

// BotID is the opaque identity used for a synthetic opponent of the given level.
func BotID(level int) string {
	return fmt.Sprintf("bot_%d", level)
}
