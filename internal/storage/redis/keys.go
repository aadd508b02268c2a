package redis

import "fmt"

// Key prefix for all game-related data
const keyPrefix = "t2048"

// savedGameKey returns the Redis key for an owner's saved game
func savedGameKey(owner, gameID string) string {
	return fmt.Sprintf("%s:save:%s:%s", keyPrefix, owner, gameID)
}
