package redis

import (
	"fmt"

	"github.com/mcoot/connectfour-go/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "c4game"

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// boardKey returns the Redis key for the Board of a game
func boardKey(gameID model.GameID) string {
	return fmt.Sprintf("%s:board:%s", keyPrefix, gameID)
}
