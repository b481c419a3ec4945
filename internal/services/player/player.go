package player

import (
	"context"

	"github.com/mcoot/connectfour-go/internal/model"
)

// Player produces the next move for a game
type Player interface {
	// Info returns the player's name, mark and kind
	Info() model.Player
	// NextMove returns a column that is legal on the given board
	NextMove(ctx context.Context, board *model.Board) (int, error)
}

// Terminal is the line-oriented channel a human plays through
type Terminal interface {
	Prompt(prompt string) (string, error)
	Println(text string)
}
