package player

import (
	"context"
	"fmt"

	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/services/bot"
)

// Computer delegates move selection to a bot strategy
type Computer struct {
	info     model.Player
	strategy bot.Strategy
}

// NewComputer creates the computer opponent
func NewComputer(name string, mark model.Mark, strategy bot.Strategy) *Computer {
	return &Computer{
		info: model.Player{
			Name: name,
			Mark: mark,
			Kind: model.PlayerKindComputer,
		},
		strategy: strategy,
	}
}

// Info returns the player's descriptor
func (c *Computer) Info() model.Player {
	return c.info
}

// NextMove asks the strategy for a legal column
func (c *Computer) NextMove(ctx context.Context, board *model.Board) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}
	column, err := c.strategy.ChooseColumn(board)
	if err != nil {
		return -1, fmt.Errorf("choose column for %s: %w", c.info.Name, err)
	}
	return column, nil
}

var _ Player = (*Computer)(nil)
