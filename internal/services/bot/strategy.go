package bot

import (
	"fmt"

	"github.com/mcoot/connectfour-go/internal/dependencies/random"
	"github.com/mcoot/connectfour-go/internal/model"
)

// Strategy defines how a bot chooses a column
type Strategy interface {
	// ChooseColumn selects a legal column on the board
	ChooseColumn(board *model.Board) (int, error)
}

// NewStrategy builds the named strategy over the given random source
func NewStrategy(name string, rnd random.Random) (Strategy, error) {
	switch name {
	case model.BotStrategyRandom:
		return NewRandomStrategy(rnd), nil
	case model.BotStrategyRejection:
		return NewRejectionStrategy(rnd), nil
	default:
		return nil, fmt.Errorf("unknown bot strategy: %s", name)
	}
}
