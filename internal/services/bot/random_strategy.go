package bot

import (
	"github.com/mcoot/connectfour-go/internal/dependencies/random"
	"github.com/mcoot/connectfour-go/internal/model"
)

// RandomStrategy picks uniformly among the columns that are not full
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseColumn picks a random legal column
func (s *RandomStrategy) ChooseColumn(board *model.Board) (int, error) {
	legal := board.LegalColumns()
	if len(legal) == 0 {
		return -1, model.ErrBoardFull
	}
	return legal[s.random.Intn(len(legal))], nil
}

// RejectionStrategy draws any column and redraws until it lands on a legal one
type RejectionStrategy struct {
	random random.Random
}

// NewRejectionStrategy creates a new RejectionStrategy
func NewRejectionStrategy(rnd random.Random) *RejectionStrategy {
	return &RejectionStrategy{random: rnd}
}

// ChooseColumn samples columns with replacement until one is legal
func (s *RejectionStrategy) ChooseColumn(board *model.Board) (int, error) {
	if board.IsFull() {
		return -1, model.ErrBoardFull
	}
	for {
		column := s.random.Intn(model.Columns)
		if board.IsValidMove(column) {
			return column, nil
		}
	}
}
