package bot_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/connectfour-go/internal/dependencies/mocks"
	"github.com/mcoot/connectfour-go/internal/dependencies/random"
	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/services/bot"
)

type StrategySuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
	strategy   *bot.RandomStrategy
	rejection  *bot.RejectionStrategy
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategySuite))
}

func (s *StrategySuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
	s.strategy = bot.NewRandomStrategy(s.mockRandom)
	s.rejection = bot.NewRejectionStrategy(s.mockRandom)
}

func fillColumn(board *model.Board, column int) {
	for board.ApplyMove(column, model.MarkPlayer1) {
	}
}

func (s *StrategySuite) TestChooseColumnEmptyBoard() {
	board := model.NewBoard("game-1")
	s.mockRandom.QueueIntn(4)

	col, err := s.strategy.ChooseColumn(board)
	s.Require().NoError(err)
	s.Equal(4, col)
	s.Equal([]int{model.Columns}, s.mockRandom.IntnCalls)
}

func (s *StrategySuite) TestChooseColumnSkipsFullColumns() {
	board := model.NewBoard("game-1")
	fillColumn(board, 0)
	fillColumn(board, 2)
	// Legal columns are 1, 3, 4, 5, 6
	s.mockRandom.QueueIntn(1)

	col, err := s.strategy.ChooseColumn(board)
	s.Require().NoError(err)
	s.Equal(3, col)
	s.Equal([]int{5}, s.mockRandom.IntnCalls)
}

func (s *StrategySuite) TestChooseColumnOnlyOneLegal() {
	board := model.NewBoard("game-1")
	for col := 0; col < model.Columns; col++ {
		if col != 5 {
			fillColumn(board, col)
		}
	}
	s.mockRandom.QueueIntn(0)

	col, err := s.strategy.ChooseColumn(board)
	s.Require().NoError(err)
	s.Equal(5, col)
}

func (s *StrategySuite) TestChooseColumnFullBoard() {
	board := model.NewBoard("game-1")
	for col := 0; col < model.Columns; col++ {
		fillColumn(board, col)
	}

	_, err := s.strategy.ChooseColumn(board)
	s.ErrorIs(err, model.ErrBoardFull)

	_, err = s.rejection.ChooseColumn(board)
	s.ErrorIs(err, model.ErrBoardFull)
}

func (s *StrategySuite) TestChooseColumnIsUniformOverLegalColumns() {
	board := model.NewBoard("game-1")
	fillColumn(board, 3)
	strategy := bot.NewRandomStrategy(random.NewSeeded(99))

	counts := make(map[int]int)
	for i := 0; i < 6000; i++ {
		col, err := strategy.ChooseColumn(board)
		s.Require().NoError(err)
		counts[col]++
	}

	s.Zero(counts[3])
	s.Len(counts, 6)
	for col, n := range counts {
		s.InDelta(1000, n, 150, "column %d", col)
	}
}

func (s *StrategySuite) TestRejectionRedrawsUntilLegal() {
	board := model.NewBoard("game-1")
	fillColumn(board, 2)
	fillColumn(board, 6)
	s.mockRandom.QueueIntn(2, 6, 2, 4)

	col, err := s.rejection.ChooseColumn(board)
	s.Require().NoError(err)
	s.Equal(4, col)
	s.Equal([]int{7, 7, 7, 7}, s.mockRandom.IntnCalls)
}

func (s *StrategySuite) TestNewStrategy() {
	strategy, err := bot.NewStrategy(model.BotStrategyRandom, s.mockRandom)
	s.Require().NoError(err)
	s.IsType(&bot.RandomStrategy{}, strategy)

	strategy, err = bot.NewStrategy(model.BotStrategyRejection, s.mockRandom)
	s.Require().NoError(err)
	s.IsType(&bot.RejectionStrategy{}, strategy)

	_, err = bot.NewStrategy("minimax", s.mockRandom)
	s.Error(err)
}
