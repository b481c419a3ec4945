package player_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/connectfour-go/internal/console"
	"github.com/mcoot/connectfour-go/internal/dependencies/mocks"
	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/services/bot"
	"github.com/mcoot/connectfour-go/internal/services/player"
)

const alicePrompt = "Alice is the X, enter your column (0-6): "

type PlayerSuite struct {
	suite.Suite
	out   *bytes.Buffer
	board *model.Board
	ctx   context.Context
}

func TestPlayerSuite(t *testing.T) {
	suite.Run(t, new(PlayerSuite))
}

func (s *PlayerSuite) SetupTest() {
	s.out = &bytes.Buffer{}
	s.board = model.NewBoard("game-1")
	s.ctx = context.Background()
}

func (s *PlayerSuite) newHuman(input string) *player.Human {
	return player.NewHuman("Alice", model.MarkPlayer1, console.New(strings.NewReader(input), s.out))
}

// Human tests

func (s *PlayerSuite) TestHumanInfo() {
	info := s.newHuman("").Info()
	s.Equal("Alice", info.Name)
	s.Equal(model.MarkPlayer1, info.Mark)
	s.Equal(model.PlayerKindHuman, info.Kind)
}

func (s *PlayerSuite) TestHumanAcceptsValidColumn() {
	col, err := s.newHuman("3\n").NextMove(s.ctx, s.board)
	s.Require().NoError(err)
	s.Equal(3, col)
	s.Equal(alicePrompt, s.out.String())
}

func (s *PlayerSuite) TestHumanRepromptsOnMalformedAndOutOfRange() {
	col, err := s.newHuman("abc\n9\n3\n").NextMove(s.ctx, s.board)
	s.Require().NoError(err)
	s.Equal(3, col)

	expected := alicePrompt + player.InvalidMoveMessage + "\n" +
		alicePrompt + player.InvalidMoveMessage + "\n" +
		alicePrompt
	s.Equal(expected, s.out.String())
}

func (s *PlayerSuite) TestHumanRepromptsOnFullColumn() {
	for s.board.ApplyMove(2, model.MarkPlayer2) {
	}

	col, err := s.newHuman("2\n-1\n 4 \n").NextMove(s.ctx, s.board)
	s.Require().NoError(err)
	s.Equal(4, col)
	s.Equal(2, strings.Count(s.out.String(), player.InvalidMoveMessage))
}

func (s *PlayerSuite) TestHumanInputClosedIsFatal() {
	_, err := s.newHuman("abc\n").NextMove(s.ctx, s.board)
	s.ErrorIs(err, model.ErrInputClosed)
}

func (s *PlayerSuite) TestHumanHonoursCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.newHuman("3\n").NextMove(ctx, s.board)
	s.ErrorIs(err, context.Canceled)
	s.Empty(s.out.String())
}

// Computer tests

func (s *PlayerSuite) TestComputerInfo() {
	c := player.NewComputer(model.ComputerName, model.MarkPlayer2, bot.NewRandomStrategy(mocks.NewMockRandom()))
	info := c.Info()
	s.Equal(model.ComputerName, info.Name)
	s.Equal(model.MarkPlayer2, info.Mark)
	s.True(info.IsComputer())
}

func (s *PlayerSuite) TestComputerUsesStrategy() {
	rnd := mocks.NewMockRandom()
	rnd.QueueIntn(6)
	c := player.NewComputer(model.ComputerName, model.MarkPlayer2, bot.NewRandomStrategy(rnd))

	col, err := c.NextMove(s.ctx, s.board)
	s.Require().NoError(err)
	s.Equal(6, col)
}

func (s *PlayerSuite) TestComputerNeverChoosesFullColumn() {
	rnd := mocks.NewMockRandom()
	c := player.NewComputer(model.ComputerName, model.MarkPlayer2, bot.NewRandomStrategy(rnd))
	for s.board.ApplyMove(0, model.MarkPlayer1) {
	}

	// Index 0 of the legal columns is column 1 once column 0 is full
	rnd.QueueIntn(0)
	col, err := c.NextMove(s.ctx, s.board)
	s.Require().NoError(err)
	s.Equal(1, col)
}

func (s *PlayerSuite) TestComputerFullBoard() {
	c := player.NewComputer(model.ComputerName, model.MarkPlayer2, bot.NewRandomStrategy(mocks.NewMockRandom()))
	for col := 0; col < model.Columns; col++ {
		for s.board.ApplyMove(col, model.MarkPlayer1) {
		}
	}

	_, err := c.NextMove(s.ctx, s.board)
	s.ErrorIs(err, model.ErrBoardFull)
}
