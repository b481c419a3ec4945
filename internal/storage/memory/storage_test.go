package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/connectfour-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) newGame(id model.GameID) *model.Game {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return &model.Game{
		ID:    id,
		State: model.GameStateInProgress,
		Players: [2]model.Player{
			{Name: "Alice", Mark: model.MarkPlayer1, Kind: model.PlayerKindHuman},
			{Name: model.ComputerName, Mark: model.MarkPlayer2, Kind: model.PlayerKindComputer},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Game tests

func (s *StorageSuite) TestSaveAndGetGame() {
	game := s.newGame("game-1")

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.Equal(game.Players, retrieved.Players)
	s.Equal(model.GameStateInProgress, retrieved.State)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestSavedGameIsCopied() {
	game := s.newGame("game-1")
	_ = s.storage.SaveGame(s.ctx, game)

	game.Moves = append(game.Moves, model.Move{Column: 3, Mark: model.MarkPlayer1})
	game.SwapTurn()

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Empty(retrieved.Moves)
	s.Equal(0, retrieved.CurrentIdx)
}

func (s *StorageSuite) TestDeleteGame() {
	_ = s.storage.SaveGame(s.ctx, s.newGame("game-1"))

	err := s.storage.DeleteGame(s.ctx, "game-1")
	s.Require().NoError(err)

	_, err = s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

// Board tests

func (s *StorageSuite) TestSaveAndGetBoard() {
	board := model.NewBoard("game-1")
	board.ApplyMove(3, model.MarkPlayer1)

	err := s.storage.SaveBoard(s.ctx, board)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetBoard(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(board.Cells, retrieved.Cells)
}

func (s *StorageSuite) TestGetBoardNotFound() {
	_, err := s.storage.GetBoard(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrBoardNotFound)
}

func (s *StorageSuite) TestRetrievedBoardIsIndependent() {
	_ = s.storage.SaveBoard(s.ctx, model.NewBoard("game-1"))

	retrieved, _ := s.storage.GetBoard(s.ctx, "game-1")
	retrieved.ApplyMove(0, model.MarkPlayer2)

	again, err := s.storage.GetBoard(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(0, again.Count())
}

func (s *StorageSuite) TestDeleteBoard() {
	_ = s.storage.SaveBoard(s.ctx, model.NewBoard("game-1"))

	err := s.storage.DeleteBoard(s.ctx, "game-1")
	s.Require().NoError(err)

	_, err = s.storage.GetBoard(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrBoardNotFound)
}
