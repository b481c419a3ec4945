package board

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/storage"
)

// Service provides board operations backed by storage
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new BoardService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger.With(slog.String("component", "board-service")),
	}
}

// CreateBoard initializes an empty board for a game
func (s *Service) CreateBoard(ctx context.Context, gameID model.GameID) (*model.Board, error) {
	board := model.NewBoard(gameID)
	if err := s.storage.SaveBoard(ctx, board); err != nil {
		return nil, err
	}
	return board, nil
}

// GetBoard retrieves the board for a game
func (s *Service) GetBoard(ctx context.Context, gameID model.GameID) (*model.Board, error) {
	return s.storage.GetBoard(ctx, gameID)
}

// DeleteBoard removes the board for a game
func (s *Service) DeleteBoard(ctx context.Context, gameID model.GameID) error {
	return s.storage.DeleteBoard(ctx, gameID)
}

// ApplyMove drops a mark into the column and persists the board.
// It returns the row the piece landed on.
func (s *Service) ApplyMove(ctx context.Context, board *model.Board, column int, mark model.Mark) (int, error) {
	if err := ValidateMark(mark); err != nil {
		return -1, err
	}
	if err := ValidateMove(board, column); err != nil {
		return -1, err
	}

	row, ok := board.Drop(column, mark)
	if !ok {
		return -1, model.ErrColumnFull
	}

	s.logger.Debug("piece dropped",
		slog.String("game_id", string(board.GameID)),
		slog.Int("column", column),
		slog.Int("row", row),
		slog.String("mark", mark.String()),
	)

	if err := s.storage.SaveBoard(ctx, board); err != nil {
		return -1, fmt.Errorf("save board: %w", err)
	}
	return row, nil
}

// ValidateMove checks the column is in range and not full
func ValidateMove(board *model.Board, column int) error {
	if !model.IsValidColumn(column) {
		return model.ErrInvalidColumn
	}
	if !board.IsValidMove(column) {
		return model.ErrColumnFull
	}
	return nil
}

// ValidateMark checks the mark is one of the two player marks
func ValidateMark(mark model.Mark) error {
	if mark != model.MarkPlayer1 && mark != model.MarkPlayer2 {
		return model.ErrInvalidMark
	}
	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	CreateBoard(ctx context.Context, gameID model.GameID) (*model.Board, error)
	GetBoard(ctx context.Context, gameID model.GameID) (*model.Board, error)
	DeleteBoard(ctx context.Context, gameID model.GameID) error
	ApplyMove(ctx context.Context, board *model.Board, column int, mark model.Mark) (int, error)
}

var _ ServiceInterface = (*Service)(nil)
