package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/connectfour-go/internal/dependencies/clock"
	"github.com/mcoot/connectfour-go/internal/dependencies/random"
	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/services/board"
	"github.com/mcoot/connectfour-go/internal/services/player"
	"github.com/mcoot/connectfour-go/internal/storage"
)

const (
	// GameIDAlphabet is the character set for generating game IDs
	GameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// GameIDLength is the length of generated game IDs
	GameIDLength = 12

	// DrawMessage is printed when the board fills without a winner
	DrawMessage = "The game ended in a draw."
)

// Controller manages the game state machine and turn flow
type Controller struct {
	storage      storage.Storage
	boardService *board.Service
	clock        clock.Clock
	random       random.Random
	logger       *slog.Logger
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	boardService *board.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:      storage,
		boardService: boardService,
		clock:        clock,
		random:       random,
		logger:       logger.With(slog.String("component", "game-controller")),
	}
}

// CreateGame initializes a new game between two players with an empty board.
// Player 1 must hold MarkPlayer1 and player 2 MarkPlayer2.
func (c *Controller) CreateGame(ctx context.Context, player1, player2 model.Player) (*model.Game, error) {
	if player1.Mark != model.MarkPlayer1 || player2.Mark != model.MarkPlayer2 {
		return nil, model.ErrInvalidMark
	}

	now := c.clock.Now()
	gameID := model.GameID(c.random.String(GameIDLength, GameIDAlphabet))

	game := &model.Game{
		ID:         gameID,
		State:      model.GameStateInProgress,
		Players:    [2]model.Player{player1, player2},
		CurrentIdx: 0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := c.boardService.CreateBoard(ctx, gameID); err != nil {
		return nil, err
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(gameID)),
		slog.String("player1", player1.Name),
		slog.String("player2", player2.Name),
		slog.String("player2_kind", string(player2.Kind)),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// GetBoard retrieves the board of a game
func (c *Controller) GetBoard(ctx context.Context, gameID model.GameID) (*model.Board, error) {
	return c.boardService.GetBoard(ctx, gameID)
}

// PlayMove drops the current player's mark into the column.
// A rejected move leaves the board and turn unchanged. After a successful
// move the state is re-evaluated and the turn passes only while the game
// is still in progress.
func (c *Controller) PlayMove(ctx context.Context, gameID model.GameID, column int) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.State.IsTerminal() {
		return nil, model.ErrGameComplete
	}

	boardObj, err := c.boardService.GetBoard(ctx, gameID)
	if err != nil {
		return nil, err
	}

	current := game.CurrentPlayer()
	row, err := c.boardService.ApplyMove(ctx, boardObj, column, current.Mark)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	game.Moves = append(game.Moves, model.Move{
		Column:   column,
		Row:      row,
		Mark:     current.Mark,
		PlayedAt: now,
	})
	game.State = boardObj.EvaluateState()
	game.UpdatedAt = now

	if game.State == model.GameStateInProgress {
		game.SwapTurn()
	} else {
		c.logger.Info("game completed",
			slog.String("game_id", string(game.ID)),
			slog.String("state", string(game.State)),
			slog.Int("total_moves", len(game.Moves)),
		)
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// Play runs the turn loop until the game reaches a terminal state.
// The board is rendered to out before every turn and once more at the end,
// followed by the result message. The finished game is removed from storage.
func (c *Controller) Play(ctx context.Context, gameID model.GameID, players [2]player.Player, out io.Writer) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	for i, p := range players {
		if p == nil || p.Info() != game.Players[i] {
			return nil, model.ErrPlayerMismatch
		}
	}

	boardObj, err := c.boardService.GetBoard(ctx, gameID)
	if err != nil {
		return nil, err
	}

	for !game.State.IsTerminal() {
		writeBoard(out, boardObj)

		current := players[game.CurrentIdx]
		column, err := current.NextMove(ctx, boardObj)
		if err != nil {
			c.abandon(ctx, game.ID, err)
			return nil, fmt.Errorf("game %s: %w", game.ID, err)
		}

		updated, err := c.PlayMove(ctx, game.ID, column)
		if err != nil {
			if errors.Is(err, model.ErrInvalidColumn) || errors.Is(err, model.ErrColumnFull) {
				c.logger.Warn("move rejected",
					slog.String("game_id", string(game.ID)),
					slog.String("player", current.Info().Name),
					slog.Int("column", column),
				)
				_, _ = fmt.Fprintln(out, player.InvalidMoveMessage)
				continue
			}
			return nil, err
		}
		game = updated

		if boardObj, err = c.boardService.GetBoard(ctx, gameID); err != nil {
			return nil, err
		}
	}

	writeBoard(out, boardObj)
	_, _ = fmt.Fprintln(out, ResultMessage(game))

	if err := c.removeGame(ctx, game.ID); err != nil {
		c.logger.Warn("failed to remove finished game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
	}

	return game, nil
}

// AbandonGame removes an unfinished game
func (c *Controller) AbandonGame(ctx context.Context, gameID model.GameID) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.State.IsTerminal() {
		return model.ErrGameComplete
	}

	c.logger.Info("game abandoned",
		slog.String("game_id", string(gameID)),
		slog.Int("total_moves", len(game.Moves)),
	)

	return c.removeGame(ctx, gameID)
}

// abandon is used when the loop cannot continue; the cause is what the caller sees
func (c *Controller) abandon(ctx context.Context, gameID model.GameID, cause error) {
	c.logger.Warn("game aborted",
		slog.String("game_id", string(gameID)),
		slog.String("error", cause.Error()),
	)
	if err := c.AbandonGame(context.WithoutCancel(ctx), gameID); err != nil {
		c.logger.Warn("failed to abandon game",
			slog.String("game_id", string(gameID)),
			slog.String("error", err.Error()),
		)
	}
}

func (c *Controller) removeGame(ctx context.Context, gameID model.GameID) error {
	if err := c.boardService.DeleteBoard(ctx, gameID); err != nil {
		return err
	}
	return c.storage.DeleteGame(ctx, gameID)
}

// ResultMessage describes how a finished game ended
func ResultMessage(game *model.Game) string {
	switch game.State {
	case model.GameStateDraw:
		return DrawMessage
	case model.GameStatePlayer1Wins, model.GameStatePlayer2Wins:
		winner, _ := game.Winner()
		return fmt.Sprintf("%s wins!", winner.Name)
	default:
		return ""
	}
}

func writeBoard(out io.Writer, b *model.Board) {
	_, _ = io.WriteString(out, b.Render())
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, player1, player2 model.Player) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	GetBoard(ctx context.Context, gameID model.GameID) (*model.Board, error)
	PlayMove(ctx context.Context, gameID model.GameID, column int) (*model.Game, error)
	Play(ctx context.Context, gameID model.GameID, players [2]player.Player, out io.Writer) (*model.Game, error)
	AbandonGame(ctx context.Context, gameID model.GameID) error
}

var _ ControllerInterface = (*Controller)(nil)
