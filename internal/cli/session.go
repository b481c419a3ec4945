package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/connectfour-go/internal/console"
	"github.com/mcoot/connectfour-go/internal/factory"
	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/services/player"
)

// Console text for the setup and exit screens
const (
	Banner        = "Connect Four Game"
	BannerRule    = "-----------------"
	Player1Prompt = "Enter Player 1's name: "
	Player2Prompt = "Enter Player 2's name: "
	ModeHeading   = "Select game mode:"
	ModeTwoLabel  = "1. Two Players"
	ModeVsLabel   = "2. Player vs. Computer"
	ModePrompt    = "Enter your choice (1-2): "
	InvalidChoice = "Invalid choice. Please try again."
	ExitPrompt    = "Press any key to exit."
)

// Session runs one interactive game from setup to the exit prompt
type Session struct {
	app    *factory.App
	term   *console.Console
	cfg    *Config
	logger *slog.Logger
}

// NewSession creates a Session over the given terminal
func NewSession(app *factory.App, term *console.Console, cfg *Config, logger *slog.Logger) *Session {
	return &Session{
		app:    app,
		term:   term,
		cfg:    cfg,
		logger: logger.With(slog.String("component", "session")),
	}
}

// Run shows the banner, collects the players, plays the game and waits for
// the exit keypress. Losing the input stream before the exit prompt is an error.
func (s *Session) Run(ctx context.Context) error {
	s.term.Println(Banner)
	s.term.Println(BannerRule)
	s.term.Println("")

	name1, err := s.answer(Player1Prompt, s.cfg.Player1)
	if err != nil {
		return err
	}
	s.term.Println("")

	mode, err := s.chooseMode()
	if err != nil {
		return err
	}
	s.term.Println("")

	players, err := s.buildPlayers(name1, mode)
	if err != nil {
		return err
	}

	game, err := s.app.GameController.CreateGame(ctx, players[0].Info(), players[1].Info())
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	if _, err := s.app.GameController.Play(ctx, game.ID, players, s.term.Out()); err != nil {
		return err
	}

	return s.waitForExit()
}

func (s *Session) buildPlayers(name1, mode string) ([2]player.Player, error) {
	var players [2]player.Player
	players[0] = player.NewHuman(name1, model.MarkPlayer1, s.term)

	if mode == ModeTwoPlayers {
		name2, err := s.answer(Player2Prompt, s.cfg.Player2)
		if err != nil {
			return players, err
		}
		players[1] = player.NewHuman(name2, model.MarkPlayer2, s.term)
		return players, nil
	}

	if s.cfg.Player2 != "" {
		s.logger.Warn("player2 name ignored against the computer", slog.String("player2", s.cfg.Player2))
	}
	computer, err := s.app.NewComputer(model.MarkPlayer2)
	if err != nil {
		return players, err
	}
	players[1] = computer
	return players, nil
}

// answer returns the preset value, or prompts for one
func (s *Session) answer(prompt, preset string) (string, error) {
	if preset != "" {
		return preset, nil
	}
	reply, err := s.term.Prompt(prompt)
	if err != nil {
		return "", fmt.Errorf("setup: %w", err)
	}
	return reply, nil
}

// chooseMode shows the menu and accepts only "1" or "2"
func (s *Session) chooseMode() (string, error) {
	if s.cfg.Mode != "" {
		return s.cfg.Mode, nil
	}

	s.term.Println(ModeHeading)
	s.term.Println(ModeTwoLabel)
	s.term.Println(ModeVsLabel)

	for {
		reply, err := s.term.Prompt(ModePrompt)
		if err != nil {
			return "", fmt.Errorf("setup: %w", err)
		}
		if reply == ModeTwoPlayers || reply == ModeVsComputer {
			return reply, nil
		}
		s.term.Println(InvalidChoice)
	}
}

// waitForExit blocks for one line; a closed input also counts as the keypress
func (s *Session) waitForExit() error {
	s.term.Println(ExitPrompt)
	if _, err := s.term.ReadLine(); err != nil && !errors.Is(err, model.ErrInputClosed) {
		return err
	}
	return nil
}
