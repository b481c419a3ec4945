package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState is derived from the board after every move
type GameState string

const (
	GameStateInProgress  GameState = "in_progress"
	GameStateDraw        GameState = "draw"
	GameStatePlayer1Wins GameState = "player1_wins"
	GameStatePlayer2Wins GameState = "player2_wins"
)

// IsTerminal returns true once no further moves can be played
func (s GameState) IsTerminal() bool {
	return s != GameStateInProgress
}

// WinStateFor maps a winning mark to the corresponding state
func WinStateFor(mark Mark) GameState {
	if mark == MarkPlayer1 {
		return GameStatePlayer1Wins
	}
	return GameStatePlayer2Wins
}

// Move records a single half-move
type Move struct {
	Column   int
	Row      int
	Mark     Mark
	PlayedAt time.Time
}

// Game pairs two players with one board and tracks whose turn it is
type Game struct {
	ID      GameID
	State   GameState
	Players [2]Player

	// Turn management
	CurrentIdx int // Index into Players for the player to move
	Moves      []Move

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CurrentPlayer returns the player whose turn it is
func (g *Game) CurrentPlayer() Player {
	return g.Players[g.CurrentIdx]
}

// SwapTurn hands the move to the other player
func (g *Game) SwapTurn() {
	g.CurrentIdx = 1 - g.CurrentIdx
}

// Winner returns the winning player, or false for a draw or unfinished game
func (g *Game) Winner() (Player, bool) {
	switch g.State {
	case GameStatePlayer1Wins:
		return g.Players[0], true
	case GameStatePlayer2Wins:
		return g.Players[1], true
	default:
		return Player{}, false
	}
}
