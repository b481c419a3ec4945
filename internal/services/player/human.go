package player

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mcoot/connectfour-go/internal/model"
)

// InvalidMoveMessage is shown whenever a move is rejected
const InvalidMoveMessage = "Invalid move. Please try again."

// Human asks a person for moves through a terminal
type Human struct {
	info     model.Player
	terminal Terminal
}

// NewHuman creates a Human with the given name and mark
func NewHuman(name string, mark model.Mark, terminal Terminal) *Human {
	return &Human{
		info: model.Player{
			Name: name,
			Mark: mark,
			Kind: model.PlayerKindHuman,
		},
		terminal: terminal,
	}
}

// Info returns the player's descriptor
func (h *Human) Info() model.Player {
	return h.info
}

// NextMove prompts until the reply is an integer naming a legal column.
// Only a failure to read input ends the loop.
func (h *Human) NextMove(ctx context.Context, board *model.Board) (int, error) {
	prompt := fmt.Sprintf("%s is the %s, enter your column (0-%d): ", h.info.Name, h.info.Mark, model.Columns-1)
	for {
		if err := ctx.Err(); err != nil {
			return -1, err
		}

		reply, err := h.terminal.Prompt(prompt)
		if err != nil {
			return -1, fmt.Errorf("read move for %s: %w", h.info.Name, err)
		}

		column, err := strconv.Atoi(strings.TrimSpace(reply))
		if err == nil && board.IsValidMove(column) {
			return column, nil
		}
		h.terminal.Println(InvalidMoveMessage)
	}
}

var _ Player = (*Human)(nil)
