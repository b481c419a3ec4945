package model

import "strings"

// Board dimensions are fixed for every game
const (
	Rows    = 6
	Columns = 7

	// WinLength is the number of contiguous marks needed to win
	WinLength = 4
)

// Mark is the symbol occupying a cell, or MarkEmpty
type Mark rune

const (
	MarkEmpty   Mark = 0
	MarkPlayer1 Mark = 'X'
	MarkPlayer2 Mark = 'O'
)

// EmptyGlyph is how an empty cell is rendered
const EmptyGlyph = '.'

// String returns the mark as a single character
func (m Mark) String() string {
	if m == MarkEmpty {
		return string(EmptyGlyph)
	}
	return string(rune(m))
}

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from the bottom
	Col int // 0-indexed from the left
}

// direction is a step between neighbouring cells
type direction struct {
	dRow int
	dCol int
}

// winDirections are scanned from each cell when looking for four-in-a-row
var winDirections = []direction{
	{dRow: 0, dCol: 1},  // horizontal
	{dRow: 1, dCol: 0},  // vertical
	{dRow: 1, dCol: 1},  // up-right
	{dRow: -1, dCol: 1}, // down-right
}

// Board is the game grid for a specific game.
// Cells[0] is the bottom row; pieces fall towards it.
type Board struct {
	GameID GameID
	Cells  [Rows][Columns]Mark
}

// NewBoard creates an empty board
func NewBoard(gameID GameID) *Board {
	return &Board{GameID: gameID}
}

// Get returns the mark at the given position, or MarkEmpty if out of range
func (b *Board) Get(pos Position) Mark {
	if !b.IsValidPosition(pos) {
		return MarkEmpty
	}
	return b.Cells[pos.Row][pos.Col]
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < Rows && pos.Col >= 0 && pos.Col < Columns
}

// IsValidColumn returns true if the column index is in range
func IsValidColumn(column int) bool {
	return column >= 0 && column < Columns
}

// IsValidMove returns true if the column is in range and its top cell is empty
func (b *Board) IsValidMove(column int) bool {
	return IsValidColumn(column) && b.Cells[Rows-1][column] == MarkEmpty
}

// Drop places the mark in the lowest empty cell of the column and returns
// the row it landed on. The board is unchanged when ok is false.
func (b *Board) Drop(column int, mark Mark) (row int, ok bool) {
	if !IsValidColumn(column) || mark == MarkEmpty {
		return -1, false
	}
	for r := 0; r < Rows; r++ {
		if b.Cells[r][column] == MarkEmpty {
			b.Cells[r][column] = mark
			return r, true
		}
	}
	return -1, false
}

// ApplyMove drops the mark into the column, reporting whether it was placed
func (b *Board) ApplyMove(column int, mark Mark) bool {
	_, ok := b.Drop(column, mark)
	return ok
}

// IsFull returns true if every column's top cell is occupied
func (b *Board) IsFull() bool {
	for col := 0; col < Columns; col++ {
		if b.Cells[Rows-1][col] == MarkEmpty {
			return false
		}
	}
	return true
}

// Height returns the number of pieces in the column
func (b *Board) Height(column int) int {
	if !IsValidColumn(column) {
		return 0
	}
	height := 0
	for row := 0; row < Rows; row++ {
		if b.Cells[row][column] == MarkEmpty {
			break
		}
		height++
	}
	return height
}

// Count returns the number of occupied cells
func (b *Board) Count() int {
	count := 0
	for col := 0; col < Columns; col++ {
		count += b.Height(col)
	}
	return count
}

// LegalColumns returns the columns that can still accept a piece, in ascending order
func (b *Board) LegalColumns() []int {
	var legal []int
	for col := 0; col < Columns; col++ {
		if b.IsValidMove(col) {
			legal = append(legal, col)
		}
	}
	return legal
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// EvaluateState derives the game state from the board contents
func (b *Board) EvaluateState() GameState {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			mark := b.Cells[row][col]
			if mark == MarkEmpty {
				continue
			}
			for _, d := range winDirections {
				if b.lineFrom(Position{Row: row, Col: col}, d, mark) {
					return WinStateFor(mark)
				}
			}
		}
	}

	if b.IsFull() {
		return GameStateDraw
	}
	return GameStateInProgress
}

// lineFrom checks whether WinLength cells starting at pos all hold mark
func (b *Board) lineFrom(pos Position, d direction, mark Mark) bool {
	for i := 1; i < WinLength; i++ {
		next := Position{Row: pos.Row + i*d.dRow, Col: pos.Col + i*d.dCol}
		if !b.IsValidPosition(next) || b.Cells[next.Row][next.Col] != mark {
			return false
		}
	}
	return true
}

// Render draws the board top row first, followed by a blank line
func (b *Board) Render() string {
	var sb strings.Builder
	for row := Rows - 1; row >= 0; row-- {
		for col := 0; col < Columns; col++ {
			sb.WriteString(b.Cells[row][col].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	return sb.String()
}
