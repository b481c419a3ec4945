package model

import "errors"

// Common errors used across the application
var (
	// Board errors
	ErrBoardNotFound = errors.New("board not found")
	ErrInvalidColumn = errors.New("column out of range")
	ErrColumnFull    = errors.New("column is full")
	ErrBoardFull     = errors.New("board has no legal columns")

	// Game errors
	ErrGameNotFound   = errors.New("game not found")
	ErrGameComplete   = errors.New("game is already complete")
	ErrInvalidMark    = errors.New("invalid mark")
	ErrPlayerMismatch = errors.New("players do not match game")

	// Input errors
	ErrInputClosed = errors.New("input closed")
)
