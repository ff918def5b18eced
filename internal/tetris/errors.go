package tetris

import "errors"

// Sentinel errors for the programmer-error conditions §7 names. Everything
// else (a kick that can't land, a translate into a wall, a hold when
// !can_hold) is a silent no-op, matching real Tetris input handling.
var (
	// ErrGameOver is returned by any command issued after the game has
	// died.
	ErrGameOver = errors.New("tetris: game over")

	// ErrHoldRefused is returned by DangerouslyDropPiece when the
	// requested kind cannot be reached via an implicit hold.
	ErrHoldRefused = errors.New("tetris: hold refused")

	// ErrInvalidCommand is returned for an unrecognised command token.
	ErrInvalidCommand = errors.New("tetris: invalid command")

	// ErrInvalidOptions is returned for a malformed attack or combo table,
	// or an unparsable wire snapshot.
	ErrInvalidOptions = errors.New("tetris: invalid options")
)
