package apperror

import "errors"

var (
	ErrOutOfBounds        = errors.New("cell is out of bounds")
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrNotHumanCell       = errors.New("cell does not hold a human mark")
	ErrGameAlreadyStarted = errors.New("game is already started")
	ErrGameNotFinished    = errors.New("game is not finished")
	ErrNotPlayerTurn      = errors.New("it's not the player's turn")
	ErrSessionClosed      = errors.New("game session is closed")
	ErrNoAvailableMoves   = errors.New("no available moves")
)
