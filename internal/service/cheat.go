package service

import (
	"fmt"

	"github.com/rocketscienceinc/ghost-tictactoe/internal/entity"
)

// RandomSource is satisfied by *rand.Rand.
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}

type CheatService interface {
	GhostMove(board *entity.Board) (entity.GhostMove, bool, error)
}

type cheatService struct {
	random      RandomSource
	probability float64
}

func NewCheatService(random RandomSource, probability float64) CheatService {
	return &cheatService{
		random:      random,
		probability: probability,
	}
}

// GhostMove rolls the dice once per call. On success a uniformly chosen human mark
// is moved to a uniformly chosen empty cell.
func (that *cheatService) GhostMove(board *entity.Board) (entity.GhostMove, bool, error) {
	if that.random.Float64() >= that.probability {
		return entity.GhostMove{}, false, nil
	}

	humanCells := board.CellsOf(entity.HumanCell)
	emptyCells := board.CellsOf(entity.EmptyCell)
	if len(humanCells) == 0 || len(emptyCells) == 0 {
		return entity.GhostMove{}, false, nil
	}

	move := entity.GhostMove{
		From: humanCells[that.random.Intn(len(humanCells))],
		To:   emptyCells[that.random.Intn(len(emptyCells))],
	}

	if err := board.Relocate(move.From, move.To); err != nil {
		return entity.GhostMove{}, false, fmt.Errorf("failed to relocate mark: %w", err)
	}

	return move, true, nil
}
