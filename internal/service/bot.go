package service

import (
	"math"

	"github.com/rocketscienceinc/ghost-tictactoe/internal/entity"
)

const (
	scoreComputerWin = 1
	scoreHumanWin    = -1
	scoreDraw        = 0
)

type BotService interface {
	BestMove(board entity.Board) (entity.Move, bool)
}

// SearchRecorder receives the number of positions visited by each search.
type SearchRecorder interface {
	ObserveSearch(nodes int)
}

type botService struct {
	recorder SearchRecorder
}

// NewBotService returns a minimax opponent playing the computer's marks. recorder may be nil.
func NewBotService(recorder SearchRecorder) BotService {
	return &botService{recorder: recorder}
}

// BestMove returns the optimal cell for the computer, or false on a full board.
// Scores ignore depth, and ties resolve to the first cell in row-major order.
func (that *botService) BestMove(board entity.Board) (entity.Move, bool) {
	work := board.Snapshot()
	nodes := 0

	bestScore := math.MinInt
	var bestMove entity.Move
	found := false

	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			if work[row][col] != entity.EmptyCell {
				continue
			}

			work[row][col] = entity.ComputerCell
			score := minimax(&work, false, &nodes)
			work[row][col] = entity.EmptyCell

			if score > bestScore {
				bestScore = score
				bestMove = entity.Move{Row: row, Col: col}
				found = true
			}
		}
	}

	if that.recorder != nil {
		that.recorder.ObserveSearch(nodes)
	}

	return bestMove, found
}

func minimax(board *entity.Board, maximizing bool, nodes *int) int {
	*nodes++

	if entity.HasWon(*board, entity.Computer) {
		return scoreComputerWin
	}

	if entity.HasWon(*board, entity.Human) {
		return scoreHumanWin
	}

	if board.IsFull() {
		return scoreDraw
	}

	mark, best := entity.HumanCell, math.MaxInt
	if maximizing {
		mark, best = entity.ComputerCell, math.MinInt
	}

	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			if board[row][col] != entity.EmptyCell {
				continue
			}

			board[row][col] = mark
			score := minimax(board, !maximizing, nodes)
			board[row][col] = entity.EmptyCell

			if maximizing && score > best || !maximizing && score < best {
				best = score
			}
		}
	}

	return best
}
