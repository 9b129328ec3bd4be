package service

import (
	"testing"

	"github.com/rocketscienceinc/ghost-tictactoe/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	e = entity.EmptyCell
	x = entity.HumanCell
	o = entity.ComputerCell
)

type nodeCounter struct {
	searches int
	nodes    int
}

func (that *nodeCounter) ObserveSearch(nodes int) {
	that.searches++
	that.nodes += nodes
}

func TestBotService_BestMove(t *testing.T) {
	t.Run("Empty board picks the first corner", func(t *testing.T) {
		// Given: an empty board
		bot := NewBotService(nil)

		// When: the computer moves first
		move, ok := bot.BestMove(entity.Board{})

		// Then: every opening scores a draw and row-major order picks (0, 0)
		require.True(t, ok)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)
	})

	t.Run("Takes an immediate win", func(t *testing.T) {
		board := entity.Board{
			{o, o, e},
			{x, x, e},
			{x, e, e},
		}

		move, ok := NewBotService(nil).BestMove(board)

		require.True(t, ok)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
	})

	t.Run("Blocks a human line", func(t *testing.T) {
		// Given: the human threatens the top row
		board := entity.Board{
			{x, x, e},
			{e, o, e},
			{e, e, e},
		}

		// When: the computer searches
		move, ok := NewBotService(nil).BestMove(board)

		// Then: the only non-losing reply is chosen
		require.True(t, ok)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
	})

	t.Run("Full board has no move", func(t *testing.T) {
		board := entity.Board{
			{o, x, o},
			{o, x, x},
			{x, o, x},
		}

		_, ok := NewBotService(nil).BestMove(board)

		assert.False(t, ok)
	})

	t.Run("Search does not touch the caller's board", func(t *testing.T) {
		board := entity.Board{
			{x, e, e},
			{e, e, e},
			{e, e, e},
		}
		before := board

		_, _ = NewBotService(nil).BestMove(board)

		assert.Equal(t, before, board)
	})

	t.Run("Reports visited positions", func(t *testing.T) {
		counter := &nodeCounter{}
		board := entity.Board{
			{x, e, e},
			{e, e, e},
			{e, e, e},
		}

		_, _ = NewBotService(counter).BestMove(board)

		assert.Equal(t, 1, counter.searches)
		assert.Positive(t, counter.nodes)
	})
}

func TestBotService_LastEmptyCell(t *testing.T) {
	bot := NewBotService(nil)

	for emptyIdx := range 9 {
		for fill := range 1 << 8 {
			// Given: a board with exactly one empty cell and no winner
			var board entity.Board
			bit := 0
			for idx := range 9 {
				row, col := idx/3, idx%3
				if idx == emptyIdx {
					continue
				}
				board[row][col] = x
				if fill&(1<<bit) != 0 {
					board[row][col] = o
				}
				bit++
			}

			if entity.Evaluate(board).Kind == entity.Win {
				continue
			}

			// When: the computer searches
			move, ok := bot.BestMove(board)

			// Then: the only free cell is returned
			require.True(t, ok)
			require.Equal(t, entity.Move{Row: emptyIdx / 3, Col: emptyIdx % 3}, move)
		}
	}
}

// The human moves first; whatever the human plays, optimal replies never lose.
func TestBotService_NeverLoses(t *testing.T) {
	bot := NewBotService(nil)

	var play func(board entity.Board)
	play = func(board entity.Board) {
		for _, cell := range board.CellsOf(entity.EmptyCell) {
			next := board
			next[cell.Row][cell.Col] = x

			outcome := entity.Evaluate(next)
			require.False(t, outcome.Kind == entity.Win && outcome.Winner == entity.Human, "human won on %v", next)
			if outcome.IsFinished() {
				continue
			}

			move, ok := bot.BestMove(next)
			require.True(t, ok)
			next[move.Row][move.Col] = o

			if entity.Evaluate(next).IsFinished() {
				continue
			}

			play(next)
		}
	}

	play(entity.Board{})
}
