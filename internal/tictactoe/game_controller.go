package tictactoe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/ghost-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ghost-tictactoe/internal/entity"
)

type botService interface {
	BestMove(board entity.Board) (entity.Move, bool)
}

type cheatService interface {
	GhostMove(board *entity.Board) (entity.GhostMove, bool, error)
}

// Observer is notified of every event, synchronously and in order.
type Observer interface {
	OnEvent(ctx context.Context, event entity.Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, event entity.Event)

func (that ObserverFunc) OnEvent(ctx context.Context, event entity.Event) {
	that(ctx, event)
}

// GameController owns one game session: the live board and the phase of the match.
// It is not safe for concurrent use.
type GameController struct {
	logger *slog.Logger

	botService   botService
	cheatService cheatService
	observers    []Observer

	id     string
	board  entity.Board
	phase  entity.Phase
	closed bool
}

func NewGameController(logger *slog.Logger, botService botService, cheatService cheatService, observers ...Observer) *GameController {
	id := uuid.NewString()

	return &GameController{
		logger: logger.With("component", "game", "session", id),

		botService:   botService,
		cheatService: cheatService,
		observers:    observers,

		id:    id,
		phase: entity.PhaseMenu,
	}
}

func (that *GameController) ID() string {
	return that.id
}

// Start leaves the menu and hands the first turn to the player.
func (that *GameController) Start(ctx context.Context) error {
	if that.closed {
		return apperror.ErrSessionClosed
	}

	if that.phase != entity.PhaseMenu {
		return fmt.Errorf("%w: phase %s", apperror.ErrGameAlreadyStarted, that.phase)
	}

	that.board.Reset()
	that.phase = entity.PhasePlayerTurn
	that.logger.Info("game started")
	that.publish(ctx, entity.Event{Type: entity.EventGameStarted})

	return nil
}

// Restart clears the board of a finished game and goes straight to the player's turn.
func (that *GameController) Restart(ctx context.Context) error {
	if that.closed {
		return apperror.ErrSessionClosed
	}

	if that.phase != entity.PhaseEnded {
		return fmt.Errorf("%w: phase %s", apperror.ErrGameNotFinished, that.phase)
	}

	that.board.Reset()
	that.phase = entity.PhasePlayerTurn
	that.logger.Info("game restarted")
	that.publish(ctx, entity.Event{Type: entity.EventGameStarted})

	return nil
}

// Quit closes the session. Every later call fails with ErrSessionClosed.
func (that *GameController) Quit() {
	if that.closed {
		return
	}

	that.closed = true
	that.logger.Info("game quit", "phase", that.phase.String())
}

func (that *GameController) Closed() bool {
	return that.closed
}

// HandleCellClick resolves a full round for a click on the given cell. It reports false
// without changing anything when the cell is already occupied.
func (that *GameController) HandleCellClick(ctx context.Context, row, col int) (bool, error) {
	if that.closed {
		return false, apperror.ErrSessionClosed
	}

	if that.phase != entity.PhasePlayerTurn {
		return false, fmt.Errorf("%w: phase %s", apperror.ErrNotPlayerTurn, that.phase)
	}

	clicked := entity.Move{Row: row, Col: col}
	if !clicked.InBounds() {
		return false, fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, clicked)
	}

	if !that.board.IsEmpty(row, col) {
		return false, nil
	}

	// The ghost move runs before the click is committed and may take or free the clicked cell.
	ghost, moved, err := that.cheatService.GhostMove(&that.board)
	if err != nil {
		return false, fmt.Errorf("ghost move failed: %w", err)
	}

	if moved {
		that.logger.Info("ghost move", "from", ghost.From.String(), "to", ghost.To.String())
		that.publish(ctx, entity.Event{Type: entity.EventGhostMoved, Ghost: ghost})
	}

	if that.board.IsEmpty(row, col) {
		if err = that.board.Place(row, col, entity.Human); err != nil {
			return false, fmt.Errorf("failed to place human mark: %w", err)
		}

		that.logger.Debug("mark placed", "player", entity.Human.String(), "row", row, "col", col)
		that.publish(ctx, entity.Event{Type: entity.EventMarkPlaced, Player: entity.Human, Cell: clicked})
	} else {
		that.logger.Info("placement dropped", "row", row, "col", col)
		that.publish(ctx, entity.Event{Type: entity.EventPlacementDropped, Cell: clicked})
	}

	if that.finishIfOver(ctx) {
		return true, nil
	}

	that.phase = entity.PhaseComputerTurn

	if err = that.computerTurn(ctx); err != nil {
		return true, err
	}

	return true, nil
}

func (that *GameController) computerTurn(ctx context.Context) error {
	move, ok := that.botService.BestMove(that.board.Snapshot())
	if !ok {
		that.finishIfOver(ctx)
		return apperror.ErrNoAvailableMoves
	}

	if err := that.board.Place(move.Row, move.Col, entity.Computer); err != nil {
		return fmt.Errorf("failed to place computer mark: %w", err)
	}

	that.logger.Debug("mark placed", "player", entity.Computer.String(), "row", move.Row, "col", move.Col)
	that.publish(ctx, entity.Event{Type: entity.EventMarkPlaced, Player: entity.Computer, Cell: move})

	if !that.finishIfOver(ctx) {
		that.phase = entity.PhasePlayerTurn
	}

	return nil
}

// finishIfOver moves to PhaseEnded when the board holds a line or is full.
func (that *GameController) finishIfOver(ctx context.Context) bool {
	outcome := that.CurrentOutcome()
	if !outcome.IsFinished() {
		return false
	}

	that.phase = entity.PhaseEnded
	that.logger.Info("game ended",
		"outcome", outcome.Kind.String(),
		"winner", outcome.Winner.String(),
		"cheated", outcome.Cheated,
	)
	that.publish(ctx, entity.Event{Type: entity.EventGameEnded, Outcome: outcome})

	return true
}

// CurrentBoard returns a copy of the live board.
func (that *GameController) CurrentBoard() entity.Board {
	return that.board.Snapshot()
}

func (that *GameController) CurrentPhase() entity.Phase {
	return that.phase
}

// CurrentOutcome is recomputed from the board on every call. A completed human line is
// credited to the computer: the player must have cheated.
func (that *GameController) CurrentOutcome() entity.Outcome {
	outcome := entity.Evaluate(that.board)
	if outcome.Kind == entity.Win && outcome.Winner == entity.Human {
		outcome.Winner = entity.Computer
		outcome.Cheated = true
	}

	return outcome
}

func (that *GameController) publish(ctx context.Context, event entity.Event) {
	event.SessionID = that.id
	for _, observer := range that.observers {
		observer.OnEvent(ctx, event)
	}
}
