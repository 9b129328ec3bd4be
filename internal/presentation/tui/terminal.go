package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/ghost-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ghost-tictactoe/internal/entity"
)

var ErrInvalidInput = errors.New("enter a cell number from 1 to 9 or a row and a column")

type game interface {
	Start(ctx context.Context) error
	Restart(ctx context.Context) error
	Quit()
	HandleCellClick(ctx context.Context, row, col int) (bool, error)

	CurrentBoard() entity.Board
	CurrentPhase() entity.Phase
	CurrentOutcome() entity.Outcome
}

type scoreService interface {
	GetScore(ctx context.Context) (*entity.Score, error)
}

// Terminal drives a game from line based input. It also observes the game to
// announce ghost moves and computer replies.
type Terminal struct {
	logger       *slog.Logger
	renderer     *Renderer
	in           io.Reader
	scoreService scoreService
	banner       bool
}

// NewTerminal builds the text front end. scoreService may be nil.
func NewTerminal(logger *slog.Logger, renderer *Renderer, in io.Reader, scoreService scoreService, banner bool) *Terminal {
	return &Terminal{
		logger:       logger.With("component", "tui"),
		renderer:     renderer,
		in:           in,
		scoreService: scoreService,
		banner:       banner,
	}
}

func (that *Terminal) OnEvent(_ context.Context, event entity.Event) {
	switch event.Type {
	case entity.EventGhostMoved:
		that.renderer.Flash(fmt.Sprintf("Boo! A ghost moved your mark from %d to %d.",
			cellNumber(event.Ghost.From), cellNumber(event.Ghost.To)))
	case entity.EventPlacementDropped:
		that.renderer.Notice(fmt.Sprintf("Your mark on %d vanished into thin air.", cellNumber(event.Cell)))
	case entity.EventMarkPlaced:
		if event.Player == entity.Computer {
			that.renderer.Notice(fmt.Sprintf("Computer plays %d.", cellNumber(event.Cell)))
		}
	case entity.EventGameStarted, entity.EventGameEnded:
	}
}

// Run shows the menu and plays until the user quits, input ends or ctx is canceled.
func (that *Terminal) Run(ctx context.Context, g game) error {
	defer g.Quit()

	done := make(chan struct{})
	defer close(done)

	lines := readLines(done, that.in)

	if that.banner {
		that.renderer.Banner()
	}

	for {
		that.render(ctx, g)

		var input string
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			input = strings.ToLower(strings.TrimSpace(line))
		}

		switch input {
		case "q", "quit", "exit":
			return nil
		case "h", "help":
			that.renderer.Rules()
			continue
		}

		if err := that.handle(ctx, g, input); err != nil {
			if !isRecoverable(err) {
				return err
			}

			that.logger.Debug("input ignored", "input", input, "error", err)
			that.renderer.Notice(err.Error())
		}
	}
}

func (that *Terminal) render(ctx context.Context, g game) {
	switch g.CurrentPhase() {
	case entity.PhaseMenu:
		that.renderer.Menu()
		that.renderer.Prompt("menu")
	case entity.PhaseEnded:
		outcome := g.CurrentOutcome()
		that.renderer.Board(g.CurrentBoard(), outcome)
		that.renderer.EndPopup(outcome, that.score(ctx))
		that.renderer.Prompt("again?")
	default:
		that.renderer.Board(g.CurrentBoard(), g.CurrentOutcome())
		that.renderer.Prompt("your move")
	}
}

func (that *Terminal) handle(ctx context.Context, g game, input string) error {
	switch g.CurrentPhase() {
	case entity.PhaseMenu:
		if input == "s" || input == "start" || input == "" {
			return g.Start(ctx)
		}
		return fmt.Errorf("%w: %q", errUnknownCommand, input)
	case entity.PhaseEnded:
		if input == "r" || input == "restart" || input == "" {
			return g.Restart(ctx)
		}
		return fmt.Errorf("%w: %q", errUnknownCommand, input)
	default:
		move, err := ParseCell(input)
		if err != nil {
			return err
		}

		accepted, err := g.HandleCellClick(ctx, move.Row, move.Col)
		if err != nil {
			return fmt.Errorf("move failed: %w", err)
		}

		if !accepted {
			that.renderer.Notice(fmt.Sprintf("Cell %d is taken.", cellNumber(move)))
		}

		return nil
	}
}

func (that *Terminal) score(ctx context.Context) *entity.Score {
	if that.scoreService == nil {
		return nil
	}

	score, err := that.scoreService.GetScore(ctx)
	if err != nil {
		that.logger.Error("failed to get score", "error", err)
		return nil
	}

	return score
}

var errUnknownCommand = errors.New("unknown command")

// ParseCell accepts a cell number 1-9 or a 1-based "row col" pair.
func ParseCell(input string) (entity.Move, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	var move entity.Move
	switch len(fields) {
	case 1:
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 1 || n > entity.BoardSize*entity.BoardSize {
			return entity.Move{}, fmt.Errorf("%w: %q", ErrInvalidInput, input)
		}
		move = entity.Move{Row: (n - 1) / entity.BoardSize, Col: (n - 1) % entity.BoardSize}
	case 2:
		row, rowErr := strconv.Atoi(fields[0])
		col, colErr := strconv.Atoi(fields[1])
		if rowErr != nil || colErr != nil {
			return entity.Move{}, fmt.Errorf("%w: %q", ErrInvalidInput, input)
		}
		move = entity.Move{Row: row - 1, Col: col - 1}
	default:
		return entity.Move{}, fmt.Errorf("%w: %q", ErrInvalidInput, input)
	}

	if !move.InBounds() {
		return entity.Move{}, fmt.Errorf("%w: %q", apperror.ErrOutOfBounds, input)
	}

	return move, nil
}

func isRecoverable(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, errUnknownCommand) ||
		errors.Is(err, apperror.ErrOutOfBounds) ||
		errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrNotPlayerTurn)
}

// readLines feeds input lines to a channel that closes at end of input.
func readLines(done <-chan struct{}, in io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()

	return lines
}
