package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/ghost-tictactoe/internal/entity"
)

type scoreRepo interface {
	Record(ctx context.Context, outcome entity.Outcome) error
	Get(ctx context.Context) (*entity.Score, error)
}

type ScoreService interface {
	OnEvent(ctx context.Context, event entity.Event)
	GetScore(ctx context.Context) (*entity.Score, error)
}

type scoreService struct {
	logger    *slog.Logger
	scoreRepo scoreRepo
}

func NewScoreService(logger *slog.Logger, scoreRepo scoreRepo) ScoreService {
	return &scoreService{
		logger:    logger.With("component", "scoreboard"),
		scoreRepo: scoreRepo,
	}
}

// OnEvent records finished games. A failing scoreboard never interrupts play.
func (that *scoreService) OnEvent(ctx context.Context, event entity.Event) {
	if event.Type != entity.EventGameEnded {
		return
	}

	log := that.logger.With("session", event.SessionID)

	if err := that.scoreRepo.Record(ctx, event.Outcome); err != nil {
		log.Error("failed to record outcome", "outcome", event.Outcome.Kind.String(), "error", err)
		return
	}

	log.Debug("outcome recorded", "outcome", event.Outcome.Kind.String(), "cheated", event.Outcome.Cheated)
}

func (that *scoreService) GetScore(ctx context.Context) (*entity.Score, error) {
	score, err := that.scoreRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	return score, nil
}
