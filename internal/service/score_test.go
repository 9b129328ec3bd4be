package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/ghost-tictactoe/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRedisDown = errors.New("redis down")

type fakeScoreRepo struct {
	recorded []entity.Outcome
	err      error
}

func (that *fakeScoreRepo) Record(_ context.Context, outcome entity.Outcome) error {
	if that.err != nil {
		return that.err
	}
	that.recorded = append(that.recorded, outcome)
	return nil
}

func (that *fakeScoreRepo) Get(_ context.Context) (*entity.Score, error) {
	if that.err != nil {
		return nil, that.err
	}
	return &entity.Score{Games: int64(len(that.recorded))}, nil
}

func TestScoreService_OnEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Records finished games only", func(t *testing.T) {
		// Given: a score service over an empty repository
		repo := &fakeScoreRepo{}
		scores := NewScoreService(slog.New(slog.DiscardHandler), repo)
		outcome := entity.Outcome{Kind: entity.Draw}

		// When: a placement and a game end are published
		scores.OnEvent(ctx, entity.Event{Type: entity.EventMarkPlaced})
		scores.OnEvent(ctx, entity.Event{Type: entity.EventGameEnded, Outcome: outcome})

		// Then: only the outcome is recorded
		assert.Equal(t, []entity.Outcome{outcome}, repo.recorded)

		score, err := scores.GetScore(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), score.Games)
	})

	t.Run("Repository failure is logged, not raised", func(t *testing.T) {
		var buf bytes.Buffer
		repo := &fakeScoreRepo{err: errRedisDown}
		scores := NewScoreService(slog.New(slog.NewJSONHandler(&buf, nil)), repo)

		scores.OnEvent(ctx, entity.Event{Type: entity.EventGameEnded, SessionID: "abc"})

		assert.Contains(t, buf.String(), "failed to record outcome")
		assert.Contains(t, buf.String(), "redis down")

		_, err := scores.GetScore(ctx)
		require.ErrorIs(t, err, errRedisDown)
	})
}
