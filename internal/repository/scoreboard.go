package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/ghost-tictactoe/internal/entity"
)

const (
	fieldGames        = "games"
	fieldComputerWins = "computer_wins"
	fieldCheatWins    = "cheat_wins"
	fieldDraws        = "draws"
)

var ErrUnfinishedGame = errors.New("game is not finished")

type ScoreboardRepository interface {
	Record(ctx context.Context, outcome entity.Outcome) error
	Get(ctx context.Context) (*entity.Score, error)
	Reset(ctx context.Context) error
}

type dbScoreboard struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewScoreboardRepository stores the tally in a redis hash. A zero ttl keeps it forever.
func NewScoreboardRepository(client *redis.Client, name string, ttl time.Duration) ScoreboardRepository {
	return &dbScoreboard{
		client: client,
		key:    "scoreboard:" + name,
		ttl:    ttl,
	}
}

func (that *dbScoreboard) Record(ctx context.Context, outcome entity.Outcome) error {
	fields, err := scoreFields(outcome)
	if err != nil {
		return err
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, field := range fields {
			pipe.HIncrBy(ctx, that.key, field, 1)
		}

		if that.ttl > 0 {
			pipe.Expire(ctx, that.key, that.ttl)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record outcome: %w", err)
	}

	return nil
}

func (that *dbScoreboard) Get(ctx context.Context) (*entity.Score, error) {
	values, err := that.client.HGetAll(ctx, that.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	score := &entity.Score{}
	for field, target := range map[string]*int64{
		fieldGames:        &score.Games,
		fieldComputerWins: &score.ComputerWins,
		fieldCheatWins:    &score.CheatWins,
		fieldDraws:        &score.Draws,
	} {
		raw, ok := values[field]
		if !ok {
			continue
		}

		if *target, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", field, err)
		}
	}

	return score, nil
}

func (that *dbScoreboard) Reset(ctx context.Context) error {
	if err := that.client.Del(ctx, that.key).Err(); err != nil {
		return fmt.Errorf("failed to reset scoreboard: %w", err)
	}

	return nil
}

type memoryScoreboard struct {
	mu    sync.Mutex
	score entity.Score
}

// NewMemoryScoreboardRepository keeps the tally for the lifetime of the process.
func NewMemoryScoreboardRepository() ScoreboardRepository {
	return &memoryScoreboard{}
}

func (that *memoryScoreboard) Record(_ context.Context, outcome entity.Outcome) error {
	fields, err := scoreFields(outcome)
	if err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	for _, field := range fields {
		switch field {
		case fieldGames:
			that.score.Games++
		case fieldComputerWins:
			that.score.ComputerWins++
		case fieldCheatWins:
			that.score.CheatWins++
		case fieldDraws:
			that.score.Draws++
		}
	}

	return nil
}

func (that *memoryScoreboard) Get(_ context.Context) (*entity.Score, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	score := that.score
	return &score, nil
}

func (that *memoryScoreboard) Reset(_ context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.score = entity.Score{}
	return nil
}

// scoreFields lists the counters an outcome increments. A cheat win counts as a computer win too.
func scoreFields(outcome entity.Outcome) ([]string, error) {
	switch outcome.Kind {
	case entity.Draw:
		return []string{fieldGames, fieldDraws}, nil
	case entity.Win:
		if outcome.Cheated {
			return []string{fieldGames, fieldComputerWins, fieldCheatWins}, nil
		}
		return []string{fieldGames, fieldComputerWins}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnfinishedGame, outcome.Kind)
	}
}
