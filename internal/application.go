package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/rocketscienceinc/ghost-tictactoe/internal/config"
	"github.com/rocketscienceinc/ghost-tictactoe/internal/metrics"
	"github.com/rocketscienceinc/ghost-tictactoe/internal/presentation/tui"
	"github.com/rocketscienceinc/ghost-tictactoe/internal/repository"
	"github.com/rocketscienceinc/ghost-tictactoe/internal/repository/storage"
	"github.com/rocketscienceinc/ghost-tictactoe/internal/service"
	"github.com/rocketscienceinc/ghost-tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/ghost-tictactoe/pkg/handlers"
	"github.com/rocketscienceinc/ghost-tictactoe/transport/rest"
)

// RunApp - runs the terminal game until the player quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, in *os.File, out *os.File) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	scoreboardRepo, checks, closeStorage, err := newScoreboard(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := closeStorage(); closeErr != nil {
			log.Error("could not close redis storage", "error", closeErr)
		}
	}()

	scoreService := service.NewScoreService(logger, scoreboardRepo)
	gameMetrics := metrics.New()

	if conf.HTTP.Enabled {
		router := rest.NewRouter(gameMetrics.Handler(), scoreService, checks...)
		go func() {
			log.Info("Starting HTTP server", "port", conf.HTTP.Port)
			if httpErr := rest.Start(ctx, logger, conf.HTTP.Port, router); httpErr != nil {
				log.Error("HTTP server error", "error", httpErr)
			}
		}()
	}

	seed := conf.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("Starting game", "seed", seed, "cheat_probability", conf.Game.GhostMoveProbability())

	tty := term.IsTerminal(int(out.Fd()))
	profile := termenv.Ascii
	if tty && !conf.UI.NoColor {
		profile = termenv.NewOutput(out).Profile
	}

	renderer := tui.NewRenderer(out, profile, tui.NewMarkdown(profile == termenv.Ascii))
	terminal := tui.NewTerminal(logger, renderer, in, scoreService, !conf.UI.NoBanner)

	botService := service.NewBotService(gameMetrics)
	cheatService := service.NewCheatService(rand.New(rand.NewSource(seed)), conf.Game.GhostMoveProbability()) //nolint: gosec // game randomness
	gameController := tictactoe.NewGameController(logger, botService, cheatService, gameMetrics, scoreService, terminal)

	if err = terminal.Run(ctx, gameController); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}

	log.Info("Game closed", "session", gameController.ID())

	return nil
}

// PrintScores writes the scoreboard of the configured backend, clearing it first when reset is set.
func PrintScores(conf *config.Config, out io.Writer, reset bool) error {
	ctx := context.Background()

	scoreboardRepo, _, closeStorage, err := newScoreboard(ctx, conf)
	if err != nil {
		return err
	}
	defer func() { _ = closeStorage() }()

	if reset {
		if err = scoreboardRepo.Reset(ctx); err != nil {
			return fmt.Errorf("could not reset scoreboard: %w", err)
		}
	}

	score, err := scoreboardRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("could not read scoreboard: %w", err)
	}

	_, err = fmt.Fprintf(out, "games: %d\ncomputer wins: %d\ncheat wins: %d\ndraws: %d\n",
		score.Games, score.ComputerWins, score.CheatWins, score.Draws)

	return err
}

func newScoreboard(ctx context.Context, conf *config.Config) (repository.ScoreboardRepository, []handlers.Checker, func() error, error) {
	if conf.Scoreboard.Backend != config.BackendRedis {
		return repository.NewMemoryScoreboardRepository(), nil, func() error { return nil }, nil
	}

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	check := func(ctx context.Context) error {
		return redisStorage.Ping(ctx).Err()
	}

	return repository.NewScoreboardRepository(redisStorage, conf.Scoreboard.Name, conf.Redis.TTL),
		[]handlers.Checker{check},
		redisStorage.Close,
		nil
}
