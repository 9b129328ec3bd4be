package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/ghost-tictactoe/internal"
	"github.com/rocketscienceinc/ghost-tictactoe/internal/config"
)

const defaultConfigPath = "./config.yml"

// main - is the entry point of the application. It parses the command line and runs the chosen command.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ghost-tictactoe",
		Short: "Tic-tac-toe against an unbeatable computer",
		Long: `Play tic-tac-toe in the terminal against a perfect minimax opponent.
Every now and then a ghost moves one of your marks, and a line you complete is blamed on you.`,
		SilenceUsage: true,
		RunE:         runPlay,
	}

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Start a game in the terminal",
		RunE:  runPlay,
	}

	scoresCmd := &cobra.Command{
		Use:   "scores",
		Short: "Print the scoreboard",
		RunE:  runScores,
	}

	rootCmd.PersistentFlags().String("config", defaultConfigPath, "Path to the config file")
	rootCmd.PersistentFlags().Int64("seed", 0, "Seed of the ghost move randomness, zero picks one")
	rootCmd.PersistentFlags().Float64("cheat", 0, "Chance of a ghost move on each turn, within [0, 1]")

	scoresCmd.Flags().Bool("reset", false, "Clear the scoreboard before printing it")

	rootCmd.AddCommand(playCmd, scoresCmd)

	return rootCmd
}

func runPlay(cmd *cobra.Command, _ []string) error {
	conf := initConfig(cmd)

	logger, closeLog, err := initLogger(conf)
	if err != nil {
		return err
	}
	defer closeLog()

	if err = app.RunApp(logger, conf, os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("app run failed: %w", err)
	}

	return nil
}

func runScores(cmd *cobra.Command, _ []string) error {
	conf := initConfig(cmd)

	reset, err := cmd.Flags().GetBool("reset")
	if err != nil {
		return fmt.Errorf("failed to read --reset: %w", err)
	}

	return app.PrintScores(conf, cmd.OutOrStdout(), reset)
}

// initialize config. Only the default config file may be absent, leaving env and defaults in charge.
func initConfig(cmd *cobra.Command) *config.Config {
	flags := cmd.Flags()

	path, err := flags.GetString("config")
	if err != nil {
		panic(fmt.Errorf("failed to read --config: %w", err))
	}

	if !filepath.IsAbs(path) {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}

		path = filepath.Join(baseDir, path)
	}

	if _, err = os.Stat(path); errors.Is(err, os.ErrNotExist) && !flags.Changed("config") {
		path = ""
	}

	conf := config.MustLoad(path)

	if flags.Changed("seed") {
		if conf.Game.Seed, err = flags.GetInt64("seed"); err != nil {
			panic(fmt.Errorf("failed to read --seed: %w", err))
		}
	}

	if flags.Changed("cheat") {
		if conf.Game.CheatProbability, err = flags.GetFloat64("cheat"); err != nil {
			panic(fmt.Errorf("failed to read --cheat: %w", err))
		}
		conf.Game.NoCheat = conf.Game.CheatProbability == 0

		if err = conf.Validate(); err != nil {
			panic(fmt.Errorf("invalid --cheat: %w", err))
		}
	}

	return conf
}

// initialize logger. The terminal belongs to the game, so logs go to a file unless none is set.
func initLogger(conf *config.Config) (*slog.Logger, func(), error) {
	var level slog.Level

	switch conf.LogLevel {
	case config.LogLevelDebug:
		level = slog.LevelDebug
	case config.LogLevelInfo:
		level = slog.LevelInfo
	case config.LogLevelWarn:
		level = slog.LevelWarn
	case config.LogLevelError:
		level = slog.LevelError
	}

	var out io.Writer = os.Stderr
	closeLog := func() {}

	if conf.LogFile != "" {
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}

		out = file
		closeLog = func() { _ = file.Close() }
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})), closeLog, nil
}
