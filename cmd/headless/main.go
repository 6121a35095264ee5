// Command headless runs AI-versus-AI bouts without a window and logs the results.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/shinobi-duel/assets"
	"github.com/automoto/shinobi-duel/battle"
	"github.com/automoto/shinobi-duel/components"
	"github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/observability"
	"github.com/automoto/shinobi-duel/shared/leveldata"
	"github.com/automoto/shinobi-duel/systems"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a settings file (yaml, json or toml)")
	tickRate := flag.Int("tickrate", 0, "ticks per second (0 = as fast as possible)")
	bouts := flag.Int("bouts", 0, "number of bouts (0 = players.headless_bouts from config)")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	settings.Apply()

	logger, err := observability.NewLogger(settings.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	systems.SetLogger(logger.Named("sim"))

	stage, err := assets.LoadStage(settings.Players.Stage)
	if err != nil {
		logger.Fatal("could not load stage", zap.Error(err))
	}

	n := *bouts
	if n <= 0 {
		n = settings.Players.Headless
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tally := map[components.Winner]int{}
	for i := 0; i < n; i++ {
		winner, err := runBout(ctx, settings, stage, int64(i), *tickRate, logger)
		if errors.Is(err, context.Canceled) {
			logger.Info("interrupted", zap.Int("completed_bouts", i))
			break
		}
		if err != nil {
			logger.Error("bout failed", zap.Int("bout", i), zap.Error(err))
			os.Exit(1)
		}
		tally[winner]++
	}

	logger.Info("results",
		zap.String("player_one", settings.Players.One),
		zap.String("player_two", settings.Players.Two),
		zap.Int("player_one_wins", tally[components.WinnerPlayer1]),
		zap.Int("player_two_wins", tally[components.WinnerPlayer2]),
		zap.Int("ties", tally[components.WinnerTie]),
	)
}

func runBout(ctx context.Context, s config.Settings, stage *leveldata.StageData, bout int64, tickRate int, logger *zap.Logger) (components.Winner, error) {
	d := config.Difficulty(s.AI.Difficulty)
	seed := s.AI.Seed + bout*2
	b, err := battle.New(s.Players.One, s.Players.Two,
		battle.WithLogger(logger.With(zap.Int64("bout", bout))),
		battle.WithStage(stage),
		battle.WithBot(0, d, seed),
		battle.WithBot(1, d, seed+1),
	)
	if err != nil {
		return components.WinnerNone, err
	}

	if err := battle.NewLoop(b, tickRate).Run(ctx); err != nil {
		return components.WinnerNone, err
	}
	return b.Winner(), nil
}
