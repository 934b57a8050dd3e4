// cmd/sweep/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/WChurchill/qualified-immunity/internal/config"
	"github.com/WChurchill/qualified-immunity/internal/defs"
	"github.com/WChurchill/qualified-immunity/internal/logging"
	"github.com/WChurchill/qualified-immunity/internal/sweep"
)

func main() {
	configPath := flag.String("config", "", "YAML config file, defaults when empty")
	levelPath := flag.String("level", "", "YAML level file, defaults when empty")
	runs := flag.Int("runs", 8, "number of simulations")
	parallel := flag.Int("parallel", 4, "simulations running at once")
	seconds := flag.Float64("seconds", 300, "simulated seconds per run")
	dt := flag.Float64("dt", 1.0/60, "tick length in seconds")
	name := flag.String("name", "sweep", "sweep name, seeds are derived from it")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	logger, err := logging.New(*logLevel, logging.EncodingJSON)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			logger.Fatal("load config", zap.Error(err))
		}
	}
	level := defs.DefaultLevel()
	if *levelPath != "" {
		if level, err = defs.LoadLevel(*levelPath); err != nil {
			logger.Fatal("load level", zap.Error(err))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := sweep.Options{
		Name:     *name,
		Runs:     *runs,
		Parallel: *parallel,
		Seconds:  *seconds,
		Step:     *dt,
	}
	results, err := sweep.Run(ctx, cfg, level, opts, logger)
	if err != nil {
		logger.Error("sweep failed", zap.Error(err))
		os.Exit(1)
	}

	best := 0
	for _, r := range results {
		if r.Wave > best {
			best = r.Wave
		}
	}
	logger.Info("sweep finished", zap.String("name", *name), zap.Int("runs", len(results)), zap.Int("best_wave", best))
}
