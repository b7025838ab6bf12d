package main

import (
	"log/slog"
	"os"

	"github.com/rentvehicle/rentkit"
	"github.com/rentvehicle/rentkit/cli"
	"github.com/rentvehicle/rentkit/pkg/config"
	"github.com/rentvehicle/rentkit/pkg/logger"
)

type appConfig struct {
	AppName       string        `env:"APP_NAME" envDefault:"rentvehicle"`
	LogLevel      slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     logger.Format `env:"LOG_FORMAT" envDefault:"text"`
	SeedFile      string        `env:"SEED_FILE"`
	BookingPrefix string        `env:"BOOKING_PREFIX" envDefault:"BK"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	// Logs go to stderr so they never interleave with menus on stdout.
	log := logger.New(
		logger.WithLevel(cfg.LogLevel),
		logger.WithFormat(cfg.LogFormat),
		logger.WithOutput(os.Stderr),
		logger.WithService(cfg.AppName),
	)
	logger.SetAsDefault(log)

	app := rentkit.New(
		rentkit.WithLogger(log),
		rentkit.WithBookingPrefix(cfg.BookingPrefix),
	)

	seed := rentkit.DefaultSeed()
	if cfg.SeedFile != "" {
		var err error
		seed, err = rentkit.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			log.Error("seed file not loaded",
				slog.String("path", cfg.SeedFile),
				logger.Error(err),
			)
			os.Exit(1)
		}
	}
	if err := app.ApplySeed(seed); err != nil {
		log.Error("seed data rejected", logger.Error(err))
		os.Exit(1)
	}

	if err := cli.New(app, cli.WithLogger(log)).Run(); err != nil {
		log.Error("session ended with error", logger.Error(err))
		os.Exit(1)
	}
}
